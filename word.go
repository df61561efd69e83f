package grammex

// wordElement recognizes a literal byte string. It is the simplest
// element: no allocation beyond the match node itself, no regex engine,
// just a byte-for-byte comparison at the cursor.
type wordElement struct {
	elementBase
	literal string
}

// WordData is the data payload attached to a Word match: the literal the
// element was built with.
type WordData struct {
	Literal string
}

// Word builds an element that matches the literal text exactly.
func Word(literal string) Element {
	return &wordElement{elementBase: newElementBase(), literal: literal}
}

func (w *wordElement) Kind() ElementKind  { return KindWord }
func (w *wordElement) refs() []*Reference { return nil }

func (w *wordElement) recognize(ctx *ParsingContext) (*Match, error) {
	start := ctx.it.Offset()
	n := len(w.literal)

	chunk := ctx.it.Peek(n)
	if len(chunk) < n || string(chunk) != w.literal {
		return FAILURE, nil
	}

	ctx.it.Move(n)
	m := newMatch(ctx, w, start, n)
	m.Data = WordData{Literal: w.literal}
	return m, nil
}

func (w *wordElement) String() string {
	if w.name != "" {
		return w.name
	}
	return "word(" + w.literal + ")"
}
