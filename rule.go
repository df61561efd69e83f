package grammex

// ruleElement is concatenation: it recognizes each child reference in
// order, applying the grammar's skip element before each of them, and fails (with
// a full rewind) if any child fails.
type ruleElement struct {
	elementBase
	children []*Reference
}

// Rule builds a concatenation element over refs, recognized in order.
func Rule(refs ...*Reference) Element {
	linkReferences(refs)
	return &ruleElement{elementBase: newElementBase(), children: refs}
}

func (r *ruleElement) Kind() ElementKind  { return KindRule }
func (r *ruleElement) refs() []*Reference { return r.children }

// recognize is the rewind-on-failure contract made concrete: remember
// start, try each child in turn (skipping insignificant input first), and
// on the first failure seek all the way back to start before returning
// FAILURE. On success, the matched children are chained first-to-last
// through Match.Child/Match.Next; skip consumption never appears in that
// chain.
func (r *ruleElement) recognize(ctx *ParsingContext) (*Match, error) {
	start := ctx.it.Offset()

	var head, tail *Match
	for _, ref := range r.children {
		if err := ctx.grammar.applySkip(ctx); err != nil {
			return nil, err
		}

		ctx.recordOffset()
		sub, err := ref.recognize(ctx)
		if err != nil {
			return nil, err
		}
		if !sub.Ok() {
			if err := ctx.it.MoveTo(start); err != nil {
				return nil, err
			}
			return FAILURE, nil
		}

		if head == nil {
			head = sub
		} else {
			tail.Next = sub
		}
		tail = sub
		// a many/many_optional child is itself a Next-linked chain of
		// repetitions; continue the sibling chain after its last one.
		for tail.Next != nil {
			tail = tail.Next
		}
	}

	end := ctx.it.Offset()
	m := newMatch(ctx, r, start, end-start)
	m.Child = head
	return m, nil
}

// setChildren replaces r's child references; see groupElement.setChildren.
func (r *ruleElement) setChildren(refs []*Reference) {
	linkReferences(refs)
	r.children = refs
}

func (r *ruleElement) String() string {
	if r.name != "" {
		return r.name
	}
	return "rule"
}
