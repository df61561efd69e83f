package grammex

// ElementKind tags which of the six parsing-element variants a concrete
// Element value is.
type ElementKind int

const (
	KindWord ElementKind = iota
	KindToken
	KindGroup
	KindRule
	KindProcedure
	KindCondition
)

func (k ElementKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindToken:
		return "token"
	case KindGroup:
		return "group"
	case KindRule:
		return "rule"
	case KindProcedure:
		return "procedure"
	case KindCondition:
		return "condition"
	default:
		return "unknown"
	}
}

// ProcessFunc is the post-parse hook a consumer attaches to an element via
// SetProcess. The element stores it, but nothing in this package calls it:
// neither the recognition loop nor Walk (a pre-order traversal) invokes it,
// and no exported function runs it.
type ProcessFunc func(*Match) (interface{}, error)

// Element is a polymorphic recognizer: one of Word, Token, Group, Rule,
// Procedure or Condition. recognize is invoked with the context's iterator
// positioned at the tentative start offset; on success it returns a Match
// and leaves the iterator at start+length, on failure it returns FAILURE
// and leaves the iterator at start. A non-nil error aborts the parse
// (either a UserCallbackError from a Procedure/Condition, or an I/O error
// surfaced while refilling the iterator).
type Element interface {
	recognize(ctx *ParsingContext) (*Match, error)

	// ID is the stable breadth-first visiting order assigned by
	// Grammar.Prepare, 0 for the axiom. It is -1 until the owning grammar
	// is prepared.
	ID() int
	setID(id int)

	// Name is an optional debug name set via Named.
	Name() string

	// Kind identifies the concrete variant.
	Kind() ElementKind

	// refs lists the ordered child references of a composite element, and
	// is nil for the four element kinds that never have children.
	refs() []*Reference

	visited() bool
	setVisited(bool)

	// runProcess invokes the user's post-action, if any was attached.
	runProcess(m *Match) (interface{}, error)
}

// elementBase is embedded by every concrete element type to provide the
// identity, naming and post-action bookkeeping common to all six variants,
// mirroring the tagged-record-with-function-pointers design: each variant
// supplies its own recognize, this base supplies everything else.
type elementBase struct {
	id      int
	name    string
	seen    bool
	process ProcessFunc
}

func (b *elementBase) ID() int          { return b.id }
func (b *elementBase) setID(id int)     { b.id = id }
func (b *elementBase) Name() string     { return b.name }
func (b *elementBase) visited() bool    { return b.seen }
func (b *elementBase) setVisited(v bool) { b.seen = v }

func (b *elementBase) runProcess(m *Match) (interface{}, error) {
	if b.process == nil {
		return nil, nil
	}
	v, err := b.process(m)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func newElementBase() elementBase {
	return elementBase{id: -1}
}

// Named sets el's debug name and returns it, for chaining at construction
// time (e.g. Named(Word("+"), "PLUS")).
func Named(el Element, name string) Element {
	setName(el, name)
	return el
}

// nameSetter is implemented by elementBase; a private interface keeps
// Named generic over every concrete element type without exporting a
// mutable Name field.
type nameSetter interface {
	setName(string)
}

func (b *elementBase) setName(name string) { b.name = name }

func setName(el Element, name string) {
	if ns, ok := el.(nameSetter); ok {
		ns.setName(name)
	}
}

// SetProcess attaches the post-parse hook fn to el, returning el for
// chaining. The hook is stored only; see ProcessFunc.
func SetProcess(el Element, fn ProcessFunc) Element {
	if ps, ok := el.(interface{ setProcess(ProcessFunc) }); ok {
		ps.setProcess(fn)
	}
	return el
}

func (b *elementBase) setProcess(fn ProcessFunc) { b.process = fn }

// childSetter is implemented by Group and Rule, letting grammar authors
// amend a composite's children after construction - the mechanism that
// makes cyclic and recursive grammars buildable (create the composite
// empty, build children that reference it, then call SetChildren) and
// that lets a live grammar have rules added or replaced between parse
// runs, per the engine's basic design.
type childSetter interface {
	setChildren([]*Reference)
}

// SetChildren replaces a Group or Rule element's ordered child references.
// Calling it on a Word, Token, Procedure or Condition is a silent no-op,
// since those variants never have children.
func SetChildren(el Element, refs ...*Reference) Element {
	if cs, ok := el.(childSetter); ok {
		cs.setChildren(refs)
	}
	return el
}
