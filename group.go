package grammex

// groupElement is an ordered choice: it tries each child reference in
// declaration order and succeeds with the first one that matches.
type groupElement struct {
	elementBase
	children []*Reference
}

// Group builds an ordered-choice element over refs, tried in order.
func Group(refs ...*Reference) Element {
	linkReferences(refs)
	return &groupElement{elementBase: newElementBase(), children: refs}
}

func (g *groupElement) Kind() ElementKind  { return KindGroup }
func (g *groupElement) refs() []*Reference { return g.children }

// recognize iterates references in declaration order; the first
// non-failure result becomes the group's single child. If every reference
// fails, the group fails too - it performs no rewind of its own, since
// each reference already left the iterator at the group's start offset
// when it failed, and the iterator never moved while a later reference
// was merely being attempted.
func (g *groupElement) recognize(ctx *ParsingContext) (*Match, error) {
	start := ctx.it.Offset()

	for _, ref := range g.children {
		ctx.recordOffset()
		sub, err := ref.recognize(ctx)
		if err != nil {
			return nil, err
		}
		if sub.Ok() {
			m := newMatch(ctx, g, start, ctx.it.Offset()-start)
			m.Child = sub
			return m, nil
		}
	}
	return FAILURE, nil
}

// setChildren replaces g's child references, relinking their sibling
// chain. Exposed through SetChildren so grammars can be amended after
// construction, and so a composite element can be wired to reference
// itself (directly or through a cycle of other elements) by creating it
// empty, building its children - which may hold a Reference to it - and
// then calling SetChildren.
func (g *groupElement) setChildren(refs []*Reference) {
	linkReferences(refs)
	g.children = refs
}

func (g *groupElement) String() string {
	if g.name != "" {
		return g.name
	}
	return "group"
}

// linkReferences threads refs into a singly linked sibling chain, in the
// order given, so composite elements can walk their children via
// Reference.Next the same way a successful parse's sibling matches chain
// through Match.Next.
func linkReferences(refs []*Reference) {
	for i := 0; i+1 < len(refs); i++ {
		refs[i].next = refs[i+1]
	}
}
