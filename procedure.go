package grammex

// ProcedureFunc is a side-effecting hook run during recognition, typically
// to mutate ParsingContext.UserState (push/pop an indentation level,
// record a symbol). It never fails the match it is attached to; an error
// it returns aborts the whole parse as a UserCallbackError.
type ProcedureFunc func(ctx *ParsingContext) error

// ConditionFunc gates recognition on an arbitrary predicate over the
// context (e.g. "current column equals the saved indent"). Returning
// (false, nil) fails the Condition's match like any other element
// failure; returning a non-nil error aborts the parse as a
// UserCallbackError.
type ConditionFunc func(ctx *ParsingContext) (bool, error)

// procedureElement and conditionElement are both zero-width: they never
// advance the iterator themselves. They are grounded in the teacher
// library's hook-attaching combinators (patternTrigger for side effects,
// patternInjector for a pass/fail validator), generalized from
// decorating a sub-pattern's matched text to standing alone as callback
// elements gating or observing the parse at a point in the grammar.
type procedureElement struct {
	elementBase
	fn ProcedureFunc
}

type conditionElement struct {
	elementBase
	fn ConditionFunc
}

// Procedure builds a zero-width element that always succeeds after
// invoking fn.
func Procedure(fn ProcedureFunc) Element {
	return &procedureElement{elementBase: newElementBase(), fn: fn}
}

// Condition builds a zero-width element that succeeds or fails according
// to fn.
func Condition(fn ConditionFunc) Element {
	return &conditionElement{elementBase: newElementBase(), fn: fn}
}

func (p *procedureElement) Kind() ElementKind  { return KindProcedure }
func (p *procedureElement) refs() []*Reference { return nil }

func (p *procedureElement) recognize(ctx *ParsingContext) (*Match, error) {
	if err := p.fn(ctx); err != nil {
		return nil, wrapCallbackError(p, err)
	}
	return emptyMatch(ctx, ctx.it.Offset()), nil
}

func (p *procedureElement) String() string {
	if p.name != "" {
		return p.name
	}
	return "procedure"
}

func (c *conditionElement) Kind() ElementKind  { return KindCondition }
func (c *conditionElement) refs() []*Reference { return nil }

func (c *conditionElement) recognize(ctx *ParsingContext) (*Match, error) {
	ok, err := c.fn(ctx)
	if err != nil {
		return nil, wrapCallbackError(c, err)
	}
	if !ok {
		return FAILURE, nil
	}
	return emptyMatch(ctx, ctx.it.Offset()), nil
}

func (c *conditionElement) String() string {
	if c.name != "" {
		return c.name
	}
	return "condition"
}

func wrapCallbackError(el Element, cause error) error {
	return &UserCallbackError{Element: el, Cause: cause}
}
