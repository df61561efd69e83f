package grammex

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/google/uuid"
)

// Grammar owns a parsing-element graph: an axiom element where recognition
// starts, and an optional skip element consumed before each Rule child.
// Grammars are built incrementally, then Prepared once before first use;
// Prepare assigns stable ids and may be re-run if the graph changes.
type Grammar struct {
	axiom Element
	skip  Element
	name  string

	prepared bool
	byID     []Element
}

// New creates an empty, unprepared grammar.
func New(name string) *Grammar {
	return &Grammar{name: name}
}

// Axiom sets the grammar's root element and returns the grammar for
// chaining.
func (g *Grammar) Axiom(el Element) *Grammar {
	g.axiom = el
	g.prepared = false
	return g
}

// Skip sets the element applied before each Rule child, the first one
// included (usually whitespace/comments), and returns the grammar for
// chaining. A nil skip (the default) performs no elision.
func (g *Grammar) Skip(el Element) *Grammar {
	g.skip = el
	g.prepared = false
	return g
}

// Element looks up a prepared grammar's element by its breadth-first id.
func (g *Grammar) Element(id int) Element {
	if id < 0 || id >= len(g.byID) {
		return nil
	}
	return g.byID[id]
}

// Len returns the number of elements reachable from the axiom, valid after
// Prepare.
func (g *Grammar) Len() int {
	return len(g.byID)
}

// Prepare performs a breadth-first traversal from the axiom, assigning
// each reachable element a stable id starting from 0 at the axiom. Cyclic
// grammars (direct or mutual recursion) are legal: the visited flag on
// each element keeps the traversal from recursing into an already-seen
// element, so it terminates even though the graph is not a tree.
//
// The BFS frontier is a gods linked-list queue rather than a hand-rolled
// slice-as-queue, grounded in the table/graph-traversal machinery the
// pack's LR tooling builds on.
func (g *Grammar) Prepare() error {
	if g.axiom == nil {
		return errorNilAxiom
	}

	for _, el := range g.byID {
		el.setVisited(false)
		el.setID(-1)
	}

	g.byID = nil
	frontier := linkedlistqueue.New()
	frontier.Enqueue(g.axiom)
	g.axiom.setVisited(true)

	nextID := 0
	for !frontier.Empty() {
		v, _ := frontier.Dequeue()
		el := v.(Element)

		el.setID(nextID)
		nextID++
		g.byID = append(g.byID, el)

		for _, ref := range el.refs() {
			if ref == nil || ref.element == nil {
				return errorNilChild
			}
			if !ref.element.visited() {
				ref.element.setVisited(true)
				frontier.Enqueue(ref.element)
			}
		}
	}

	if g.skip != nil && !g.skip.visited() {
		// the skip element need not be reachable from the axiom, but it
		// still needs an id to participate in diagnostics.
		g.skip.setVisited(true)
		g.skip.setID(nextID)
		g.byID = append(g.byID, g.skip)
	}

	g.prepared = true
	return nil
}

// ParseFromPath opens path as an Iterator and parses it.
func (g *Grammar) ParseFromPath(path string) (*Match, error) {
	it, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	return g.ParseFromIterator(it)
}

// ParseFromIterator builds a context around it and recognizes the axiom at
// the iterator's current position (offset 0 for a freshly opened
// iterator). It does not require the axiom to consume all input: partial
// recognition is a valid, reportable result. Callers needing full-input
// semantics should check match.Offset+match.Length == totalInputLength, or
// place an end-of-input element at the axiom's tail.
func (g *Grammar) ParseFromIterator(it *Iterator) (*Match, error) {
	if !g.prepared {
		if err := g.Prepare(); err != nil {
			return nil, err
		}
	}

	ctx := newParsingContext(g, it)
	log := grammarLogger(g.name, ctx.id)
	log.Debug().Int("axiom_id", g.axiom.ID()).Msg("parse start")

	m, err := g.axiom.recognize(ctx)
	if err != nil {
		log.Error().Err(err).Msg("parse aborted")
		return nil, err
	}
	if !m.Ok() {
		log.Debug().Msg("parse failed: axiom did not match at offset 0")
		return FAILURE, nil
	}
	log.Debug().Int("length", m.Length).Msg("parse matched")
	return m, nil
}

// applySkip consumes the grammar's skip element, if any, as a
// many_optional reference whose matches are discarded rather than
// attached to a caller's child chain. A grammar with no skip element is a
// no-op. Errors from a skip element built atop a Procedure/Condition still
// propagate and abort the parse.
func (g *Grammar) applySkip(ctx *ParsingContext) error {
	if g.skip == nil {
		return nil
	}
	ref := Ref(g.skip).WithCardinality(ManyOptional)
	_, err := ref.recognize(ctx)
	return err
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar(%s, %d elements)", g.name, len(g.byID))
}

// newRunID produces a correlation id for one parse run's structured logs.
func newRunID() string {
	return uuid.NewString()
}
