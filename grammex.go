// Package grammex implements a runtime-constructed grammar engine: rules
// may be added to or replaced in a grammar between parse runs, and the
// grammar itself is a live object graph rather than a compiled table.
//
// # Overview
//
// A Grammar owns a graph of parsing Elements. There are six element
// variants:
//
//	Word        a literal byte string
//	Token       a PCRE-compatible regular expression
//	Group       ordered choice among child References
//	Rule        concatenation of child References
//	Procedure   a zero-width side-effecting hook
//	Condition   a zero-width predicate gating recognition
//
// Composite elements (Group, Rule) hold an ordered list of References,
// each a decorated edge to a child element carrying a Cardinality (one,
// optional, many or many_optional) and an optional lookup name.
//
// Recognition is top-down and backtracking: every element's recognize
// operation either returns a successful Match and leaves the context's
// Iterator positioned just past what it consumed, or returns the FAILURE
// sentinel and leaves the iterator exactly where it found it. Composite
// elements rely on that contract to try alternatives (Group) or rewind a
// whole sequence (Rule) without any manual bookkeeping.
//
// Left recursion is not detected or rejected: as in any top-down grammar,
// a rule that can reach itself without consuming input will recurse until
// the call stack grows unbounded. Cyclic grammars are otherwise fully
// supported, including direct or mutual recursion that does consume
// input, since Grammar.Prepare's breadth-first id assignment tolerates
// cycles by visiting each element at most once.
//
// # Building a grammar
//
// Elements and References compose into a small expression language:
//
//	number := grammex.MustToken(`\d+`)
//	plus := grammex.Word("+")
//	expr := grammex.Rule(grammex.Ref(number), grammex.Ref(plus), grammex.Ref(number))
//	g := grammex.New("addition").Axiom(expr)
//	m, err := g.ParseFromIterator(grammex.NewIterator(strings.NewReader("1+2")))
//
// # Output
//
// A successful parse returns a Match tree: Child links to a composite's
// first child, Next chains repetitions and siblings. Walk visits the tree
// in pre-order. Building an AST from the tree is outside the engine's
// scope: the engine never runs the ProcessFunc hooks attached with
// SetProcess.
package grammex

import (
	"strings"
)

// ParseText is a convenience wrapper around Grammar.ParseFromIterator for
// in-memory text, useful for tests and REPLs that do not need an explicit
// Iterator.
func (g *Grammar) ParseText(text string) (*Match, error) {
	it := NewIterator(strings.NewReader(text))
	defer it.Close()
	return g.ParseFromIterator(it)
}

// FullyMatched reports whether m is a successful match that consumed the
// whole of it, i.e. m.Offset + m.Length equals the number of bytes the
// iterator has ever produced. Since partial recognition is a valid parse
// result (see ParseFromIterator), callers that require full-input
// consumption must check this explicitly rather than treat any non-FAILURE
// match as a complete parse.
func FullyMatched(m *Match, it *Iterator) bool {
	return m.Ok() && m.End() == it.Offset() && it.AtEOF()
}
