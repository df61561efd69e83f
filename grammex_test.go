package grammex

import (
	"strings"
	"testing"
)

func arithmeticGrammar() *Grammar {
	number := Named(MustToken(`\d+`), "NUMBER")
	variable := Named(MustToken(`\w+`), "VAR")
	op := Named(MustToken(`[+\-*/]`), "OP")

	value := Named(Group(Ref(number), Ref(variable)), "Value")
	suffix := Named(Rule(Ref(op), Ref(value)), "Suffix")
	expr := Named(Rule(Ref(value), Ref(suffix).WithCardinality(ManyOptional)), "Expr")

	return New("arithmetic").Axiom(expr)
}

// Scenario A — arithmetic expression.
func TestScenarioAArithmeticExpression(t *testing.T) {
	g := arithmeticGrammar()

	m, err := g.ParseText("1+2*x")
	if err != nil {
		t.Fatalf("ParseFromIterator: %v", err)
	}
	if !m.Ok() || m.Length != 5 {
		t.Fatalf("match = %+v, want a length-5 match", m)
	}

	if m.Child == nil {
		t.Fatal("expected Expr to have a child chain")
	}
	value := m.Child
	if value.Element.Name() != "Value" || value.End()-value.Offset != 1 {
		t.Fatalf("first child = %+v, want Value(\"1\")", value)
	}

	suffixes := value.Next
	if suffixes == nil {
		t.Fatal("expected a many_optional Suffix chain")
	}
	first := suffixes
	if first.Element == nil || first.Element.Name() != "Suffix" || first.Length != 2 {
		t.Fatalf("first suffix = %+v, want Suffix(\"+2\")", first)
	}
	second := first.Next
	if second == nil || second.Length != 2 {
		t.Fatalf("second suffix = %+v, want Suffix(\"*x\")", second)
	}
	if second.Next != nil {
		t.Fatal("expected exactly two suffixes")
	}
}

// Scenario B — empty many_optional.
func TestScenarioBEmptyManyOptional(t *testing.T) {
	variable := MustToken(`\w+`)
	op := MustToken(`[+\-*/]`)
	r := Rule(Ref(variable), Ref(op).WithCardinality(ManyOptional))

	g := New("empty-suffix").Axiom(r)
	m, err := g.ParseText("x")
	if err != nil {
		t.Fatalf("ParseFromIterator: %v", err)
	}
	if !m.Ok() || m.Length != 1 {
		t.Fatalf("match = %+v, want a length-1 match", m)
	}
	if m.Child == nil || m.Child.Next == nil {
		t.Fatal("expected VAR followed by an empty reference match")
	}
	if m.Child.Next.Length != 0 {
		t.Fatalf("second child length = %d, want 0 (empty)", m.Child.Next.Length)
	}
}

func TestFullyMatched(t *testing.T) {
	g := New("fully").Axiom(Word("abc"))
	it := NewIterator(strings.NewReader("abc"))
	m, err := g.ParseFromIterator(it)
	if err != nil {
		t.Fatalf("ParseFromIterator: %v", err)
	}
	if !FullyMatched(m, it) {
		t.Fatal("expected the whole input to be consumed")
	}

	g2 := New("partial").Axiom(Word("ab"))
	it2 := NewIterator(strings.NewReader("abc"))
	m2, err := g2.ParseFromIterator(it2)
	if err != nil {
		t.Fatalf("ParseFromIterator: %v", err)
	}
	if FullyMatched(m2, it2) {
		t.Fatal("expected a partial match to not be reported as fully matched")
	}
}
