package grammex

import "testing"

// Scenario D from the engine's end-to-end test matrix: ordered choice picks
// the first alternative that matches, even when a later alternative would
// also match a shorter prefix.
func TestGroupOrderedChoicePicksFirstMatch(t *testing.T) {
	g := Group(Ref(Word("ab")), Ref(Word("a")))

	ctx := newTestContext("ab")
	m, err := g.recognize(ctx)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !m.Ok() || m.Length != 2 {
		t.Fatalf("match = %+v, want a length-2 match on branch 0", m)
	}

	ctx2 := newTestContext("a")
	m2, err := g.recognize(ctx2)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !m2.Ok() || m2.Length != 1 {
		t.Fatalf("match = %+v, want a length-1 match on branch 1", m2)
	}
}

func TestGroupAllBranchesFail(t *testing.T) {
	g := Group(Ref(Word("ab")), Ref(Word("cd")))
	ctx := newTestContext("xy")

	m, err := g.recognize(ctx)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if m.Ok() {
		t.Fatal("expected FAILURE when every branch fails")
	}
	if ctx.it.Offset() != 0 {
		t.Fatalf("cursor after failure = %d, want 0", ctx.it.Offset())
	}
}

func TestGroupSetChildren(t *testing.T) {
	g := Group(Ref(Word("a")))
	SetChildren(g, Ref(Word("b")))

	ctx := newTestContext("b")
	m, err := g.recognize(ctx)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !m.Ok() {
		t.Fatal("expected the replaced child to be recognized")
	}
}
