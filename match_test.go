package grammex

import "testing"

func TestWalkVisitsChildThenNext(t *testing.T) {
	// leaf <- child of root; root.Next -> sibling
	leaf := &Match{Status: StatusMatched, Offset: 0, Length: 1}
	root := &Match{Status: StatusMatched, Offset: 0, Length: 2, Child: leaf}
	sibling := &Match{Status: StatusMatched, Offset: 2, Length: 1}
	root.Next = sibling

	var order []*Match
	steps := Walk(root, func(m *Match) { order = append(order, m) })

	if steps != 3 {
		t.Fatalf("Walk steps = %d, want 3", steps)
	}
	if len(order) != 3 || order[0] != root || order[1] != leaf || order[2] != sibling {
		t.Fatalf("unexpected walk order: %+v", order)
	}
}

func TestFailureSentinel(t *testing.T) {
	if FAILURE.Ok() {
		t.Fatal("FAILURE.Ok() must be false")
	}
	if FAILURE.Status != StatusFailed {
		t.Fatal("FAILURE must have StatusFailed")
	}
}

func TestMatchEnd(t *testing.T) {
	m := &Match{Status: StatusMatched, Offset: 3, Length: 4}
	if m.End() != 7 {
		t.Fatalf("End() = %d, want 7", m.End())
	}
}

func TestCaptureGroupOutOfRange(t *testing.T) {
	m := &Match{Status: StatusMatched, Data: TokenData{Groups: []string{"whole"}}}
	if got := m.CaptureGroup(5); got != "" {
		t.Fatalf("CaptureGroup(5) = %q, want empty", got)
	}
	if got := m.CaptureGroup(0); got != "whole" {
		t.Fatalf("CaptureGroup(0) = %q, want %q", got, "whole")
	}
}
