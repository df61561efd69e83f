package grammex

import (
	"errors"
	"testing"
)

func TestProcedureAlwaysSucceedsZeroWidth(t *testing.T) {
	ctx := newTestContext("abc")
	called := false
	p := Procedure(func(*ParsingContext) error {
		called = true
		return nil
	})

	m, err := p.recognize(ctx)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if !called {
		t.Fatal("expected the callback to run")
	}
	if !m.Ok() || m.Length != 0 {
		t.Fatalf("match = %+v, want a zero-width success", m)
	}
	if ctx.it.Offset() != 0 {
		t.Fatalf("cursor moved to %d, want 0", ctx.it.Offset())
	}
}

func TestConditionGatesOnPredicate(t *testing.T) {
	ctx := newTestContext("abc")
	pass := Condition(func(*ParsingContext) (bool, error) { return true, nil })
	fail := Condition(func(*ParsingContext) (bool, error) { return false, nil })

	m, err := pass.recognize(ctx)
	if err != nil || !m.Ok() {
		t.Fatalf("expected a passing Condition to succeed, got m=%+v err=%v", m, err)
	}

	m2, err := fail.recognize(ctx)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if m2.Ok() {
		t.Fatal("expected a failing Condition to produce FAILURE")
	}
}

func TestCallbackErrorAbortsParse(t *testing.T) {
	cause := errors.New("boom")
	p := Named(Procedure(func(*ParsingContext) error { return cause }), "explode")
	g := New("aborting").Axiom(p)

	_, err := g.ParseText("x")
	if err == nil {
		t.Fatal("expected the parse to abort with an error")
	}
	var cbErr *UserCallbackError
	if !errors.As(err, &cbErr) {
		t.Fatalf("expected a *UserCallbackError, got %T: %v", err, err)
	}
	if !errors.Is(cbErr, cause) && cbErr.Cause != cause {
		t.Fatalf("expected the callback error to wrap the original cause, got %v", cbErr.Cause)
	}
}
