package grammex

import (
	"strings"
	"testing"
)

func TestIteratorMovePeek(t *testing.T) {
	it := NewIterator(strings.NewReader("hello world"))

	if !it.HasMore() {
		t.Fatal("expected more input")
	}
	if got := string(it.Peek(5)); got != "hello" {
		t.Fatalf("Peek(5) = %q, want %q", got, "hello")
	}
	if it.Offset() != 0 {
		t.Fatalf("Peek must not move the cursor, offset = %d", it.Offset())
	}

	if !it.Move(5) {
		t.Fatal("Move(5) reported end of input too early")
	}
	if it.Offset() != 5 {
		t.Fatalf("offset after Move(5) = %d, want 5", it.Offset())
	}

	it.Move(6)
	if !it.AtEOF() {
		t.Fatal("expected AtEOF after consuming the whole input")
	}
}

func TestIteratorMoveToRewinds(t *testing.T) {
	it := NewIterator(strings.NewReader("abcdef"))
	it.Move(4)
	if err := it.MoveTo(1); err != nil {
		t.Fatalf("MoveTo(1): %v", err)
	}
	if got := string(it.Peek(1)); got != "b" {
		t.Fatalf("Peek(1) after rewind = %q, want %q", got, "b")
	}
}

func TestIteratorLineTracking(t *testing.T) {
	it := NewIterator(strings.NewReader("one\ntwo\nthree"))
	it.Move(4) // past "one\n"
	pos := it.Position()
	if pos.Line != 1 || pos.Column != 0 {
		t.Fatalf("Position() = %+v, want line 1 column 0", pos)
	}

	it.Move(4) // past "two\n"
	pos = it.Position()
	if pos.Line != 2 || pos.Column != 0 {
		t.Fatalf("Position() = %+v, want line 2 column 0", pos)
	}
}

func TestIteratorNonSeekableNegativeOffset(t *testing.T) {
	it := NewIterator(strings.NewReader("abc"))
	if err := it.MoveTo(-1); err == nil {
		t.Fatal("expected an error seeking to a negative offset")
	}
}
