package grammex

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Position locates a byte offset within the input by line and column,
// counting from zero. Columns are byte offsets into the line, since the
// engine treats the input as an opaque byte stream (see Iterator).
type Position struct {
	Offset int
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d+%d", pos.Line+1, pos.Column+1, pos.Offset)
}

// lineTracker incrementally indexes separator-byte offsets as the iterator's
// buffer grows, so that both the iterator's live line counter and ad-hoc
// Position lookups (for diagnostics on a match) share one cache instead of
// rescanning the whole input on every query.
//
// Adapted from the line/column calculator design used for grammar variable
// capture positions: a sorted cache of line-ending offsets plus a binary
// search, grounded in hucsmn-peg's positionCalculator (position.go).
type lineTracker struct {
	sep    byte
	cached int   // buffer is scanned for separators up to this offset
	lnends []int // offsets one past each separator byte seen so far
}

func newLineTracker(sep byte) *lineTracker {
	return &lineTracker{sep: sep}
}

// index scans buf[start:end] (absolute offsets start==lt.cached is assumed
// by callers that keep the buffer's base offset at zero; iterators with a
// discarded prefix must translate first) for separator bytes, recording
// their positions. It must be called with monotonically increasing ends as
// the buffer grows.
func (lt *lineTracker) index(buf []byte, bufBase, end int) {
	for ; lt.cached < end; lt.cached++ {
		if buf[lt.cached-bufBase] == lt.sep {
			lt.lnends = append(lt.lnends, lt.cached+1)
		}
	}
}

// lineAt returns the zero-based line number and the offset where that line
// begins, for any offset already indexed. The lookup is a binary search over
// lnends (sorted ascending by construction) via the pack's generic slices
// helper rather than a hand-rolled one.
func (lt *lineTracker) lineAt(offset int) (line, lineStart int) {
	if len(lt.lnends) == 0 {
		return 0, 0
	}

	i := slices.BinarySearch(lt.lnends, offset+1)
	if i == 0 {
		return 0, 0
	}
	return i, lt.lnends[i-1]
}

// positionAt computes the full Position of offset, given access to the
// buffer bytes backing it (needed to count the column in bytes).
func (lt *lineTracker) positionAt(offset int, buf []byte, bufBase int) Position {
	line, lineStart := lt.lineAt(offset)
	return Position{
		Offset: offset,
		Line:   line,
		Column: offset - lineStart,
	}
}
