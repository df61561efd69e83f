package grammex

// MatchStatus is the outcome of a recognition attempt.
type MatchStatus int

const (
	// StatusFailed marks the FAILURE sentinel. Never allocated directly.
	StatusFailed MatchStatus = iota
	// StatusMatched marks a successful recognition, possibly zero-width.
	StatusMatched
)

func (s MatchStatus) String() string {
	if s == StatusMatched {
		return "matched"
	}
	return "failed"
}

// Match is a node in the output parse tree. A composite element (Group,
// Rule) links to its first child match through Child; a reference
// recognized under many/many_optional cardinality chains repetitions
// through Next. Word and Token matches never set Child. Procedure and
// Condition matches are always zero-width with no Child.
//
// FAILURE is the only Match with Status == StatusFailed; every other Match
// is a successful recognition, including zero-width ones produced by an
// optional reference finding nothing, or by Procedure/Condition.
type Match struct {
	Status  MatchStatus
	Offset  int
	Length  int
	Element Element
	Context *ParsingContext
	Data    interface{}
	Next    *Match
	Child   *Match
}

// FAILURE is the statically allocated failure sentinel. It must be compared
// by identity (m == FAILURE), carries no position information, and is never
// mutated or freed: the garbage collector reclaims ordinary Match nodes, so
// there is no destructor to call on it, unlike the reference-counted
// sentinel this design descends from.
var FAILURE = &Match{Status: StatusFailed}

// Ok reports whether m is a successful match (and not nil or FAILURE).
func (m *Match) Ok() bool {
	return m != nil && m.Status == StatusMatched
}

// End returns the absolute offset immediately after the matched span.
func (m *Match) End() int {
	return m.Offset + m.Length
}

func newMatch(ctx *ParsingContext, el Element, offset, length int) *Match {
	return &Match{
		Status:  StatusMatched,
		Offset:  offset,
		Length:  length,
		Element: el,
		Context: ctx,
	}
}

// emptyMatch builds the "empty match" a reference produces when an
// optional or many_optional cardinality finds nothing: a successful
// zero-width match with no producing element.
func emptyMatch(ctx *ParsingContext, offset int) *Match {
	return &Match{
		Status:  StatusMatched,
		Offset:  offset,
		Length:  0,
		Element: nil,
		Context: ctx,
	}
}

// TokenData is the capture payload attached to a Token match: the full
// matched text plus any regex capture groups, indexed from 1 (group 0 is
// the whole match, mirroring standard regex group numbering).
type TokenData struct {
	Groups []string
	Named  map[string]string
}

// CaptureGroup returns the i-th capture group of a Token match, or an empty
// string if i is out of range or m did not come from a Token. Group 0 is
// the text of the whole match.
func (m *Match) CaptureGroup(i int) string {
	td, ok := m.Data.(TokenData)
	if !ok || i < 0 || i >= len(td.Groups) {
		return ""
	}
	return td.Groups[i]
}

// CaptureGroupByName returns a Token match's named capture group, or "" if
// m did not come from a Token or has no group of that name. Supplements the
// positional CaptureGroup lookup for patterns written with named groups
// (e.g. `(?<year>\d+)`).
func (m *Match) CaptureGroupByName(name string) string {
	td, ok := m.Data.(TokenData)
	if !ok {
		return ""
	}
	return td.Named[name]
}

// Walk traverses the chain starting at root in pre-order: each node in the
// Next-linked chain is visited, and whenever a node has a Child subtree,
// that subtree is walked (recursively, depth-first) before moving to the
// node's sibling. It returns the number of nodes visited, so callers can
// compute traversal sizes without a second pass.
func Walk(root *Match, visit func(*Match)) int {
	steps := 0
	for cur := root; cur != nil; cur = cur.Next {
		visit(cur)
		steps++
		if cur.Child != nil {
			steps += Walk(cur.Child, visit)
		}
	}
	return steps
}

// Release is a no-op kept for API symmetry with the acquire/release
// lifecycle described for match trees: ordinary Go garbage collection frees
// match nodes (and any Token capture groups they hold) once unreferenced,
// and FAILURE is never freed since it is a package-level sentinel.
func Release(*Match) {}
