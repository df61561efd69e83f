package grammex

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// tokenElement recognizes text matching a PCRE-compatible regular
// expression, anchored at the cursor. The stdlib regexp package implements
// RE2 semantics (no backreferences, no lookaround), which falls short of
// the PCRE dialect the token language is specified against; regexp2 is the
// pack's PCRE-compatible engine (seen in odvcencio-mane's dependency
// stack) and is used here for that reason.
type tokenElement struct {
	elementBase
	source string
	re     *regexp2.Regexp
}

// Token compiles pattern and returns an element that recognizes text
// matching it anchored at the cursor. Compilation failure is a
// GrammarBuildError raised immediately, at the point of this call.
func Token(pattern string) (Element, error) {
	// \G anchors the match to start exactly at the search position passed
	// to FindStringMatchStartingAt, rather than letting regexp2 search
	// forward for the first match anywhere in the tail of the text -
	// the anchoring behavior Token recognition requires.
	re, err := regexp2.Compile(`\G(?:`+pattern+`)`, regexp2.None)
	if err != nil {
		return nil, errorBadRegex(pattern, err)
	}
	return &tokenElement{elementBase: newElementBase(), source: pattern, re: re}, nil
}

// MustToken is like Token but panics on a malformed pattern, for use with
// patterns that are grammar-literal constants known not to fail.
func MustToken(pattern string) Element {
	el, err := Token(pattern)
	if err != nil {
		panic(err)
	}
	return el
}

func (t *tokenElement) Kind() ElementKind  { return KindToken }
func (t *tokenElement) refs() []*Reference { return nil }

func (t *tokenElement) recognize(ctx *ParsingContext) (*Match, error) {
	start := ctx.it.Offset()
	text := ctx.it.TextFrom(start)

	m, err := t.re.FindStringMatchStartingAt(text, 0)
	if err != nil {
		return nil, errorf(kindInternal, "regex engine error on pattern %q: %v", t.source, err)
	}
	if m == nil {
		return FAILURE, nil
	}

	// regexp2 reports Length in runes; the iterator advances in bytes.
	length := len(m.String())
	ctx.it.Move(length)

	groups := m.Groups()
	values := make([]string, len(groups))
	var named map[string]string
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		values[i] = g.String()
		if _, err := strconv.Atoi(g.Name); err != nil {
			if named == nil {
				named = make(map[string]string)
			}
			named[g.Name] = g.String()
		}
	}

	match := newMatch(ctx, t, start, length)
	match.Data = TokenData{Groups: values, Named: named}
	return match, nil
}

func (t *tokenElement) String() string {
	if t.name != "" {
		return t.name
	}
	return "token(/" + t.source + "/)"
}
