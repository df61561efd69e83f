package main

import (
	"fmt"

	"github.com/lindqvist/grammex"
	"github.com/pterm/pterm"
)

// leveledMatch flattens a match tree into a pterm.LeveledList, the same
// shape npillmayer-gorgo's T.REPL builds from an s-expression AST before
// handing it to pterm.NewTreeFromLeveledList.
func leveledMatch(m *grammex.Match, ll pterm.LeveledList, level int) pterm.LeveledList {
	for cur := m; cur != nil; cur = cur.Next {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: describeMatch(cur)})
		if cur.Child != nil {
			ll = leveledMatch(cur.Child, ll, level+1)
		}
	}
	return ll
}

func describeMatch(m *grammex.Match) string {
	name := "?"
	if m.Element != nil {
		if m.Element.Name() != "" {
			name = m.Element.Name()
		} else {
			name = m.Element.Kind().String()
		}
	} else {
		name = "<empty>"
	}
	return fmt.Sprintf("%s [%d,%d)", name, m.Offset, m.End())
}

// printMatchTree renders m either as a pterm tree (color-capable terminals)
// or a flat indented dump (redirected output, --color=never).
func printMatchTree(m *grammex.Match, colorful bool) {
	if !m.Ok() {
		pterm.Error.Println("no match")
		return
	}
	if colorful {
		ll := leveledMatch(m, pterm.LeveledList{}, 0)
		root := pterm.NewTreeFromLeveledList(ll)
		pterm.DefaultTree.WithRoot(root).Render()
		return
	}
	printFlat(m, 0)
}

func printFlat(m *grammex.Match, depth int) {
	for cur := m; cur != nil; cur = cur.Next {
		for i := 0; i < depth; i++ {
			fmt.Print("  ")
		}
		fmt.Println(describeMatch(cur))
		if cur.Child != nil {
			printFlat(cur.Child, depth+1)
		}
	}
}
