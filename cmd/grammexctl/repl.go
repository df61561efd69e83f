package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lindqvist/grammex"
)

// repl drives an interactive readline session, parsing each line against g
// and printing its match tree. Quit with ctrl-D, same convention as
// npillmayer-gorgo's T.REPL.
type repl struct {
	rl       *readline.Instance
	grammar  *grammex.Grammar
	colorful bool
}

func newREPL(cfg Config, g *grammex.Grammar, colorful bool) (*repl, error) {
	rlcfg := &readline.Config{Prompt: "grammex> "}
	if cfg.HistoryFile != "" {
		rlcfg.HistoryFile = cfg.HistoryFile
	}
	rl, err := readline.NewEx(rlcfg)
	if err != nil {
		return nil, fmt.Errorf("create readline session: %w", err)
	}
	return &repl{rl: rl, grammar: g, colorful: colorful}, nil
}

func (r *repl) Close() error {
	return r.rl.Close()
}

func (r *repl) run() {
	fmt.Println("grammexctl - quit with ctrl-D")
	for {
		line, err := r.rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m, err := r.grammar.ParseText(line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		printMatchTree(m, r.colorful)
	}
}
