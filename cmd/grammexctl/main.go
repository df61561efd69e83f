/*
Grammexctl is an interactive REPL for experimenting with grammex grammars.

It loads an optional TOML config for defaults (color mode, readline history
file), then applies flag overrides, and opens a readline-backed session that
parses each line against a small built-in arithmetic-expression grammar,
printing the resulting match tree.

Usage:

	grammexctl [flags]

The flags are:

	-c, --config FILE
		TOML config file to load defaults from. Defaults to "grammexctl.toml"
		in the current directory if present.

	--color MODE
		One of "auto", "always", "never". Defaults to "auto": colorful tree
		output when stdout is a terminal, a flat indented dump otherwise.

	--history FILE
		Readline history file path. Empty disables history.
*/
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "grammexctl.toml", "TOML config file to load defaults from")
	color := pflag.String("color", "", `color mode: "auto", "always" or "never" (overrides config)`)
	history := pflag.String("history", "", "readline history file path (overrides config)")
	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grammexctl: loading config:", err)
		os.Exit(1)
	}
	if *color != "" {
		cfg.Color = *color
	}
	if *history != "" {
		cfg.HistoryFile = *history
	}

	colorful := resolveColor(cfg.Color)

	g := builtinGrammar()
	session, err := newREPL(cfg, g, colorful)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grammexctl:", err)
		os.Exit(1)
	}
	defer session.Close()

	session.run()
}

// resolveColor turns the "auto"/"always"/"never" config knob into a concrete
// decision, detecting a terminal with go-isatty the way a CLI that wants to
// avoid emitting control sequences into a pipe or log file does.
func resolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}
