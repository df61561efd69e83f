package main

import "github.com/lindqvist/grammex"

// builtinGrammar wires up the arithmetic-expression grammar of the engine's
// Scenario A test (NUMBER/VAR/OP/Value/Suffix/Expr), so the REPL
// has something to parse out of the box without requiring a grammar file.
func builtinGrammar() *grammex.Grammar {
	number := grammex.Named(grammex.MustToken(`\d+`), "NUMBER")
	variable := grammex.Named(grammex.MustToken(`\w+`), "VAR")
	op := grammex.Named(grammex.MustToken(`[+\-*/]`), "OP")

	value := grammex.Named(grammex.Group(
		grammex.Ref(number),
		grammex.Ref(variable),
	), "Value")

	suffix := grammex.Named(grammex.Rule(
		grammex.Ref(op),
		grammex.Ref(value),
	), "Suffix")

	expr := grammex.Named(grammex.Rule(
		grammex.Ref(value),
		grammex.Ref(suffix).WithCardinality(grammex.ManyOptional),
	), "Expr")

	return grammex.New("repl-expr").Axiom(expr)
}
