package grammex

import "fmt"

// grammexError is the concrete error type used for every error kind the
// engine raises directly, including GrammarBuildError for a pattern the
// regex engine rejects (the regex error's text is folded into the message).
// Errors returned by user callbacks are carried by UserCallbackError
// instead, which wraps them.
type grammexError struct {
	kind  string
	value string
}

func (err *grammexError) Error() string {
	return "grammex: " + err.kind + ": " + err.value
}

func errorf(kind, format string, v ...interface{}) error {
	return &grammexError{kind: kind, value: fmt.Sprintf(format, v...)}
}

// Error kind tags. RecognitionFailure is deliberately absent: a failed
// recognition is the FAILURE sentinel value, never an error.
const (
	kindGrammarBuild = "GrammarBuildError"
	kindIO           = "IOError"
	kindUserCallback = "UserCallbackError"
	kindInternal     = "internal error"
)

var (
	errorNilAxiom = errorf(kindGrammarBuild, "grammar has no axiom element")
	errorNilChild = errorf(kindGrammarBuild, "composite element has a nil child reference")

	errorBadCardinality = func(card Cardinality) error {
		return errorf(kindGrammarBuild, "reference has unset or invalid cardinality %v", card)
	}
	errorBadRegex = func(pattern string, cause error) error {
		return errorf(kindGrammarBuild, "invalid token pattern %q: %v", pattern, cause)
	}
	errorSourceUnavailable = func(cause error) error {
		return errorf(kindIO, "input source unavailable: %v", cause)
	}
	errorNonSeekable = func(offset int) error {
		return errorf(kindIO, "cannot seek to offset %d: source is non-seekable and precedes the buffered window", offset)
	}
)

// UserCallbackError wraps an error raised by a Procedure or Condition
// callback. It unwinds the parse synchronously: recognition aborts and the
// partial match tree built so far is discarded by the caller.
type UserCallbackError struct {
	Element Element
	Cause   error
}

func (err *UserCallbackError) Error() string {
	name := "<anonymous>"
	if err.Element != nil && err.Element.Name() != "" {
		name = err.Element.Name()
	}
	return fmt.Sprintf("grammex: %s: callback on element %q failed: %v", kindUserCallback, name, err.Cause)
}

func (err *UserCallbackError) Unwrap() error {
	return err.Cause
}
