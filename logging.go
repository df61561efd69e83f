package grammex

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level structured logger every parse run derives
// its per-run logger from. It defaults to a console writer at info level;
// consumers embedding the engine in a larger service can replace it
// wholesale (e.g. with one that writes JSON to their own sink).
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// SetLogLevel adjusts the minimum severity the package logger emits.
func SetLogLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

// grammarLogger returns a logger tagged with the grammar's name and the
// current parse run's correlation id, so concurrent parses over the same
// prepared grammar, each with its own ParsingContext, can be told apart in
// the log stream.
func grammarLogger(grammarName, runID string) zerolog.Logger {
	return Logger.With().
		Str("grammar", grammarName).
		Str("run", runID).
		Logger()
}
