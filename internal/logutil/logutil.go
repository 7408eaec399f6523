// Package logutil provides the structured diagnostic logger used
// alongside the CLI's plain-text, contractual stdout/stderr output. Log
// lines here are operational diagnostics (cmd/dragknife logs the scanned
// header hints at debug level); they are never part of the tool's
// documented output contract.
package logutil

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-formatted logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default is the package-level logger, writing to stderr at info level.
// cmd/dragknife uses a debug-level logger from New instead under --verbose.
var Default = New(os.Stderr, zerolog.InfoLevel)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
