package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. Services take
// a logger unconditionally, so tests pass this one.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
