package node

import (
	"io"
	"log/slog"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// Logger is the structured logger type threaded through the grid, node
// tasks, and harness: a logiface.Logger backed by a log/slog.Handler via
// the logiface-slog adapter.
type Logger = *logiface.Logger[*islog.Event]

// NopLogger returns a Logger that discards everything. Grid.Init uses this
// when the caller supplies no logger of their own, so logging is never
// mandatory for callers who don't want it.
func NopLogger() Logger {
	return islog.L.New(islog.L.WithSlogHandler(slog.NewJSONHandler(io.Discard, nil)))
}

// NewJSONLogger builds a Logger that writes newline-delimited JSON records
// to w at the given minimum level.
func NewJSONLogger(w io.Writer, level logiface.Level) Logger {
	return islog.L.New(
		islog.L.WithSlogHandler(slog.NewJSONHandler(w, nil)),
		logiface.WithLevel[*islog.Event](level),
	)
}
