package core

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that discards all output. Simulations start with
// it until a caller installs a real logger.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// ParseLevel maps the names accepted by the -log-level flag to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(name))
	return lvl, err
}
