package logger

import (
	"context"
	"log/slog"
)

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (d discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (d discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return d }
func (d discardHandler) WithGroup(string) slog.Handler             { return d }

// Discard returns a logger that drops every record. Packages use it when the
// caller supplies no logger.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}
