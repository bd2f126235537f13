// Package xlog holds the logging defaults shared by the path finders.
package xlog

import (
	"io"

	"golang.org/x/exp/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return discard }

// Or returns l, or the discarding logger when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}

	return l
}
