// SPDX-License-Identifier: MIT

// Package logging builds the slog logger used by the matpow CLI: a tint
// handler on the given writer, tagged with a per-run id.
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Config selects the handler behaviour.
type Config struct {
	Level      slog.Level
	Color      bool
	TimeFormat string
}

// New returns a logger writing to w. When id is not uuid.Nil every record
// carries it as run=<id>.
func New(w io.Writer, cfg Config, id uuid.UUID) *slog.Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: cfg.TimeFormat,
		NoColor:    !cfg.Color,
	})
	l := slog.New(h)
	if id != uuid.Nil {
		l = l.With(slog.String("run", id.String()))
	}

	return l
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError + 1}))
}
