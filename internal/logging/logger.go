// Package logging defines the structured, context-aware logger used across
// luggageshare, with slog and zap backends.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs:
//
//	log.Info(ctx, "deal created", "deal_id", d.ID, "kg", d.Kg)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger writing to w for the given backend and level name
// ("debug", "info", "warn", "error").
func New(backend, level string, w io.Writer) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendSlog, "":
		return newSlogText(w, lvl), nil
	case BackendZap:
		return NewZapLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// ParseLevel maps a level name to its slog level; "" means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("bad log level %q: %w", s, err)
	}
	return lvl, nil
}
