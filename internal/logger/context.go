package logger

import (
	"context"
	"io"
)

type contextKey struct{}

// NewContext returns a copy of ctx that carries l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the Logger stored in ctx by NewContext.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger: context carries no Logger")
	}

	return l
}

// MaybeFromContext is like FromContext but returns a Logger that discards
// everything when ctx carries none.
func MaybeFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return l
	}

	return New(io.Discard, Error+1)
}
