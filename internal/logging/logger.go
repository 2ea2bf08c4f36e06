// Package logging defines the structured-logging interface used across the
// service and the client. The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "registered", "username", name)
type Logger interface {
	// Debug logs verbose diagnostics, disabled by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message. Domain outcomes such as a taken
	// username are logged here.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs rejected or malformed requests.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs internal failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

type ctxKey struct{}

// IntoContext returns a copy of ctx carrying l. Request-scoped loggers are
// installed by the gRPC interceptors and picked up with FromContext.
func IntoContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or fallback if there is none.
func FromContext(ctx context.Context, fallback Logger) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return fallback
}
