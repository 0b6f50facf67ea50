package headcontrol

import (
	"context"
	"log/slog"
)

type loggerCtxKey struct{}

// logger returns the *slog.Logger stored by LoggingContext, or a logger that
// discards everything if there isn't one.
func logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.New(discardHandler{})
	}
	l, ok := ctx.Value(loggerCtxKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.New(discardHandler{})
	}
	return l
}

// LoggingContext returns a copy of ctx that HeaderControl and its loaders will
// log to.
func LoggingContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
