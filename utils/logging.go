package utils

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// NewLogger builds the process logger. "json" produces structured logs with keys
// that log collectors understand, anything else produces a compact human readable output.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			ReplaceAttr: JSONLoggerAttributeReplacer,
		}))
	}
	return slog.New(NewLocalDevHandler(os.Stderr))
}

func JSONLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		if level, ok := a.Value.Any().(slog.Level); ok && level >= slog.LevelWarn && level < slog.LevelError {
			a.Value = slog.StringValue("WARNING")
		}
	}
	return a
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LocalDevHandler prints "time level message" followed by the attributes in text form.
type LocalDevHandler struct {
	internalHandler slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

func NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
				return slog.Attr{}
			}
			return a
		},
	}
	return &LocalDevHandler{
		internalHandler: slog.NewTextHandler(w, opts),
		mu:              &sync.Mutex{},
		w:               w,
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.internalHandler.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(r.Level.String())
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(" ")

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, b.String()); err != nil {
		return err
	}
	return h.internalHandler.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{internalHandler: h.internalHandler.WithAttrs(attrs), mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{internalHandler: h.internalHandler.WithGroup(name), mu: h.mu, w: h.w}
}
