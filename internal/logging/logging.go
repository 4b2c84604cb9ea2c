// Package logging configures the process-wide structured logger. The handler
// renders single-line colored output for terminal use, and request IDs travel
// via context so HTTP middleware and pipeline stages tag their lines
// consistently.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// ANSI escape sequences.
const (
	reset     = "\033[0m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	magenta   = "\033[35m"
	cyan      = "\033[36m"
	white     = "\033[37m"
	boldBlue  = "\033[1;34m"
	boldWhite = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: cyan,
	slog.LevelInfo:  green,
	slog.LevelWarn:  yellow,
	slog.LevelError: red,
}

type contextKey string

// requestIDKey carries the per-request correlation ID through context.
const requestIDKey contextKey = "request_id"

// Handler renders records as colored single-line text. It is not a general
// purpose handler: groups are flattened and attributes print in insertion
// order, which is what terminal scanning wants.
type Handler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewHandler writes colored records at or above level to w.
func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(fmt.Sprintf("%s%s%s ", magenta, r.Time.Format("15:04:05.000"), reset))

	color, ok := levelColors[r.Level]
	if !ok {
		color = white
	}
	line.WriteString(fmt.Sprintf("%s%-5s%s ", color, strings.ToUpper(r.Level.String()), reset))

	if id := RequestID(ctx); id != "" {
		line.WriteString(fmt.Sprintf("%s[%s]%s ", boldBlue, id, reset))
	}

	line.WriteString(fmt.Sprintf("%s%s%s", boldWhite, r.Message, reset))

	writeAttr := func(a slog.Attr) bool {
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		line.WriteString(fmt.Sprintf(" %s%s%s=%s", yellow, a.Key, reset, val))
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{mu: h.mu, out: h.out, level: h.level, attrs: merged}
}

// WithGroup flattens groups; attribute keys keep their bare names.
func (h *Handler) WithGroup(string) slog.Handler { return h }

// Setup installs the colored handler as the process default logger, writing
// to stderr so report output on stdout stays machine-readable. Verbose lowers
// the threshold to debug.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, level)))
}

// WithRequestID returns a context carrying the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID extracts the request correlation ID, or "" when absent.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
