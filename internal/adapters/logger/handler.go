package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/apkfetch/internal/ui/output"
	"go.trai.ch/apkfetch/internal/ui/style"
)

// attrIndent prefixes every attribute line below a message.
const attrIndent = "  "

// PrettyHandler renders a record as its message, prefixed by the level icon,
// followed by one indented "key: value" line per attribute:
//
//	artifact saved
//	  xxhash64: ef46db3751d8e999
//	  path: /opt/apkfetch/Downloads/com.example.app-42.apk
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w, output.Log),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	lines := make([]string, 0, 1+len(h.attrs)+r.NumAttrs())
	lines = append(lines, icon+r.Message)
	for _, attr := range h.attrs {
		lines = append(lines, h.attrLine(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		lines = append(lines, h.attrLine(attr))
		return true
	})

	styled := h.out.String(strings.Join(lines, "\n")).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs under every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

// WithGroup returns a handler that prefixes attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	return &next
}

func (h *PrettyHandler) attrLine(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return attrIndent + key + ": " + attr.Value.Resolve().String()
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}
