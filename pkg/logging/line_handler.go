package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
)

const lineTimeLayout = "2006-01-02T15:04:05.000Z"

// lineHandler writes records as single lines:
//
//	2024-01-15T10:30:00.000Z  INFO token refreshed user=bob
//
// The level is right-aligned to five columns so every level is surrounded by
// spaces.
type lineHandler struct {
	mu      *sync.Mutex
	out     io.Writer
	level   slog.Leveler
	addTime bool
	prefix  string // pre-rendered attributes from WithAttrs
	groups  []string
}

func newLineHandler(out io.Writer, level slog.Leveler, addTime bool) *lineHandler {
	return &lineHandler{
		mu:      &sync.Mutex{},
		out:     out,
		level:   level,
		addTime: addTime,
	}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if h.addTime && !r.Time.IsZero() {
		sb.WriteString(r.Time.UTC().Format(lineTimeLayout))
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "%5s ", levelName(r.Level))
	sb.WriteString(r.Message)
	sb.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.groups, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		writeAttr(&sb, h.groups, a)
	}
	clone := *h
	clone.prefix = sb.String()
	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func levelName(level slog.Level) string {
	if level < slog.LevelDebug {
		return "TRACE"
	}
	return level.String()
}

func writeAttr(sb *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		nested := groups
		if a.Key != "" {
			nested = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, nested, ga)
		}
		return
	}

	sb.WriteByte(' ')
	for _, g := range groups {
		sb.WriteString(g)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().UTC().Format(time.RFC3339Nano)
	case slog.KindDuration:
		s = v.Duration().String()
	default:
		s = v.String()
	}
	if needsQuoting(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
