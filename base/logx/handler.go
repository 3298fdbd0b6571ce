// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that prints records as text lines,
// coloring the message according to its level when the output
// supports it.
type Handler struct {
	out    io.Writer
	mu     sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// Enabled reports whether the record at the given level is printed.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// Handle prints the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	out := termenv.NewOutput(h.out)
	b.WriteString(out.String(r.Message).Foreground(levelColor(out, r.Level)).String())
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	write := func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(prefix + a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{out: h.out, groups: h.groups}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

// WithGroup returns a new handler with the given group name added.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{out: h.out, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}

// levelColor returns the color used for messages at the given level.
func levelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("#ff5555")
	case level >= slog.LevelWarn:
		return out.Color("#f1c40f")
	case level >= slog.LevelInfo:
		return out.Color("#8be9fd")
	default:
		return out.Color("#6272a4")
	}
}
