// seehuhn.de/go/emo - emoji tables and graphics for LaTeX
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package console prints messages for the user of a command line tool.
//
// [Handler] is a [slog.Handler] which writes one line per record, using
// colours when the output is a terminal.  [Listing] prints sections with
// a header line followed by indented detail lines.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// SGR sequences.
const (
	bold   = "1"
	red    = "1;31"
	orange = "1;38;5;208"
	blue   = "1;34"
	faint  = "2"
	reset  = "0;39"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// output is shared between a handler and the handlers derived from it.
type output struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func (o *output) sgr(code, text string) string {
	if !o.color {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[" + reset + "m"
}

func (o *output) println(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := io.WriteString(o.w, text+"\n")
	return err
}

// Handler writes log records as single lines of text.
type Handler struct {
	out    *output
	level  slog.Leveler
	attrs  string
	prefix string
}

// NewHandler returns a handler which writes records of at least the given
// level to w.  Colours are used if w is a terminal.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:   &output{w: w, color: IsTerminal(w)},
		level: level,
	}
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements [slog.Handler].
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var code, label string
	switch {
	case r.Level >= slog.LevelError:
		code, label = red, "ERROR"
	case r.Level >= slog.LevelWarn:
		code, label = orange, "WARNING"
	case r.Level >= slog.LevelInfo:
		code, label = blue, "INFO"
	default:
		code, label = faint, "DEBUG"
	}

	b := &strings.Builder{}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(b, h.prefix, a)
		return true
	})
	return h.out.println(h.out.sgr(code, b.String()))
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	b := &strings.Builder{}
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(b, h.prefix, a)
	}
	h2 := *h
	h2.attrs = b.String()
	return &h2
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			appendAttr(b, prefix, g)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%s", prefix, a.Key, quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// Listing prints sections of information.
type Listing struct {
	out   *output
	first bool
}

// NewListing returns a listing which writes to w.
func NewListing(w io.Writer) *Listing {
	return &Listing{
		out:   &output{w: w, color: IsTerminal(w)},
		first: true,
	}
}

// Header starts a new section.  Sections are separated by empty lines.
func (l *Listing) Header(text string) error {
	if !l.first {
		if err := l.out.println(""); err != nil {
			return err
		}
	}
	l.first = false
	return l.out.println(l.out.sgr(bold, text))
}

// Detail prints an indented line of the current section.
func (l *Listing) Detail(format string, args ...any) error {
	return l.out.println("    " + fmt.Sprintf(format, args...))
}
