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


// Package latex writes the emoji table read by the emo LaTeX package.
//
// The table, emo.def, defines one macro per emoji.  Groups and subgroups
// of the Unicode emoji listing are marked by \EmojiBeginGroup,
// \EmojiBeginSubgroup and the matching end macros, so that the package
// can offer its own grouping commands.
package latex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"seehuhn.de/go/emo/emoji"
	"seehuhn.de/go/emo/registry"
)

// special lists the characters with a special meaning to TeX.
const special = `#$%&~_^\{}`

// Define returns the definition of the macro for the named emoji.
func Define(name, body string) string {
	if strings.Contains(name, "-") {
		return `\expandafter\def\csname emo@emoji@` + name + `\endcsname{` + body + `}`
	}
	return `\def\emo@emoji@` + name + `{` + body + `}`
}

// Entry returns the table entry for e.
func Entry(e *emoji.Emoji) string {
	body := e.String()
	if strings.ContainsAny(body, special) {
		body = Chars(e)
	}
	return Define(e.Name(), body)
}

// Chars returns the codepoints of e in TeX's \char"XXXX notation.
func Chars(e *emoji.Emoji) string {
	var b strings.Builder
	for _, cp := range e.Codepoints() {
		fmt.Fprintf(&b, `\char"%04X`, cp)
	}
	return b.String()
}

// Extra is an additional table entry which is not an emoji.
type Extra struct {
	Name string
	Text string
}

// Extras are defined at the end of the table, enabled by the
// \ifEmojiExtra switch.
var Extras = []Extra{
	{Name: "lingchi", Text: "凌遲"},
	{Name: "YHWH", Text: "יהוה"},
}

// TableOptions control the header of the table.
type TableOptions struct {
	// Date is shown in the \ProvidesFile line.  If zero, the current date
	// is used.
	Date time.Time

	// Version is shown in the \ProvidesFile line.  If empty, "v1.0" is
	// used.
	Version string
}

// WriteTable writes the table for the selected emoji to w.
//
// The emoji are written in the order of the registry, independent of the
// order of the selection.  Each emoji is written at most once.  Groups
// and subgroups without any selected emoji are omitted.
// WriteTable returns the emoji written to the table.
func WriteTable(w io.Writer, reg *registry.Registry, selection []*emoji.Emoji, opt *TableOptions) ([]*emoji.Emoji, error) {
	if opt == nil {
		opt = &TableOptions{}
	}
	date := opt.Date
	if date.IsZero() {
		date = time.Now()
	}
	version := opt.Version
	if version == "" {
		version = "v1.0"
	}

	selected := make(map[string]bool, len(selection))
	for _, e := range selection {
		selected[e.String()] = true
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "\\ProvidesFile{emo.def}[%s %s emo•ji table]\n",
		date.Format(time.DateOnly), version)

	var written []*emoji.Emoji
	for _, g := range reg.Groups() {
		var included []string
		for _, s := range reg.Subgroups(g) {
			list, _ := reg.Subgroup(g, s)
			for _, e := range list {
				if selected[e.String()] {
					included = append(included, s)
					break
				}
			}
		}
		if len(included) == 0 {
			continue
		}

		fmt.Fprintf(out, "\n\n\\EmojiBeginGroup{%s}\n", g)
		for i, s := range included {
			if i > 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(out, "\\EmojiBeginSubgroup{%s}{%s}\n", g, s)
			list, _ := reg.Subgroup(g, s)
			for _, e := range list {
				if !selected[e.String()] {
					continue
				}
				delete(selected, e.String())
				written = append(written, e)
				out.WriteString(Entry(e))
				out.WriteString("\n")
			}
			fmt.Fprintf(out, "\\EmojiEndSubgroup{%s}{%s}\n", g, s)
		}
		fmt.Fprintf(out, "\\EmojiEndGroup{%s}\n", g)
	}

	out.WriteString("\n\\ifEmojiExtra\n")
	out.WriteString("\\EmojiBeginGroup{extra}\n")
	out.WriteString("\\EmojiBeginSubgroup{extra}{extra}\n")
	for _, x := range Extras {
		out.WriteString(Define(x.Name, x.Text))
		out.WriteString("\n")
	}
	out.WriteString("\\EmojiEndSubgroup{extra}{extra}\n")
	out.WriteString("\\EmojiEndGroup{extra}\n")
	out.WriteString("\\fi\n")

	err := out.Flush()
	if err != nil {
		return nil, err
	}
	return written, nil
}
