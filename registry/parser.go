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

package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"seehuhn.de/go/emo/emoji"
)

// OrphanPolicy determines how minimally-qualified and unqualified
// sequences without a fully-qualified counterpart are treated.
type OrphanPolicy int

const (
	// OrphansFail makes an orphaned sequence a parse error.
	OrphansFail OrphanPolicy = iota

	// OrphansDrop silently removes orphaned sequences from the registry.
	OrphansDrop
)

// maxLineLength is the longest line accepted in a listing.
const maxLineLength = 1 << 20

// Options control how an emoji listing is read.
// The zero value is ready to use.
type Options struct {
	Orphans OrphanPolicy
}

// Load reads the emoji listing from the named file.
// If opt is nil, default options are used.
func Load(path string, opt *Options) (*Registry, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Parse(fd, path, opt)
}

// Parse reads an emoji listing in the format of emoji-test.txt.
// The source is used in error messages only.
// If opt is nil, default options are used.
//
// All errors are of type [*ParseError], except for read errors from r.
// In case of an error, no registry is returned.
func Parse(r io.Reader, source string, opt *Options) (*Registry, error) {
	if opt == nil {
		opt = &Options{}
	}
	p := &parser{
		source: source,
		opt:    *opt,
		reg:    newRegistry(),
	}

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for lines.Scan() {
		p.lineNo++
		line := lines.Text()
		if p.lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		err := p.parseLine(line)
		if err != nil {
			return nil, p.wrap(p.lineNo, err)
		}
	}
	if err := lines.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = p.wrap(p.lineNo+1, &emoji.FormatError{
				Reason: fmt.Sprintf("line longer than %d bytes", maxLineLength),
			})
		}
		return nil, err
	}
	p.cur = p.cur.close()

	err := p.repoint()
	if err != nil {
		return nil, err
	}
	return p.reg, nil
}

type state int

const (
	noGroup state = iota
	inGroup
	inSubgroup
)

// cursor tracks the current group and subgroup while reading a listing.
// Emoji of the open subgroup are collected in pending and added to the
// subgroup when it is closed.
type cursor struct {
	state    state
	group    *group
	subgroup *subgroup
	pending  []*emoji.Emoji
}

// close ends the open subgroup, if any.
func (c cursor) close() cursor {
	if c.state != inSubgroup {
		return c
	}
	c.subgroup.emoji = append(c.subgroup.emoji, c.pending...)
	return cursor{state: inGroup, group: c.group}
}

// enterGroup starts a new group.  The open subgroup must have been
// closed before.
func (c cursor) enterGroup(g *group) cursor {
	if c.state == inSubgroup {
		panic("registry: group entered with subgroup still open")
	}
	return cursor{state: inGroup, group: g}
}

// enterSubgroup starts a new subgroup of the current group.  The open
// subgroup must have been closed before.
func (c cursor) enterSubgroup(name string) (cursor, error) {
	if c.state == noGroup {
		return c, &StructureError{
			Reason: fmt.Sprintf("subgroup %q without prior group declaration", name),
		}
	}
	return cursor{state: inSubgroup, group: c.group, subgroup: c.group.getSubgroup(name)}, nil
}

type unresolved struct {
	text   string
	lineNo int
}

type parser struct {
	source string
	opt    Options
	lineNo int

	reg *Registry
	cur cursor

	// unresolved lists the minimally-qualified and unqualified sequences,
	// in order of declaration.
	unresolved []unresolved
}

const (
	groupPrefix    = "# group: "
	subgroupPrefix = "# subgroup: "
)

var declaration = regexp.MustCompile(`^` +
	`(?P<codepoints>[^;#]+?)\s*;\s*` +
	`(?P<status>\S+)\s*#\s*` +
	`(?P<display>\S+)\s+` +
	`E(?P<version>[0-9]+(?:\.[0-9]+)*)\s+` +
	`(?P<name>.+)` +
	`$`)

func (p *parser) parseLine(line string) error {
	line = strings.TrimSpace(line)

	// Groups and subgroups are declared in comments.
	if name, ok := strings.CutPrefix(line, groupPrefix); ok {
		p.cur = p.cur.close().enterGroup(p.reg.getGroup(emoji.GroupName(strings.TrimSpace(name))))
		return nil
	}
	if name, ok := strings.CutPrefix(line, subgroupPrefix); ok {
		var err error
		p.cur = p.cur.close()
		p.cur, err = p.cur.enterSubgroup(emoji.SubgroupName(strings.TrimSpace(name)))
		return err
	}
	if line == "" || line[0] == '#' {
		return nil
	}

	e, err := parseDeclaration(line)
	if err != nil {
		return err
	}
	return p.add(e)
}

func parseDeclaration(line string) (*emoji.Emoji, error) {
	m := declaration.FindStringSubmatch(line)
	if m == nil {
		return nil, &emoji.FormatError{Reason: "neither empty, comment, nor emoji declaration"}
	}
	codepoints, err := emoji.ParseCodepoints(m[1])
	if err != nil {
		return nil, err
	}
	status, err := emoji.ParseStatus(m[2])
	if err != nil {
		return nil, err
	}
	return emoji.New(m[5], codepoints, status, m[4]), nil
}

func (p *parser) add(e *emoji.Emoji) error {
	if p.cur.state != inSubgroup {
		return &StructureError{
			Reason: fmt.Sprintf("emoji %s (%s) without prior group and subgroup declaration",
				e, e.Unicode()),
		}
	}

	text := e.String()
	if prev, ok := p.reg.bySequence[text]; ok {
		return &DuplicateError{By: "codepoints", Emoji: e, Previous: prev}
	}
	named := e.IsComponent() || e.IsFullyQualified()
	if prev, ok := p.reg.byName[e.Name()]; ok && named {
		return &DuplicateError{By: "name", Emoji: e, Previous: prev}
	}

	inComponentGroup := p.cur.group.name == componentGroup
	if inComponentGroup && !e.IsComponent() {
		return &StructureError{
			Reason: fmt.Sprintf("%s emoji %s (%s) in component group",
				e.Status(), e, e.Unicode()),
		}
	}
	if e.IsComponent() && !inComponentGroup {
		return &StructureError{
			Reason: fmt.Sprintf("component emoji %s (%s) outside component group",
				e, e.Unicode()),
		}
	}

	p.reg.bySequence[text] = e
	if named {
		p.reg.byName[e.Name()] = e
		p.cur.pending = append(p.cur.pending, e)
	} else {
		p.unresolved = append(p.unresolved, unresolved{text: text, lineNo: p.lineNo})
	}
	return nil
}

// repoint replaces minimally-qualified and unqualified sequences in the
// codepoint table by their fully-qualified counterparts.
func (p *parser) repoint() error {
	for _, u := range p.unresolved {
		e := p.reg.bySequence[u.text]
		fq, ok := p.reg.byName[e.Name()]
		if ok && fq.IsFullyQualified() {
			p.reg.bySequence[u.text] = fq
			continue
		}

		if p.opt.Orphans == OrphansDrop {
			delete(p.reg.bySequence, u.text)
			continue
		}
		return p.wrap(u.lineNo, &StructureError{
			Reason: fmt.Sprintf("no fully-qualified emoji for %s %s (%s)",
				e.Status(), e, e.Unicode()),
		})
	}
	return nil
}

func (p *parser) wrap(lineNo int, err error) error {
	return &ParseError{Source: p.source, Line: lineNo, Err: err}
}
