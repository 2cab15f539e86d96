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

// Package registry reads the Unicode emoji listing emoji-test.txt.
//
// The listing, published alongside Unicode Technical Standard #51 at
// https://www.unicode.org/Public/emoji/latest/emoji-test.txt, is the most
// complete list of emoji sequences and their names.  It also arranges the
// emoji into groups and subgroups.  A [Registry] gives access to the
// emoji by name, by codepoint sequence, and by group and subgroup.
//
// Only component and fully-qualified emoji are accessible by name and
// through the groups.  Looking up the codepoints of a minimally-qualified
// or unqualified sequence yields the corresponding fully-qualified emoji.
package registry

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"seehuhn.de/go/emo/emoji"
)

// componentGroup is the name of the only group which contains
// component emoji.
const componentGroup = "component"

// Registry is a read-only collection of emoji.
type Registry struct {
	byName     map[string]*emoji.Emoji
	bySequence map[string]*emoji.Emoji
	groups     []*group
	groupIndex map[string]*group
}

type group struct {
	name      string
	subgroups []*subgroup
	index     map[string]*subgroup
}

type subgroup struct {
	name  string
	emoji []*emoji.Emoji
}

func newRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]*emoji.Emoji),
		bySequence: make(map[string]*emoji.Emoji),
		groupIndex: make(map[string]*group),
	}
}

// getGroup returns the named group, creating it if needed.
func (r *Registry) getGroup(name string) *group {
	g, ok := r.groupIndex[name]
	if !ok {
		g = &group{name: name, index: make(map[string]*subgroup)}
		r.groupIndex[name] = g
		r.groups = append(r.groups, g)
	}
	return g
}

// getSubgroup returns the named subgroup, creating it if needed.
func (g *group) getSubgroup(name string) *subgroup {
	s, ok := g.index[name]
	if !ok {
		s = &subgroup{name: name}
		g.index[name] = s
		g.subgroups = append(g.subgroups, s)
	}
	return s
}

// Len returns the number of component and fully-qualified emoji.
func (r *Registry) Len() int {
	return len(r.byName)
}

// NumSequences returns the number of codepoint sequences known to the
// registry, including minimally-qualified and unqualified ones.
func (r *Registry) NumSequences() int {
	return len(r.bySequence)
}

// Lookup returns the component or fully-qualified emoji with the given
// name.  Case is ignored.
func (r *Registry) Lookup(name string) (*emoji.Emoji, bool) {
	e, ok := r.byName[emoji.Fold(name)]
	return e, ok
}

// LookupSequence returns the emoji for the given codepoints.
// For minimally-qualified and unqualified sequences the fully-qualified
// emoji is returned.
func (r *Registry) LookupSequence(codepoints []rune) (*emoji.Emoji, bool) {
	return r.LookupText(string(codepoints))
}

// LookupText is like [Registry.LookupSequence], but takes the emoji text.
func (r *Registry) LookupText(text string) (*emoji.Emoji, bool) {
	e, ok := r.bySequence[text]
	return e, ok
}

// Names returns the names of all component and fully-qualified emoji,
// in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Groups returns the group names in order of declaration.
func (r *Registry) Groups() []string {
	res := make([]string, len(r.groups))
	for i, g := range r.groups {
		res[i] = g.name
	}
	return res
}

// HasGroup reports whether the group exists.
// The name must already be normalized, see [emoji.GroupName].
func (r *Registry) HasGroup(group string) bool {
	_, ok := r.groupIndex[group]
	return ok
}

// Subgroups returns the subgroup names of a group in order of
// declaration, or nil if the group does not exist.
func (r *Registry) Subgroups(group string) []string {
	g, ok := r.groupIndex[group]
	if !ok {
		return nil
	}
	res := make([]string, len(g.subgroups))
	for i, s := range g.subgroups {
		res[i] = s.name
	}
	return res
}

// HasSubgroup reports whether the group exists and has the subgroup.
func (r *Registry) HasSubgroup(group, subgroup string) bool {
	g, ok := r.groupIndex[group]
	if !ok {
		return false
	}
	_, ok = g.index[subgroup]
	return ok
}

// Subgroup returns the emoji of a subgroup, in order of declaration.
func (r *Registry) Subgroup(group, subgroup string) ([]*emoji.Emoji, bool) {
	g, ok := r.groupIndex[group]
	if !ok {
		return nil, false
	}
	s, ok := g.index[subgroup]
	if !ok {
		return nil, false
	}
	return slices.Clone(s.emoji), true
}

// Dump writes one line per subgroup, showing all its emoji.
func (r *Registry) Dump(w io.Writer) error {
	for _, g := range r.groups {
		for _, s := range g.subgroups {
			var b strings.Builder
			for _, e := range s.emoji {
				b.WriteString(e.String())
			}
			_, err := fmt.Fprintf(w, "%s∷%s ≡ %s\n", g.name, s.name, b.String())
			if err != nil {
				return err
			}
		}
	}
	return nil
}
