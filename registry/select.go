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
	"strings"

	"seehuhn.de/go/emo/emoji"
)

// Special selectors.
const (
	SelectAll        = "ALL"
	SelectNonDiverse = "NONDIVERSE"
)

// peopleGroup is the group searched by the NONDIVERSE selector.
const peopleGroup = "people-and-body"

// Select returns the emoji matching the given selectors.
//
// A selector is one of
//
//   - "ALL": all component and fully-qualified emoji,
//   - "NONDIVERSE": the emoji of the people & body group which specify
//     neither gender, nor hair style, nor skin tone,
//   - "<group>::<subgroup>": the emoji of a subgroup,
//   - "<group>": the emoji of all subgroups of a group,
//   - "<name>": a single emoji.
//
// Group names may be abbreviated, see [emoji.GroupName].
// The result lists the emoji in the order of the selectors, and in order
// of declaration within each selector.  Emoji matched by more than one
// selector are listed more than once.
func (r *Registry) Select(selectors ...string) ([]*emoji.Emoji, error) {
	var res []*emoji.Emoji

	for _, sel := range selectors {
		switch {
		case sel == SelectAll:
			for _, g := range r.groups {
				res = g.appendTo(res)
			}

		case sel == SelectNonDiverse:
			res = append(res, r.NonDiverse()...)

		case strings.Contains(sel, "::"):
			parts := strings.Split(sel, "::")
			if len(parts) != 2 {
				return nil, &SelectorError{Selector: sel, Reason: "does not combine two names"}
			}
			groupName := emoji.GroupName(parts[0])
			subgroupName := emoji.SubgroupName(parts[1])
			g, ok := r.groupIndex[groupName]
			if !ok {
				return nil, &SelectorError{Selector: sel, Reason: "names non-existent group"}
			}
			s, ok := g.index[subgroupName]
			if !ok {
				return nil, &SelectorError{Selector: sel, Reason: "names non-existent subgroup"}
			}
			res = append(res, s.emoji...)

		default:
			if g, ok := r.groupIndex[emoji.GroupName(sel)]; ok {
				res = g.appendTo(res)
				continue
			}
			if e, ok := r.Lookup(sel); ok {
				res = append(res, e)
				continue
			}
			return nil, &SelectorError{Selector: sel, Reason: "names neither emoji nor group"}
		}
	}

	return res, nil
}

// NonDiverse returns the emoji of the people & body group which specify
// neither gender, nor hair style, nor skin tone.
func (r *Registry) NonDiverse() []*emoji.Emoji {
	g, ok := r.groupIndex[peopleGroup]
	if !ok {
		return nil
	}

	var res []*emoji.Emoji
	for _, s := range g.subgroups {
		for _, e := range s.emoji {
			if !e.IsDiverse() {
				res = append(res, e)
			}
		}
	}
	return res
}

func (g *group) appendTo(res []*emoji.Emoji) []*emoji.Emoji {
	for _, s := range g.subgroups {
		res = append(res, s.emoji...)
	}
	return res
}
