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
	"fmt"
	"strconv"

	"seehuhn.de/go/emo/emoji"
)

// ParseError indicates that an emoji listing could not be parsed.
// Err is one of [*emoji.FormatError], [*DuplicateError], or
// [*StructureError].
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (err *ParseError) Error() string {
	loc := err.Source
	if err.Line > 0 {
		loc += ":" + strconv.Itoa(err.Line)
	}
	if loc == "" {
		return err.Err.Error()
	}
	return loc + ": " + err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// DuplicateError indicates that two declarations share their codepoints,
// or that two component or fully-qualified declarations share a name.
type DuplicateError struct {
	// By is either "codepoints" or "name".
	By       string
	Emoji    *emoji.Emoji
	Previous *emoji.Emoji
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate emoji by %s: %s (%s) and %s (%s) named %q",
		err.By, err.Emoji, err.Emoji.Unicode(),
		err.Previous, err.Previous.Unicode(), err.Emoji.Name())
}

// StructureError indicates a group or subgroup declaration out of order,
// an emoji in the wrong group, or an emoji without fully-qualified
// counterpart.
type StructureError struct {
	Reason string
}

func (err *StructureError) Error() string {
	return err.Reason
}

// SelectorError indicates that a selector does not name any emoji.
type SelectorError struct {
	Selector string
	Reason   string
}

func (err *SelectorError) Error() string {
	return fmt.Sprintf("selector %q %s", err.Selector, err.Reason)
}
