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


package pagegroup

import "fmt"

// ReferenceError indicates that an object reference in a document could not
// be followed.
type ReferenceError struct {
	Ref    string
	Reason string
}

func (err *ReferenceError) Error() string {
	return fmt.Sprintf("object %s: %s", err.Ref, err.Reason)
}

// CardinalityError indicates that a document does not have exactly one page.
type CardinalityError struct {
	Count int
}

func (err *CardinalityError) Error() string {
	return fmt.Sprintf("document has %d pages instead of one", err.Count)
}
