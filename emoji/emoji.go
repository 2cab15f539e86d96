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

// Package emoji represents individual emoji.
//
// An [Emoji] combines a name, derived from the Unicode name by [Name],
// with a sequence of Unicode codepoints.  The package also contains the
// conversions between textual codepoint notations and codepoint
// sequences.
package emoji

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Status is the qualification status of an emoji sequence,
// as listed in emoji-test.txt.
type Status int

// These are the four qualification statuses used by Unicode.
// The zero value indicates that no status is known.
const (
	Component Status = iota + 1
	FullyQualified
	MinimallyQualified
	Unqualified
)

func (s Status) String() string {
	switch s {
	case Component:
		return "component"
	case FullyQualified:
		return "fully-qualified"
	case MinimallyQualified:
		return "minimally-qualified"
	case Unqualified:
		return "unqualified"
	default:
		return "unspecified"
	}
}

// ParseStatus converts the textual form of a status into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "component":
		return Component, nil
	case "fully-qualified":
		return FullyQualified, nil
	case "minimally-qualified":
		return MinimallyQualified, nil
	case "unqualified":
		return Unqualified, nil
	}
	return 0, &FormatError{Token: s, Reason: "unknown qualification status"}
}

// Emoji is a named sequence of Unicode codepoints.
// Emoji values are immutable.
type Emoji struct {
	name       string
	codepoints []rune
	display    string
	status     Status
	version    string
}

// New creates a new emoji.  The name is normalized using [Name].
// The version is the Unicode emoji version which introduced the
// sequence, for example "13.1", or the empty string if unknown.
func New(name string, codepoints []rune, status Status, version string) *Emoji {
	cps := slices.Clone(codepoints)
	return &Emoji{
		name:       Name(name),
		codepoints: cps,
		display:    string(cps),
		status:     status,
		version:    version,
	}
}

// FromString creates an emoji without status from its literal text.
func FromString(name, text string) *Emoji {
	return New(name, Codepoints(text), 0, "")
}

// Name returns the canonical name of the emoji.
func (e *Emoji) Name() string {
	return e.name
}

// Codepoints returns a copy of the codepoint sequence.
func (e *Emoji) Codepoints() []rune {
	return slices.Clone(e.codepoints)
}

// String returns the emoji itself.
func (e *Emoji) String() string {
	return e.display
}

// Status returns the qualification status.
func (e *Emoji) Status() Status {
	return e.status
}

// Version returns the emoji version tag, or "" if none is known.
func (e *Emoji) Version() string {
	return e.version
}

// IsComponent reports whether the emoji has component status.
func (e *Emoji) IsComponent() bool {
	return e.status == Component
}

// IsFullyQualified reports whether the emoji is fully qualified.
func (e *Emoji) IsFullyQualified() bool {
	return e.status == FullyQualified
}

// HasCompoundName reports whether the name consists of more than one word.
func (e *Emoji) HasCompoundName() bool {
	return strings.Contains(e.name, "-")
}

// Unicode returns the codepoints in "U+" notation, separated by spaces.
func (e *Emoji) Unicode() string {
	parts := make([]string, len(e.codepoints))
	for i, cp := range e.codepoints {
		parts[i] = fmt.Sprintf("U+%04X", cp)
	}
	return strings.Join(parts, " ")
}

// Describe returns the codepoints together with their Unicode character
// names, e.g. "U+2764 HEAVY BLACK HEART, U+FE0F VARIATION SELECTOR-16".
func (e *Emoji) Describe() string {
	parts := make([]string, len(e.codepoints))
	for i, cp := range e.codepoints {
		name := runenames.Name(cp)
		if name == "" {
			name = "<unnamed>"
		}
		parts[i] = fmt.Sprintf("U+%04X %s", cp, name)
	}
	return strings.Join(parts, ", ")
}

func (e *Emoji) GoString() string {
	if e.status == 0 {
		return fmt.Sprintf("emoji.FromString(%q, %q)", e.name, e.display)
	}
	return fmt.Sprintf("emoji.New(%q, %q, %s)", e.name, e.display, e.status)
}

var genderHairSkin = regexp.MustCompile(
	`(\A|[^a-z])` +
		`(red-hair|curly-hair|white-hair|bald` +
		`|darkest|darker|medium|lighter|lightest` +
		`|man|men|woman|women)` +
		`(\z|[^a-z])`)

// IsDiverse reports whether the name of the emoji specifies a gender,
// a hair style, or a skin tone.
func (e *Emoji) IsDiverse() bool {
	return genderHairSkin.MatchString(e.name)
}

const (
	regionalIndicatorA = 0x1F1E6
	regionalIndicatorZ = 0x1F1FF
	presentation       = 0xFE0F
)

func isRegionalIndicator(cp rune) bool {
	return regionalIndicatorA <= cp && cp <= regionalIndicatorZ
}

// IsRegionalFlag reports whether the emoji is a flag given by a pair of
// regional indicator symbols.
func (e *Emoji) IsRegionalFlag() bool {
	return len(e.codepoints) == 2 &&
		isRegionalIndicator(e.codepoints[0]) &&
		isRegionalIndicator(e.codepoints[1])
}

// SVGFile returns the name of the SVG file for the emoji in the Noto
// color emoji sources.
func (e *Emoji) SVGFile() string {
	// National flags use the ISO 3166-1 alpha-2 country code.
	if e.IsRegionalFlag() {
		code := make([]rune, 2)
		for i, cp := range e.codepoints {
			code[i] = cp - regionalIndicatorA + 'A'
		}
		return string(code) + ".svg"
	}

	var parts []string
	for _, cp := range e.codepoints {
		if cp == presentation {
			continue
		}
		parts = append(parts, fmt.Sprintf("%04x", cp))
	}
	return "emoji_u" + strings.Join(parts, "_") + ".svg"
}

// SVGPath returns the path of the SVG file, relative to the root of the
// Noto color emoji sources.
func (e *Emoji) SVGPath() string {
	if e.IsRegionalFlag() {
		return "third_party/regional-flags/svg/" + e.SVGFile()
	}
	return "svg/" + e.SVGFile()
}

// PDFFile returns the name of the PDF graphic for the emoji.
func (e *Emoji) PDFFile() string {
	return "emo-" + e.name + ".pdf"
}
