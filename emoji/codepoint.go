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

package emoji

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatError indicates a malformed codepoint or emoji declaration.
type FormatError struct {
	Token  string
	Reason string
}

func (err *FormatError) Error() string {
	if err.Token == "" {
		return err.Reason
	}
	return strconv.Quote(err.Token) + ": " + err.Reason
}

// ParseCodepoint converts a hexadecimal token like "1F600", "0x1F600",
// or "U+1F600" into a codepoint.
func ParseCodepoint(token string) (rune, error) {
	digits := token
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "U+") {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, &FormatError{Token: token, Reason: "missing hexadecimal digits"}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &FormatError{Token: token, Reason: "not a hexadecimal number"}
	}
	cp, err := CodepointOf(v)
	if err != nil {
		return 0, &FormatError{Token: token, Reason: "not a Unicode scalar value"}
	}
	return cp, nil
}

// CodepointOf checks that v is a Unicode scalar value and returns it
// as a rune.
func CodepointOf(v uint64) (rune, error) {
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, &FormatError{
			Token:  strconv.FormatUint(v, 16),
			Reason: "not a Unicode scalar value",
		}
	}
	return rune(v), nil
}

// ParseCodepoints converts a whitespace-separated list of hexadecimal
// tokens into a codepoint sequence.
func ParseCodepoints(list string) ([]rune, error) {
	tokens := strings.Fields(list)
	if len(tokens) == 0 {
		return nil, &FormatError{Token: list, Reason: "empty codepoint sequence"}
	}

	res := make([]rune, len(tokens))
	for i, tok := range tokens {
		cp, err := ParseCodepoint(tok)
		if err != nil {
			return nil, err
		}
		res[i] = cp
	}
	return res, nil
}

// Codepoints returns the codepoints of the given text.
func Codepoints(text string) []rune {
	return []rune(text)
}
