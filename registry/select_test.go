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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/emo/emoji"
)

func names(list []*emoji.Emoji) []string {
	res := make([]string, len(list))
	for i, e := range list {
		res[i] = e.Name()
	}
	return res
}

func TestSelect(t *testing.T) {
	reg := loadTestListing(t)

	cases := []struct {
		selectors []string
		want      []string
	}{
		{
			selectors: []string{"smileys::face-smiling"},
			want: []string{
				"grinning-face",
				"grinning-face-with-big-eyes",
				"grinning-face-with-smiling-eyes",
				"rofl",
			},
		},
		{
			selectors: []string{"Smileys & Emotion::Face-Smiling"},
			want: []string{
				"grinning-face",
				"grinning-face-with-big-eyes",
				"grinning-face-with-smiling-eyes",
				"rofl",
			},
		},
		{
			selectors: []string{"symbols"},
			want:      []string{"keycap-hash", "keycap-star", "keycap-one"},
		},
		{
			selectors: []string{"Component"},
			want:      []string{"lightest", "darker", "darkest", "red-hair", "bald"},
		},
		{
			selectors: []string{"rofl"},
			want:      []string{"rofl"},
		},
		{
			selectors: []string{"ROFL", "eu", "rofl"},
			want:      []string{"rofl", "eu", "rofl"},
		},
		{
			selectors: []string{"NONDIVERSE"},
			want:      []string{"waving-hand", "person", "detective", "scientist"},
		},
		{
			selectors: []string{"flags::flag", "symbols::keycap"},
			want:      []string{"rainbow-flag", "keycap-hash", "keycap-star", "keycap-one"},
		},
		{
			selectors: nil,
			want:      []string{},
		},
	}
	for _, tc := range cases {
		got, err := reg.Select(tc.selectors...)
		if err != nil {
			t.Errorf("%q: %v", tc.selectors, err)
			continue
		}
		if d := cmp.Diff(tc.want, names(got)); d != "" {
			t.Errorf("%q: unexpected selection (-want +got):\n%s", tc.selectors, d)
		}
	}
}

func TestSelectAll(t *testing.T) {
	reg := loadTestListing(t)

	all, err := reg.Select(SelectAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != reg.Len() {
		t.Errorf("ALL selects %d emoji, want %d", len(all), reg.Len())
	}
	if all[0].Name() != "grinning-face" || all[len(all)-1].Name() != "flag-united-states" {
		t.Errorf("ALL not in declaration order: %s ... %s", all[0].Name(), all[len(all)-1].Name())
	}

	seen := make(map[string]bool)
	for _, e := range all {
		if !e.IsComponent() && !e.IsFullyQualified() {
			t.Errorf("ALL contains %s emoji %s", e.Status(), e.Name())
		}
		if seen[e.Name()] {
			t.Errorf("ALL contains %s twice", e.Name())
		}
		seen[e.Name()] = true
	}
}

func TestSelectErrors(t *testing.T) {
	reg := loadTestListing(t)
	before := snapshot(reg)

	for _, sel := range []string{
		"no-such-emoji",
		"smileys::no-such-subgroup",
		"no-such-group::face-smiling",
		"smileys::face-smiling::extra",
		"",
	} {
		res, err := reg.Select("rofl", sel)
		var selErr *SelectorError
		if !errors.As(err, &selErr) {
			t.Errorf("%q: got %v, want SelectorError", sel, err)
			continue
		}
		if selErr.Selector != sel {
			t.Errorf("%q: error names selector %q", sel, selErr.Selector)
		}
		if res != nil {
			t.Errorf("%q: partial selection returned", sel)
		}
	}

	if d := cmp.Diff(before, snapshot(reg)); d != "" {
		t.Errorf("failed selections changed the registry (-before +after):\n%s", d)
	}
}

func TestNonDiverseWithoutPeople(t *testing.T) {
	src := "# group: Smileys & Emotion\n# subgroup: face-smiling\n" +
		"1F600 ; fully-qualified # 😀 E1.0 grinning face\n"
	reg, err := parseString(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reg.Select(SelectNonDiverse)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d emoji, want none", len(got))
	}
}
