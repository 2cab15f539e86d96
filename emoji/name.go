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
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	punctuation = strings.NewReplacer(
		`"`, "", "'", "", "’", "", "“", "", "”", "",
		"&", "", "!", "", "(", "", ")", "", ",", "", ".", "", ":", "",
	)
	separators = regexp.MustCompile(`[ _\-]+`)
	ampersand  = regexp.MustCompile(`[ ]*&[ ]*`)
)

// skinTones lists the simplified skin tone names.  The order matters:
// the "medium-" variants must be replaced before the plain ones.
var skinTones = [...][2]string{
	{"medium-dark-skin-tone", "darker"},
	{"medium-light-skin-tone", "lighter"},
	{"medium-skin-tone", "medium"},
	{"dark-skin-tone", "darkest"},
	{"light-skin-tone", "lightest"},
}

// renaming maps normalized Unicode names to the names used by the emo
// package, for names which predate the automatic naming scheme.
var renaming = map[string]string{
	"a-button-blood-type":                   "a-button",
	"ab-button-blood-type":                  "ab-button",
	"b-button-blood-type":                   "b-button",
	"o-button-blood-type":                   "o-button",
	"bust-in-silhouette":                    "bust",
	"busts-in-silhouette":                   "busts",
	"flag-european-union":                   "eu",
	"globe-showing-americas":                "globe-americas",
	"globe-showing-asia-australia":          "globe-asia-australia",
	"globe-showing-europe-africa":           "globe-africa-europe",
	"hear-no-evil-monkey":                   "hear-no-evil",
	"index-pointing-at-the-viewer":          "index-pointing-at-viewer",
	"index-pointing-at-the-viewer-darkest":  "index-pointing-at-viewer-darkest",
	"index-pointing-at-the-viewer-darker":   "index-pointing-at-viewer-darker",
	"index-pointing-at-the-viewer-medium":   "index-pointing-at-viewer-medium",
	"index-pointing-at-the-viewer-lighter":  "index-pointing-at-viewer-lighter",
	"index-pointing-at-the-viewer-lightest": "index-pointing-at-viewer-lightest",
	"keycap-*":                              "keycap-star",
	"keycap-#":                              "keycap-hash",
	"keycap-0":                              "keycap-zero",
	"keycap-1":                              "keycap-one",
	"keycap-2":                              "keycap-two",
	"keycap-3":                              "keycap-three",
	"keycap-4":                              "keycap-four",
	"keycap-5":                              "keycap-five",
	"keycap-6":                              "keycap-six",
	"keycap-7":                              "keycap-seven",
	"keycap-8":                              "keycap-eight",
	"keycap-9":                              "keycap-nine",
	"keycap-10":                             "keycap-ten",
	"magnifying-glass-tilted-left":          "loupe-left",
	"magnifying-glass-tilted-right":         "loupe-right",
	"palm-down-hand":                        "palm-down",
	"palm-down-hand-darkest":                "palm-down-darkest",
	"palm-down-hand-darker":                 "palm-down-darker",
	"palm-down-hand-medium":                 "palm-down-medium",
	"palm-down-hand-lighter":                "palm-down-lighter",
	"palm-down-hand-lightest":               "palm-down-lightest",
	"palm-up-hand":                          "palm-up",
	"palm-up-hand-darkest":                  "palm-up-darkest",
	"palm-up-hand-darker":                   "palm-up-darker",
	"palm-up-hand-medium":                   "palm-up-medium",
	"palm-up-hand-lighter":                  "palm-up-lighter",
	"palm-up-hand-lightest":                 "palm-up-lightest",
	"rolling-on-the-floor-laughing":         "rofl",
	"see-no-evil-monkey":                    "see-no-evil",
	"speak-no-evil-monkey":                  "speak-no-evil",
}

// shortGroups maps abbreviated group names to the full group names.
var shortGroups = map[string]string{
	"animals": "animals-and-nature",
	"body":    "people-and-body",
	"drink":   "food-and-drink",
	"emotion": "smileys-and-emotion",
	"food":    "food-and-drink",
	"nature":  "animals-and-nature",
	"people":  "people-and-body",
	"places":  "travel-and-places",
	"smileys": "smileys-and-emotion",
	"travel":  "travel-and-places",
}

func lower(s string) string {
	// A Caser keeps state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(s)
}

// Fold returns the lower case form used in emoji, group, and subgroup
// names.  Names which differ only in case have the same fold.
func Fold(s string) string {
	return lower(s)
}

// Name turns a human-readable emoji description, for example the name
// column of emoji-test.txt, into an emoji name.
//
// The result is lower case, contains no punctuation, and uses single
// dashes to separate words.  Skin tone modifiers are shortened to
// "darkest", "darker", "medium", "lighter", and "lightest".
// Name is idempotent.
func Name(s string) string {
	name := lower(s)
	name = punctuation.Replace(name)
	name = separators.ReplaceAllString(name, "-")

	for {
		prev := name
		for _, st := range skinTones {
			name = strings.ReplaceAll(name, st[0], st[1])
		}
		if name == prev {
			break
		}
	}

	if alt, ok := renaming[name]; ok {
		return alt
	}
	return name
}

// Renamings returns the names which deviate from the automatic naming
// scheme, as pairs of (normalized Unicode name, emoji name), sorted by
// the Unicode name.
func Renamings() [][2]string {
	res := make([][2]string, 0, len(renaming))
	for from, to := range renaming {
		res = append(res, [2]string{from, to})
	}
	slices.SortFunc(res, func(a, b [2]string) int {
		return strings.Compare(a[0], b[0])
	})
	return res
}

// GroupName normalizes the name of an emoji group.
// Short aliases like "smileys" or "people" expand to the full group name.
func GroupName(s string) string {
	group := lower(s)
	if full, ok := shortGroups[group]; ok {
		group = full
	}
	return ampersand.ReplaceAllString(group, "-and-")
}

// SubgroupName normalizes the name of an emoji subgroup.
func SubgroupName(s string) string {
	return ampersand.ReplaceAllString(lower(s), "-and-")
}
