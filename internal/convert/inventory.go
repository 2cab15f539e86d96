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


package convert

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/emo/emoji"
	"seehuhn.de/go/emo/registry"
)

// SpecialFiles are graphics which do not depict emoji but are required by
// the extra entries of the emoji table.
var SpecialFiles = []string{"emo-lingchi.pdf", "emo-YHWH.pdf"}

// Stock describes the graphics found in a directory.
type Stock struct {
	// Emoji lists the emoji with a graphic, sorted by file name.
	Emoji []*emoji.Emoji

	// Unknown lists the graphics which do not depict a known emoji.
	Unknown []string

	// MissingSpecials lists the special files which are not present.
	MissingSpecials []string
}

// Inventory lists the graphics in dir.
// A missing directory contains no graphics.
func Inventory(reg *registry.Registry, dir string) (*Stock, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	stock := &Stock{}
	found := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !strings.HasPrefix(name, "emo-") || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		if slices.Contains(SpecialFiles, name) {
			found[name] = true
			continue
		}
		if strings.HasSuffix(name, ".partial.pdf") || strings.HasSuffix(name, ".patched.pdf") {
			continue
		}

		key := strings.TrimSuffix(strings.TrimPrefix(name, "emo-"), ".pdf")
		e, ok := reg.Lookup(key)
		if !ok {
			stock.Unknown = append(stock.Unknown, name)
			continue
		}
		stock.Emoji = append(stock.Emoji, e)
	}

	for _, name := range SpecialFiles {
		if !found[name] {
			stock.MissingSpecials = append(stock.MissingSpecials, name)
		}
	}
	return stock, nil
}
