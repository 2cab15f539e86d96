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


// Package buildinfo reports the version of the emo tools.
package buildinfo

import (
	"runtime/debug"
)

// Fallback is the version reported when the build carries no
// version information.
const Fallback = "v1.0"

// Version returns the module version of the running binary, or a short
// VCS revision for development builds.  If neither is known, ok is
// false and [Fallback] is returned.
func Version() (version string, ok bool) {
	info, found := debug.ReadBuildInfo()
	if !found {
		return Fallback, false
	}

	v := info.Main.Version
	if v != "" && v != "(devel)" {
		return v, true
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return Fallback, false
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev, true
}

// Short returns a short version string for a tool, e.g.
// "emo (seehuhn.de/go/emo v1.2.0)".
func Short(toolName string) string {
	v, ok := Version()
	if !ok {
		return toolName
	}
	path := "seehuhn.de/go/emo"
	if info, found := debug.ReadBuildInfo(); found && info.Main.Path != "" {
		path = info.Main.Path
	}
	return toolName + " (" + path + " " + v + ")"
}
