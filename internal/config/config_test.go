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


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EMO_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("EMO_CONFIG", "")

	body := `
registry    = "${config_dir}/data/emoji-test.txt"
graphics    = "${cwd}/out"
parallel    = 3
verbose     = true
`
	err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte(body), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Registry = filepath.Join(cwd, "data/emoji-test.txt")
	want.Graphics = cwd + "/out"
	want.Parallel = 3
	want.Verbose = true
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "other.hcl")
	err := os.WriteFile(path, []byte("parallel = 3\nlatex_table = \"a.def\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("EMO_CONFIG", path)
	t.Setenv("EMO_PARALLEL", "5")
	t.Setenv("EMO_DROP_ORPHANS", "true")
	t.Setenv("EMO_NOTO_EMOJI", "/src/noto")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Parallel = 5
	want.LatexTable = "a.def"
	want.DropOrphans = true
	want.NotoEmoji = "/src/noto"
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("EMO_CONFIG", "")

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	for _, path := range []string{
		filepath.Join(dir, "missing.hcl"),
		write("syntax.hcl", "registry = \n"),
		write("unknown.hcl", "colour = \"red\"\n"),
		write("type.hcl", "parallel = \"many\"\n"),
		write("zero.hcl", "parallel = 0\n"),
		write("empty.hcl", "graphics = \"\"\n"),
		write("undefined.hcl", "graphics = \"${nowhere}/x\"\n"),
	} {
		_, err := Load(path)
		if err == nil {
			t.Errorf("%s: no error", filepath.Base(path))
		}
	}

	t.Setenv("EMO_PARALLEL", "lots")
	if _, err := Load(""); err == nil {
		t.Error("invalid environment accepted")
	}
}
