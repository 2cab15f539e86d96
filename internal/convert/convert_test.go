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
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/emo/emoji"
	"seehuhn.de/go/emo/registry"
)

// fakeRunner imitates rsvg-convert and qpdf.
type fakeRunner struct {
	json []byte

	mu    sync.Mutex
	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	call := []string{filepath.Base(name)}
	for _, arg := range args[1:] {
		call = append(call, filepath.Base(arg))
	}
	r.mu.Lock()
	r.calls = append(r.calls, strings.Join(call, " "))
	r.mu.Unlock()

	out := args[len(args)-1]
	switch {
	case name == "rsvg-convert":
		return os.WriteFile(out, []byte("%PDF-1.5 converted"), 0o644)
	case name == "qpdf" && args[1] == "--json-output":
		return os.WriteFile(out, r.json, 0o644)
	case name == "qpdf" && args[1] == "--json-input":
		patched, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if strings.Contains(string(patched), `"/Group"`) {
			return errors.New("page group still present")
		}
		return os.WriteFile(out, []byte("%PDF-1.5 patched"), 0o644)
	}
	return errors.New("unexpected command " + name)
}

func readJSON(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "pagegroup", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newTestConverter(t *testing.T, json []byte) (*Converter, *fakeRunner) {
	t.Helper()
	sources := t.TempDir()
	for _, name := range []string{"svg/emoji_u1f923.svg", "svg/emoji_u1f600.svg", "third_party/regional-flags/svg/EU.svg"} {
		path := filepath.Join(sources, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	runner := &fakeRunner{json: json}
	c := &Converter{
		Patcher:     &Patcher{QPDF: "qpdf", Runner: runner},
		RSVGConvert: "rsvg-convert",
		Sources:     sources,
		Target:      t.TempDir(),
	}
	return c, runner
}

func TestConvert(t *testing.T) {
	c, runner := newTestConverter(t, readJSON(t, "grouped.json"))
	rofl := emoji.FromString("rolling on the floor laughing", "🤣")

	created, err := c.Convert(context.Background(), rofl)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("graphic not created")
	}

	got, err := os.ReadFile(filepath.Join(c.Target, "emo-rofl.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("%PDF-1.5 patched", string(got)); d != "" {
		t.Errorf("unexpected graphic (-want +got):\n%s", d)
	}
	wantCalls := []string{
		"rsvg-convert -f Pdf -o emo-rofl.partial.pdf",
		"qpdf --json-output emo-rofl.partial.json",
		"qpdf --json-input emo-rofl.partial.pdf",
	}
	if d := cmp.Diff(wantCalls, runner.calls); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}

	entries, err := os.ReadDir(c.Target)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("%d files in target directory, want 1", len(entries))
	}

	// existing graphics are kept
	created, err = c.Convert(context.Background(), rofl)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("existing graphic recreated")
	}
	if len(runner.calls) != 3 {
		t.Errorf("%d commands run, want 3", len(runner.calls))
	}
}

func TestConvertWithoutGroup(t *testing.T) {
	c, runner := newTestConverter(t, readJSON(t, "ungrouped.json"))
	eu := emoji.FromString("flag: European Union", "🇪🇺")

	_, err := c.Convert(context.Background(), eu)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(c.Target, "emo-eu.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("%PDF-1.5 converted", string(got)); d != "" {
		t.Errorf("unexpected graphic (-want +got):\n%s", d)
	}
	if len(runner.calls) != 2 {
		t.Errorf("%d commands run, want 2", len(runner.calls))
	}
}

func TestConvertMissingSource(t *testing.T) {
	c, _ := newTestConverter(t, readJSON(t, "grouped.json"))
	parrot := emoji.FromString("parrot", "🦜")

	_, err := c.Convert(context.Background(), parrot)
	if err == nil {
		t.Fatal("missing error")
	}
	if _, err := os.Stat(filepath.Join(c.Target, "emo-parrot.pdf")); err == nil {
		t.Error("graphic created without source")
	}
}

func TestConvertAll(t *testing.T) {
	c, runner := newTestConverter(t, readJSON(t, "grouped.json"))
	rofl := emoji.FromString("rolling on the floor laughing", "🤣")
	grin := emoji.FromString("grinning face", "😀")

	err := c.ConvertAll(context.Background(), []*emoji.Emoji{rofl, grin, rofl}, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"emo-rofl.pdf", "emo-grinning-face.pdf"} {
		if _, err := os.Stat(filepath.Join(c.Target, name)); err != nil {
			t.Error(err)
		}
	}
	if len(runner.calls) != 6 {
		t.Errorf("%d commands run, want 6", len(runner.calls))
	}

	parrot := emoji.FromString("parrot", "🦜")
	err = c.ConvertAll(context.Background(), []*emoji.Emoji{parrot}, 1)
	if err == nil || !strings.HasPrefix(err.Error(), "parrot: ") {
		t.Errorf("got %v, want error for parrot", err)
	}
}

func TestPatchError(t *testing.T) {
	c, _ := newTestConverter(t, []byte(`{"version": 2, "qpdf": [{}, {"trailer": {"value": {}}}]}`))
	rofl := emoji.FromString("rolling on the floor laughing", "🤣")

	_, err := c.Convert(context.Background(), rofl)
	var patchErr *PatchError
	if !errors.As(err, &patchErr) {
		t.Errorf("got %v, want PatchError", err)
	}
}

func listDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	res := make(map[string]string)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		res[e.Name()] = string(data)
	}
	return res
}

func TestPatchKeepsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "figure.pdf")
	files := map[string]string{
		"figure.pdf":  "%PDF-1.5 original",
		"figure.json": `{"caption": "mine"}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	p := &Patcher{QPDF: "qpdf", Runner: &fakeRunner{json: readJSON(t, "grouped.json")}}

	changed, err := p.Patch(context.Background(), in, filepath.Join(dir, "figure.new.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("page group not removed")
	}
	files["figure.new.pdf"] = "%PDF-1.5 patched"
	if d := cmp.Diff(files, listDir(t, dir)); d != "" {
		t.Errorf("unexpected directory contents (-want +got):\n%s", d)
	}

	changed, err = p.Patch(context.Background(), in, in)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("page group not removed in place")
	}
	files["figure.pdf"] = "%PDF-1.5 patched"
	if d := cmp.Diff(files, listDir(t, dir)); d != "" {
		t.Errorf("unexpected directory contents after patching in place (-want +got):\n%s", d)
	}
}

func TestPatchUnchanged(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "figure.pdf")
	if err := os.WriteFile(in, []byte("%PDF-1.5 original"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := &Patcher{QPDF: "qpdf", Runner: &fakeRunner{json: readJSON(t, "ungrouped.json")}}

	changed, err := p.Patch(context.Background(), in, filepath.Join(dir, "figure.new.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("file without page group reported as changed")
	}
	want := map[string]string{"figure.pdf": "%PDF-1.5 original"}
	if d := cmp.Diff(want, listDir(t, dir)); d != "" {
		t.Errorf("unexpected directory contents (-want +got):\n%s", d)
	}
}

func TestInventory(t *testing.T) {
	reg, err := registry.Load(filepath.Join("..", "..", "registry", "testdata", "emoji-test.txt"), nil)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{
		"emo-rofl.pdf",
		"emo-eu.pdf",
		"emo-lingchi.pdf",
		"emo-parrot.pdf",
		"emo-rofl.partial.pdf",
		"rofl.pdf",
		"emo-notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	stock, err := Inventory(reg, dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range stock.Emoji {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	if d := cmp.Diff([]string{"eu", "rofl"}, names); d != "" {
		t.Errorf("unexpected emoji (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"emo-parrot.pdf"}, stock.Unknown); d != "" {
		t.Errorf("unexpected unknown files (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"emo-YHWH.pdf"}, stock.MissingSpecials); d != "" {
		t.Errorf("unexpected missing specials (-want +got):\n%s", d)
	}

	stock, err = Inventory(reg, filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if len(stock.Emoji) != 0 || len(stock.MissingSpecials) != 2 {
		t.Errorf("unexpected stock for missing directory: %+v", stock)
	}
}
