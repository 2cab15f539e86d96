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

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

func readTestFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRemovePageGroup(t *testing.T) {
	orig := readTestFile(t, "testdata/grouped.json")
	want := readTestFile(t, "testdata/ungrouped.json")

	f, err := ParseFile(bytes.Clone(orig))
	if err != nil {
		t.Fatal(err)
	}
	changed, err := f.RemovePageGroup()
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("page group not removed")
	}

	got := f.Bytes()
	if !gjson.ValidBytes(got) {
		t.Fatalf("invalid JSON after removal:\n%s", got)
	}
	if d := cmp.Diff(gjson.ParseBytes(want).Value(), gjson.ParseBytes(got).Value()); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	// everything outside the page group is unchanged
	before := orig[:bytes.Index(orig, []byte(`"/Contents"`))]
	after := orig[bytes.Index(orig, []byte(`"/MediaBox"`)):]
	if !bytes.HasPrefix(got, before) || !bytes.HasSuffix(got, after) {
		t.Error("bytes outside the page group changed")
	}

	if _, ok := f.Document()["obj:3 0 R"].(map[string]any)["value"].(map[string]any)["/Group"]; ok {
		t.Error("page group still present in the object table")
	}
}

func TestRemovePageGroupNoop(t *testing.T) {
	orig := readTestFile(t, "testdata/ungrouped.json")

	f, err := ParseFile(bytes.Clone(orig))
	if err != nil {
		t.Fatal(err)
	}
	changed, err := f.RemovePageGroup()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("change reported for file without page group")
	}
	if !bytes.Equal(orig, f.Bytes()) {
		t.Error("file without page group was modified")
	}
}

func TestParseFileErrors(t *testing.T) {
	for _, data := range []string{
		``,
		`{"qpdf": [`,
		`{"version": 2}`,
		`{"version": 2, "qpdf": [{"jsonversion": 2}, []]}`,
		`{"version": 1, "qpdf": [{}, {}]}`,
	} {
		_, err := ParseFile([]byte(data))
		if err == nil {
			t.Errorf("%q: no error", data)
		}
	}
}

func TestRemovePageGroupError(t *testing.T) {
	data := []byte(`{"version": 2, "qpdf": [{"jsonversion": 2}, {"trailer": {"value": {"/Root": "1 0 R"}}}]}`)
	f, err := ParseFile(data)
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.RemovePageGroup()
	var refErr *ReferenceError
	if !errors.As(err, &refErr) || refErr.Ref != "1 0 R" {
		t.Errorf("got %v, want ReferenceError for 1 0 R", err)
	}
}
