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
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// File is a PDF file in the JSON format of qpdf, version 2.
type File struct {
	data []byte
	doc  Document
}

// ParseFile reads the output of "qpdf --json-output".
func ParseFile(data []byte) (*File, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	if v := gjson.GetBytes(data, "version"); v.Exists() && v.Int() != 2 {
		return nil, fmt.Errorf("unsupported qpdf JSON version %d", v.Int())
	}
	objects := gjson.GetBytes(data, "qpdf.1")
	if !objects.IsObject() {
		return nil, errors.New("no object table in qpdf JSON")
	}
	doc, ok := objects.Value().(map[string]any)
	if !ok {
		return nil, errors.New("malformed object table in qpdf JSON")
	}
	return &File{data: data, doc: Document(doc)}, nil
}

// Document returns the object table of the file.
func (f *File) Document() Document {
	return f.doc
}

// RemovePageGroup deletes the page group from the only page of the file.
// All other bytes of the file are preserved.
// The return value indicates whether the file was changed.
func (f *File) RemovePageGroup() (bool, error) {
	ref, page, err := FindPage(f.doc)
	if err != nil {
		return false, err
	}
	if _, ok := page["/Group"]; !ok {
		return false, nil
	}

	path := "qpdf.1." + gjson.Escape(key(ref)) + ".value." + gjson.Escape("/Group")
	data, err := sjson.DeleteBytes(f.data, path)
	if err != nil {
		return false, err
	}
	f.data = data
	delete(page, "/Group")
	return true, nil
}

// Bytes returns the JSON representation of the file.
func (f *File) Bytes() []byte {
	return f.data
}
