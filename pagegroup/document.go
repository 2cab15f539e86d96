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


// Package pagegroup removes the page group from single-page PDF files.
//
// Graphics converted from SVG carry a transparency group on their page.
// When such a graphic is included in a LaTeX document, the group ends up
// on the including page and changes how the whole page is composited.
// The functions in this package operate on the JSON representation of a
// PDF file written by "qpdf --json-output" and delete the /Group entry
// from the page dictionary.
package pagegroup

import (
	"fmt"
	"regexp"
)

// Document is the object table of a PDF file in qpdf's JSON format.
// Keys are "trailer" and "obj:<num> <gen> R"; each value is a wrapper
// object whose "value" field holds the PDF object.
type Document map[string]any

// Dict is a PDF dictionary.  Keys include the leading slash.
type Dict = map[string]any

// maxIndirection bounds the number of references followed for a single
// lookup.
const maxIndirection = 16

var reference = regexp.MustCompile(`^[0-9]+ [0-9]+ R$`)

// IsReference reports whether obj is an indirect object reference.
func IsReference(obj any) bool {
	s, ok := obj.(string)
	return ok && reference.MatchString(s)
}

// key returns the object table key for a reference.
func key(ref string) string {
	if ref == "trailer" {
		return ref
	}
	return "obj:" + ref
}

// Resolve follows ref and returns the dictionary it points to.
// If tp is not empty, the dictionary must have /Type tp.
func (doc Document) Resolve(ref string, tp string) (Dict, error) {
	_, dict, err := doc.resolve(ref, tp)
	return dict, err
}

// resolve is like Resolve, but also returns the reference of the object
// which holds the dictionary.
func (doc Document) resolve(ref string, tp string) (string, Dict, error) {
	orig := ref
	for count := 0; ; count++ {
		if count >= maxIndirection {
			return "", nil, &ReferenceError{Ref: orig, Reason: "too many levels of indirection"}
		}

		wrapper, ok := doc[key(ref)]
		if !ok {
			return "", nil, &ReferenceError{Ref: ref, Reason: "does not exist"}
		}
		obj, ok := wrapper.(map[string]any)
		if !ok {
			return "", nil, &ReferenceError{Ref: ref, Reason: "is not an object wrapper"}
		}
		val, ok := obj["value"]
		if !ok {
			return "", nil, &ReferenceError{Ref: ref, Reason: "has no value"}
		}

		if IsReference(val) {
			ref = val.(string)
			continue
		}

		dict, ok := val.(map[string]any)
		if !ok {
			return "", nil, &ReferenceError{Ref: ref, Reason: fmt.Sprintf("is %T, not a dictionary", val)}
		}
		if tp != "" && dict["/Type"] != tp {
			return "", nil, &ReferenceError{
				Ref:    ref,
				Reason: fmt.Sprintf("has type %v instead of %s", dict["/Type"], tp),
			}
		}
		return ref, dict, nil
	}
}

// getRef returns the reference stored under name in dict.
func getRef(dict Dict, owner, name string) (string, error) {
	val, ok := dict[name]
	if !ok {
		return "", &ReferenceError{Ref: owner, Reason: "has no " + name + " entry"}
	}
	if !IsReference(val) {
		return "", &ReferenceError{Ref: owner, Reason: fmt.Sprintf("has %s %v, not a reference", name, val)}
	}
	return val.(string), nil
}

// FindPage locates the only page of a document.
// It returns the reference of the object holding the page dictionary,
// together with the dictionary.
func FindPage(doc Document) (string, Dict, error) {
	trailer, err := doc.Resolve("trailer", "")
	if err != nil {
		return "", nil, err
	}
	rootRef, err := getRef(trailer, "trailer", "/Root")
	if err != nil {
		return "", nil, err
	}
	root, err := doc.Resolve(rootRef, "/Catalog")
	if err != nil {
		return "", nil, err
	}
	pagesRef, err := getRef(root, rootRef, "/Pages")
	if err != nil {
		return "", nil, err
	}
	pages, err := doc.Resolve(pagesRef, "/Pages")
	if err != nil {
		return "", nil, err
	}

	kids, ok := pages["/Kids"].([]any)
	if !ok {
		return "", nil, &ReferenceError{Ref: pagesRef, Reason: "has no /Kids array"}
	}
	if len(kids) != 1 {
		return "", nil, &CardinalityError{Count: len(kids)}
	}
	if !IsReference(kids[0]) {
		return "", nil, &ReferenceError{Ref: pagesRef, Reason: fmt.Sprintf("has kid %v, not a reference", kids[0])}
	}
	pageRef := kids[0].(string)

	return doc.resolve(pageRef, "/Page")
}

// Remove deletes the page group from the only page of doc.
// The return value indicates whether the document was changed.
// If an error is returned, the document is unchanged.
func Remove(doc Document) (bool, error) {
	_, page, err := FindPage(doc)
	if err != nil {
		return false, err
	}
	if _, ok := page["/Group"]; !ok {
		return false, nil
	}
	delete(page, "/Group")
	return true, nil
}
