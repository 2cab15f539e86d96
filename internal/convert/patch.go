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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/emo/pagegroup"
)

// Patcher removes the page group from PDF files by a round trip through
// qpdf's JSON format.
type Patcher struct {
	QPDF   string
	Runner Runner
	Logger *slog.Logger
}

// NewPatcher returns a patcher which uses the qpdf found in $PATH.
func NewPatcher(logger *slog.Logger) (*Patcher, error) {
	qpdf, err := LookPath("qpdf")
	if err != nil {
		return nil, err
	}
	return &Patcher{QPDF: qpdf, Runner: ExecRunner{}, Logger: logger}, nil
}

func (p *Patcher) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Patcher) qpdf(ctx context.Context, args ...string) error {
	p.logger().Debug("running", "cmd", p.QPDF, "args", strings.Join(args, " "))
	err := p.Runner.Run(ctx, p.QPDF, args...)
	if isWarning(err) {
		p.logger().Warn("qpdf reported warnings", "err", err)
		return nil
	}
	return err
}

// Patch removes the page group from the single-page PDF file in and
// writes the result to out.  If in has no page group, out is not
// written.  In and out may be the same file.
// Intermediate files are kept in a fresh directory next to out, so that
// no other files are touched.
// The return value indicates whether the page group was removed.
func (p *Patcher) Patch(ctx context.Context, in, out string) (bool, error) {
	scratch, err := os.MkdirTemp(filepath.Dir(out), ".patch-*")
	if err != nil {
		return false, err
	}
	defer os.RemoveAll(scratch)

	jsonPath := filepath.Join(scratch, strings.TrimSuffix(filepath.Base(in), ".pdf")+".json")
	err = p.qpdf(ctx, in, "--json-output", jsonPath)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return false, err
	}
	file, err := pagegroup.ParseFile(data)
	if err != nil {
		return false, &PatchError{File: in, Err: err}
	}
	changed, err := file.RemovePageGroup()
	if err != nil {
		return false, &PatchError{File: in, Err: err}
	}
	if !changed {
		return false, nil
	}
	err = os.WriteFile(jsonPath, file.Bytes(), 0o644)
	if err != nil {
		return false, err
	}

	// The patched file is renamed into place only once qpdf has succeeded.
	patched := filepath.Join(scratch, filepath.Base(out))
	err = p.qpdf(ctx, jsonPath, "--json-input", patched)
	if err != nil {
		return false, err
	}
	err = os.Rename(patched, out)
	if err != nil {
		return false, err
	}
	return true, nil
}

// PatchError reports a PDF file whose structure prevents patching.
type PatchError struct {
	File string
	Err  error
}

func (err *PatchError) Error() string {
	return err.File + ": " + err.Err.Error()
}

func (err *PatchError) Unwrap() error {
	return err.Err
}
