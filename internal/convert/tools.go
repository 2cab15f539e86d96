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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolMissing indicates that an external program could not be found.
var ErrToolMissing = errors.New("external tool not found")

// LookPath finds the named program in the directories of $PATH.
func LookPath(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s: %w", tool, ErrToolMissing)
	}
	return path, nil
}

// Runner runs external programs.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ToolError reports a failed run of an external program.
type ToolError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (err *ToolError) Error() string {
	msg := err.Cmd + ": " + err.Err.Error()
	if err.Stderr != "" {
		msg += ": " + err.Stderr
	}
	return msg
}

func (err *ToolError) Unwrap() error {
	return err.Err
}

// ExecRunner runs programs using [os/exec].
type ExecRunner struct{}

// Run implements [Runner].
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	err := cmd.Run()
	if err != nil {
		return &ToolError{
			Cmd:    strings.Join(cmd.Args, " "),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// qpdfWarnings is the exit status used by qpdf for success with warnings.
const qpdfWarnings = 3

// isWarning reports whether err signals a qpdf run which succeeded with
// warnings.
func isWarning(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == qpdfWarnings
}
