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


// Package config holds the settings of the emo tool.
//
// Settings are taken, in increasing order of priority, from built-in
// defaults, an optional HCL file, environment variables, and the command
// line.  The command line layer is applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is the configuration file read if no other file is named.
const DefaultFile = "emo.hcl"

// Config is the configuration of the emo tool.
type Config struct {
	// Registry is the path of the Unicode emoji listing emoji-test.txt.
	Registry string `env:"EMO_REGISTRY"`

	// NotoEmoji is the directory with the Noto emoji sources.
	NotoEmoji string `env:"EMO_NOTO_EMOJI"`

	// Graphics is the directory for the generated PDF graphics.
	Graphics string `env:"EMO_GRAPHICS"`

	// LatexTable is the path of the generated emoji table.
	LatexTable string `env:"EMO_LATEX_TABLE"`

	// Parallel is the maximal number of concurrent conversions.
	Parallel int `env:"EMO_PARALLEL"`

	// DropOrphans ignores emoji sequences without fully-qualified form,
	// instead of failing.
	DropOrphans bool `env:"EMO_DROP_ORPHANS"`

	Verbose bool `env:"EMO_VERBOSE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Registry:   filepath.Join("config", "emoji-test.txt"),
		NotoEmoji:  "noto-emoji",
		Graphics:   "emo-graphics",
		LatexTable: "emo.def",
		Parallel:   runtime.NumCPU(),
	}
}

// fileConfig is the schema of the configuration file.
type fileConfig struct {
	Registry    *string `hcl:"registry,optional"`
	NotoEmoji   *string `hcl:"noto_emoji,optional"`
	Graphics    *string `hcl:"graphics,optional"`
	LatexTable  *string `hcl:"latex_table,optional"`
	Parallel    *int    `hcl:"parallel,optional"`
	DropOrphans *bool   `hcl:"drop_orphans,optional"`
	Verbose     *bool   `hcl:"verbose,optional"`
}

// Load returns the configuration obtained by applying the given file and
// the environment to the defaults.
//
// If path is empty, the file named by $EMO_CONFIG is used, or
// [DefaultFile] if the variable is not set.  A missing file is only an
// error if it was named explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv("EMO_CONFIG")
	}
	if path == "" {
		path = DefaultFile
		explicit = false
	}

	err := cfg.applyFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	err = env.Parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	ctx, err := evalContext(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, ctx, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	setIf(&cfg.Registry, fc.Registry)
	setIf(&cfg.NotoEmoji, fc.NotoEmoji)
	setIf(&cfg.Graphics, fc.Graphics)
	setIf(&cfg.LatexTable, fc.LatexTable)
	setIf(&cfg.Parallel, fc.Parallel)
	setIf(&cfg.DropOrphans, fc.DropOrphans)
	setIf(&cfg.Verbose, fc.Verbose)
	return nil
}

// evalContext provides the variables which can be used in a
// configuration file.
func evalContext(path string) (*hcl.EvalContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = cwd
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home":       cty.StringVal(home),
			"cwd":        cty.StringVal(cwd),
			"config_dir": cty.StringVal(dir),
		},
	}, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() error {
	if cfg.Parallel < 1 {
		return fmt.Errorf("invalid parallelism %d", cfg.Parallel)
	}
	for _, p := range []struct{ name, value string }{
		{"registry", cfg.Registry},
		{"noto_emoji", cfg.NotoEmoji},
		{"graphics", cfg.Graphics},
		{"latex_table", cfg.LatexTable},
	} {
		if p.value == "" {
			return fmt.Errorf("%s must not be empty", p.name)
		}
	}
	return nil
}
