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


// Package convert turns the SVG sources of emoji into PDF graphics.
//
// SVG files are converted with rsvg-convert.  The page group which
// rsvg-convert attaches to the page is then removed using qpdf, see
// package [seehuhn.de/go/emo/pagegroup].
package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/emo/emoji"
)

// Converter creates the PDF graphics for emoji.
type Converter struct {
	*Patcher

	// RSVGConvert is the path of the rsvg-convert program.
	RSVGConvert string

	// Sources is the directory with the Noto emoji sources.
	Sources string

	// Target is the directory for the PDF graphics.
	Target string
}

// New returns a converter which uses rsvg-convert and qpdf from $PATH.
func New(sources, target string, logger *slog.Logger) (*Converter, error) {
	var missing []error
	rsvg, err := LookPath("rsvg-convert")
	if err != nil {
		missing = append(missing, err)
	}
	p, err := NewPatcher(logger)
	if err != nil {
		missing = append(missing, err)
	}
	if missing != nil {
		return nil, errors.Join(missing...)
	}
	return &Converter{
		Patcher:     p,
		RSVGConvert: rsvg,
		Sources:     sources,
		Target:      target,
	}, nil
}

// Convert creates the PDF graphic for e, unless it already exists.
// The return value indicates whether a new graphic was created.
func (c *Converter) Convert(ctx context.Context, e *emoji.Emoji) (bool, error) {
	log := c.logger()

	target := filepath.Join(c.Target, e.PDFFile())
	_, err := os.Stat(target)
	if err == nil {
		log.Debug("skipping existing graphic", "file", target)
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	source := filepath.Join(c.Sources, e.SVGPath())
	if _, err := os.Stat(source); err != nil {
		return false, fmt.Errorf("no SVG source for %s: %w", e.Name(), err)
	}

	partial := strings.TrimSuffix(target, ".pdf") + ".partial.pdf"
	defer os.Remove(partial)

	log.Info("converting", "emoji", e.Name(), "source", source)
	err = c.Runner.Run(ctx, c.RSVGConvert, source, "-f", "Pdf", "-o", partial)
	if err != nil {
		return false, err
	}
	_, err = c.Patch(ctx, partial, partial)
	if err != nil {
		return false, err
	}
	err = os.Rename(partial, target)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ConvertAll creates the missing PDF graphics for all emoji in the list,
// running at most parallel conversions at a time.
// Emoji listed more than once are converted once.
func (c *Converter) ConvertAll(ctx context.Context, list []*emoji.Emoji, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	seen := make(map[string]bool, len(list))
	for _, e := range list {
		if seen[e.Name()] {
			continue
		}
		seen[e.Name()] = true

		g.Go(func() error {
			_, err := c.Convert(ctx, e)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
