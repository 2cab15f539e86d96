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


package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"seehuhn.de/go/emo/internal/console"
	"seehuhn.de/go/emo/internal/convert"
	"seehuhn.de/go/emo/tools/internal/buildinfo"
)

var verbose = flag.Bool("v", false, "show the qpdf commands")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fix-page-groups \u2014 remove the page group from single-page PDF files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("fix-page-groups"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fix-page-groups [options] <file.pdf>...\n\n")
		fmt.Fprintf(os.Stderr, "The result for file.pdf is written to file.new.pdf.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(console.NewHandler(os.Stderr, level))

	p, err := convert.NewPatcher(log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	failed, err := run(ctx, p, os.Stdout, flag.Args())
	cancel()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run patches all PDF files and returns the number of files which could
// not be patched.  Files without the ".pdf" extension are skipped.
// Progress is reported to w.
func run(ctx context.Context, p *convert.Patcher, w io.Writer, files []string) (int, error) {
	failed := 0
	for _, in := range files {
		if ctx.Err() != nil {
			return failed, ctx.Err()
		}
		stem, ok := strings.CutSuffix(in, ".pdf")
		if !ok {
			fmt.Fprintf(w, "skipping %s: not a PDF file\n", in)
			continue
		}
		out := stem + ".new.pdf"
		fmt.Fprintf(w, "%s -> %s\n", in, out)
		changed, err := p.Patch(ctx, in, out)
		switch {
		case err != nil:
			fmt.Fprintf(w, "error:%s: %v\n", in, err)
			failed++
		case !changed:
			fmt.Fprintln(w, "nothing to do")
		}
	}
	return failed, nil
}
