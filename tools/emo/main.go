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
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"seehuhn.de/go/emo/emoji"
	"seehuhn.de/go/emo/internal/config"
	"seehuhn.de/go/emo/internal/console"
	"seehuhn.de/go/emo/internal/convert"
	"seehuhn.de/go/emo/internal/noto"
	"seehuhn.de/go/emo/latex"
	"seehuhn.de/go/emo/registry"
	"seehuhn.de/go/emo/tools/internal/buildinfo"
	"seehuhn.de/go/emo/tools/internal/profile"
)

var (
	configArg      = flag.String("config", "", "read settings from `file` (default $EMO_CONFIG or emo.hcl)")
	dryRun         = flag.Bool("dry-run", false, "do not create any files")
	verbose        = flag.Bool("v", false, "print more information")
	registryArg    = flag.String("registry", "", "read the emoji listing from `file`")
	notoArg        = flag.String("noto-emoji", "", "use the Noto emoji sources in `dir`")
	graphicsArg    = flag.String("graphics", "", "write PDF graphics into `dir`")
	latexTableArg  = flag.String("latex-table", "", "write the emoji table to `file`")
	parallelArg    = flag.Int("j", 0, "run at most `n` conversions at once")
	dropOrphans    = flag.Bool("drop-orphans", false, "ignore emoji sequences without fully-qualified form")
	showGroupNames = flag.Bool("show-group-names", false, "list group and subgroup names and exit")
	showEmojiNames = flag.Bool("show-emoji-names", false, "list emoji names and exit")
	showSpecial    = flag.Bool("show-special-names", false, "list the renamed emoji and exit")
	showNames      = flag.Bool("show-names", false, "list group, emoji, and special names and exit")
	dump           = flag.Bool("dump", false, "show all emoji by group and subgroup and exit")
	cpuprofile     = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile     = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "emo \u2014 create the emoji table and graphics for the emo LaTeX package\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("emo"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  emo [options] [selector...]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  selector   ALL, NONDIVERSE, a group, group::subgroup, or an emoji name\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  emo -show-group-names\n")
		fmt.Fprintf(os.Stderr, "  emo smileys::face-smiling rofl parrot\n")
		fmt.Fprintf(os.Stderr, "  emo -j 8 ALL\n")
	}
	flag.Parse()

	cfg, err := settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(console.NewHandler(os.Stderr, level))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// settings combines the configuration file, the environment, and the
// command line options.
func settings() (*config.Config, error) {
	cfg, err := config.Load(*configArg)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbose = *verbose
		case "registry":
			cfg.Registry = *registryArg
		case "noto-emoji":
			cfg.NotoEmoji = *notoArg
		case "graphics":
			cfg.Graphics = *graphicsArg
		case "latex-table":
			cfg.LatexTable = *latexTableArg
		case "j":
			cfg.Parallel = *parallelArg
		case "drop-orphans":
			cfg.DropOrphans = *dropOrphans
		}
	})

	n := 0
	for _, show := range []bool{*showGroupNames, *showEmojiNames, *showSpecial, *showNames, *dump} {
		if show {
			n++
		}
	}
	if n > 1 {
		return nil, errors.New("the -show-* and -dump options are mutually exclusive")
	}

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	stop, err := profile.Start(*cpuprofile, *memprofile, log)
	if err != nil {
		return err
	}
	defer stop()

	opt := &registry.Options{}
	if cfg.DropOrphans {
		opt.Orphans = registry.OrphansDrop
	}
	reg, err := registry.Load(cfg.Registry, opt)
	if err != nil {
		return err
	}
	log.Debug("read emoji listing", "file", cfg.Registry,
		"emoji", reg.Len(), "sequences", reg.NumSequences())

	if *dump {
		return reg.Dump(os.Stdout)
	}
	if done, err := listNames(reg, console.NewListing(os.Stdout)); done || err != nil {
		return err
	}

	requested, err := reg.Select(flag.Args()...)
	if err != nil {
		return err
	}

	var conv *convert.Converter
	if !*dryRun {
		err = os.MkdirAll(cfg.Graphics, 0o755)
		if err != nil {
			return err
		}
		conv, err = convert.New(cfg.NotoEmoji, cfg.Graphics, log)
		if err != nil {
			return err
		}
	}

	stock, err := convert.Inventory(reg, cfg.Graphics)
	if err != nil {
		return err
	}
	for _, name := range stock.Unknown {
		log.Warn("graphic does not depict an emoji", "file", filepath.Join(cfg.Graphics, name))
	}
	if len(stock.MissingSpecials) > 0 && !*dryRun {
		return fmt.Errorf("missing PDF graphics in %q: %s",
			cfg.Graphics, strings.Join(stock.MissingSpecials, ", "))
	}

	if !*dryRun {
		fetcher := &noto.Fetcher{Logger: log}
		err = fetcher.EnsureLocal(ctx, cfg.NotoEmoji)
		if err != nil {
			return err
		}
		err = conv.ConvertAll(ctx, requested, cfg.Parallel)
		if err != nil {
			return err
		}
	}

	all, err := writeTable(cfg.LatexTable, reg, append(requested, stock.Emoji...))
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, e := range all {
		b.WriteString(e.String())
	}
	log.Debug("supported emoji: "+b.String(), "count", len(all))
	return nil
}

// writeTable writes the emoji table, replacing the file only after the
// table has been completely written.
func writeTable(path string, reg *registry.Registry, selection []*emoji.Emoji) ([]*emoji.Emoji, error) {
	version, _ := buildinfo.Version()
	opt := &latex.TableOptions{Version: version}

	if *dryRun {
		return latex.WriteTable(io.Discard, reg, selection, opt)
	}

	tmp := strings.TrimSuffix(path, ".def") + ".latest.def"
	fd, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	all, err := latex.WriteTable(fd, reg, selection, opt)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(tmp)
		return nil, err
	}
	return all, os.Rename(tmp, path)
}

// listNames prints the names selected by the -show-* options.
// The return value indicates whether anything was shown.
func listNames(reg *registry.Registry, out *console.Listing) (bool, error) {
	shown := false

	if *showGroupNames || *showNames {
		shown = true
		if err := out.Header("Supported groups and subgroups:"); err != nil {
			return true, err
		}
		for _, g := range reg.Groups() {
			for _, s := range reg.Subgroups(g) {
				if err := out.Detail("%s::%s", g, s); err != nil {
					return true, err
				}
			}
		}
	}
	if *showEmojiNames || *showNames {
		shown = true
		if err := out.Header("Supported emoji names:"); err != nil {
			return true, err
		}
		for _, name := range reg.Names() {
			if err := out.Detail("%s", name); err != nil {
				return true, err
			}
		}
	}
	if *showSpecial || *showNames {
		shown = true
		if err := out.Header("Map from (simplified) Unicode to (special) emoji names:"); err != nil {
			return true, err
		}
		for _, r := range emoji.Renamings() {
			if err := out.Detail("%-40s ▶ %s", r[0], r[1]); err != nil {
				return true, err
			}
		}
	}
	return shown, nil
}
