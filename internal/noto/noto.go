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


// Package noto provides a local copy of the Noto emoji sources.
//
// The SVG graphics of the emoji are taken from Google's noto-emoji
// repository.  If no local copy exists, the repository is downloaded as a
// zip archive of its main branch and unpacked.
package noto

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// RepositoryURL is the location of the zip archive of the Noto emoji
// sources.
const RepositoryURL = "https://github.com/googlefonts/noto-emoji/archive/refs/heads/main.zip"

// ArchiveName is the file name used for the downloaded archive.  The
// archive is stored next to the source directory.
const ArchiveName = "noto-emoji.zip"

// archiveRoot is the top-level directory inside the archive.
const archiveRoot = "noto-emoji-main"

// ErrInvalidSources indicates that a path exists, but does not contain the
// Noto emoji sources.
var ErrInvalidSources = errors.New("invalid Noto emoji sources")

// required lists the entries every copy of the sources contains.
var required = []string{"colrv1", "svg", "third_party", "emoji_aliases.txt"}

// Validate checks whether dir contains the Noto emoji sources.
// It returns false without error if dir does not exist.
func Validate(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%q is not a directory: %w", dir, ErrInvalidSources)
	}
	for _, name := range required {
		_, err := os.Stat(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%q has no %s: %w", dir, name, ErrInvalidSources)
		} else if err != nil {
			return false, err
		}
	}
	return true, nil
}

// Fetcher downloads and unpacks the sources.
// The zero value downloads from [RepositoryURL] using
// [http.DefaultClient] and does not log.
type Fetcher struct {
	Client *http.Client
	URL    string
	Logger *slog.Logger
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.Logger
}

// EnsureLocal makes sure that dir contains the Noto emoji sources.
// An existing archive next to dir is used instead of downloading a new
// one.
func (f *Fetcher) EnsureLocal(ctx context.Context, dir string) error {
	log := f.logger()

	ok, err := Validate(dir)
	if err != nil {
		return err
	}
	if ok {
		log.Debug("seemingly valid Noto emoji sources", "dir", dir)
		return nil
	}

	archive := filepath.Join(filepath.Dir(dir), ArchiveName)
	if _, err := os.Stat(archive); errors.Is(err, fs.ErrNotExist) {
		url := f.URL
		if url == "" {
			url = RepositoryURL
		}
		log.Info("downloading Noto emoji sources", "url", url)
		err = f.download(ctx, url, archive)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	log.Info("unpacking Noto emoji sources", "dir", dir)
	return unpack(archive, dir)
}

func (f *Fetcher) download(ctx context.Context, url, path string) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %s", url, resp.Status)
	}

	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, resp.Body)
	err2 := out.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("download %s: %w", url, err)
	}
	return os.Rename(tmp, path)
}

// unpack extracts the archive into a scratch directory next to dir and
// then moves the archive's top-level directory to dir.
func unpack(archive, dir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	scratch, err := os.MkdirTemp(filepath.Dir(dir), ".noto-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	for _, file := range r.File {
		err := extract(scratch, file)
		if err != nil {
			return fmt.Errorf("unpack %s: %w", archive, err)
		}
	}

	root := filepath.Join(scratch, archiveRoot)
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("unpack %s: no %s directory: %w", archive, archiveRoot, ErrInvalidSources)
	}
	return os.Rename(root, dir)
}

func extract(base string, file *zip.File) error {
	if !filepath.IsLocal(file.Name) {
		return fmt.Errorf("invalid file name %q", file.Name)
	}
	target := filepath.Join(base, file.Name)

	mode := file.Mode()
	switch {
	case mode.IsDir():
		return os.MkdirAll(target, 0o755)
	case !mode.IsRegular():
		// symbolic links and other special files are not needed
		return nil
	}

	err := os.MkdirAll(filepath.Dir(target), 0o755)
	if err != nil {
		return err
	}
	in, err := file.Open()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	err2 := out.Close()
	if err != nil {
		return err
	}
	return err2
}
