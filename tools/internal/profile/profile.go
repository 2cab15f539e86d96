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


// Package profile collects CPU and heap profiles for the emo tools.
package profile

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// Start begins CPU profiling if cpuprofile is not empty.  The returned
// function stops CPU profiling and, if memprofile is not empty, writes an
// allocation profile.  Problems while writing the allocation profile are
// reported to log.
func Start(cpuprofile, memprofile string, log *slog.Logger) (stop func(), err error) {
	var cpuFile *os.File
	if cpuprofile != "" {
		cpuFile, err = os.Create(cpuprofile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
	}

	stop = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}
		if memprofile != "" {
			if err := writeAllocs(memprofile); err != nil {
				log.Error("could not write memory profile", "err", err)
			}
		}
	}
	return stop, nil
}

func writeAllocs(path string) error {
	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return fmt.Errorf("no allocs profile")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = allocs.WriteTo(f, 0)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
