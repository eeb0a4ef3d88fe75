// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-wiitdb.
//
// go-wiitdb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-wiitdb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-wiitdb.  If not, see <https://www.gnu.org/licenses/>.

package wiitdb

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/ZaparooProject/go-wiitdb/archive"
)

// ScanResult is one file found by Scan. Exactly one of Identification and
// Err is set.
type ScanResult struct {
	Path           string
	Identification *Identification
	Err            error
}

// Scan walks dir and identifies every raw disc image and every archive
// holding one. Results are sorted by path. Per-file failures are reported in
// the results; only a walk failure or cancellation aborts the scan.
func (db *DB) Scan(ctx context.Context, dir string, opts ...IdentifyOption) ([]ScanResult, error) {
	var (
		mu      sync.Mutex
		results []ScanResult
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if walkErr != nil {
			db.log.WithError(walkErr).Warnf("Skipping %s", path)
			return nil
		}
		if d.IsDir() || !scannable(path) {
			return nil
		}

		id, err := db.IdentifyFile(ctx, path, opts...)

		var noMatch archive.NoMatchError
		if errors.As(err, &noMatch) {
			db.log.Tracef("No disc image in %s", path)
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		mu.Lock()
		results = append(results, ScanResult{Path: path, Identification: id, Err: err})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // walk and context errors pass through
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func scannable(path string) bool {
	return archive.IsDiscImage(path) || archive.IsArchiveExtension(filepath.Ext(path))
}
