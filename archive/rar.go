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

package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
)

// RARArchive provides access to files in a RAR archive.
// RAR is a stream format, so every List or Open rescans from the start.
type RARArchive struct {
	file *os.File
	path string
}

// OpenRAR opens a RAR archive for reading.
func OpenRAR(path string) (*RARArchive, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open RAR archive: %w", err)
	}

	return &RARArchive{
		file: file,
		path: path,
	}, nil
}

func (ra *RARArchive) rewind() (*rardecode.Reader, error) {
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, fmt.Errorf("create RAR reader: %w", err)
	}
	return reader, nil
}

// walk calls fn for every non-directory header until fn returns true.
func (ra *RARArchive) walk(fn func(*rardecode.Reader, *rardecode.FileHeader) bool) error {
	reader, err := ra.rewind()
	if err != nil {
		return err
	}

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read RAR header: %w", err)
		}
		if header.IsDir {
			continue
		}
		if fn(reader, header) {
			return nil
		}
	}
}

// List returns all files in the RAR archive.
func (ra *RARArchive) List() ([]FileInfo, error) {
	var files []FileInfo //nolint:prealloc // RAR file count unknown until full scan
	err := ra.walk(func(_ *rardecode.Reader, header *rardecode.FileHeader) bool {
		files = append(files, FileInfo{
			Name: header.Name,
			Size: header.UnPackedSize,
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Open opens a file within the RAR archive. The returned reader is only
// valid until the next call on ra.
func (ra *RARArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	var (
		found *rardecode.Reader
		size  int64
	)
	err := ra.walk(func(reader *rardecode.Reader, header *rardecode.FileHeader) bool {
		if !matchName(header.Name, internalPath) {
			return false
		}
		found, size = reader, header.UnPackedSize
		return true
	})
	if err != nil {
		return nil, 0, err
	}
	if found == nil {
		return nil, 0, FileNotFoundError{
			Archive:      ra.path,
			InternalPath: internalPath,
		}
	}

	return io.NopCloser(found), size, nil
}

// Close closes the RAR archive.
func (ra *RARArchive) Path() string {
	return ra.path
}

func (ra *RARArchive) Close() error {
	return ra.file.Close() //nolint:wrapcheck // Close error passthrough is intentional
}
