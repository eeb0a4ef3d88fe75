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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Path is a file reference that points inside an archive, such as
// "/games/melee.zip/GALE01.iso".
type Path struct {
	ArchivePath  string // Path to the archive file
	InternalPath string // Path inside the archive (empty means auto-detect)
}

var archiveExtensions = []string{".zip", ".7z", ".rar"}

// ParsePath splits path into archive and internal parts. It returns nil with
// no error when path does not refer to an existing archive.
func ParsePath(path string) (*Path, error) {
	normalizedPath := filepath.ToSlash(path)
	lowerPath := strings.ToLower(normalizedPath)

	for _, ext := range archiveExtensions {
		idx := strings.Index(lowerPath, ext+"/")
		if idx == -1 {
			continue
		}

		archivePath := path[:idx+len(ext)]
		internalPath := path[idx+len(ext)+1:]

		exists, err := statArchive(archivePath)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		return &Path{
			ArchivePath:  archivePath,
			InternalPath: internalPath,
		}, nil
	}

	if !IsArchiveExtension(filepath.Ext(path)) {
		return nil, nil //nolint:nilnil // Not an archive path
	}
	exists, err := statArchive(path)
	if err != nil || !exists {
		return nil, err
	}
	return &Path{ArchivePath: path}, nil
}

func statArchive(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat archive %s: %w", path, err)
	}
	return true, nil
}

// IsArchivePath reports whether path names an archive or a file inside one.
func IsArchivePath(path string) bool {
	lowerPath := strings.ToLower(filepath.ToSlash(path))
	for _, ext := range archiveExtensions {
		if strings.Contains(lowerPath, ext+"/") {
			return true
		}
	}
	return IsArchiveExtension(filepath.Ext(path))
}

// Entry is an open file inside an archive. Closing it closes the archive.
type Entry struct {
	io.Reader
	arc  Archive
	body io.ReadCloser
	Name string
	Size int64
}

// Close releases the entry and its archive.
func (e *Entry) Close() error {
	bodyErr := e.body.Close()
	arcErr := e.arc.Close()
	if bodyErr != nil {
		return bodyErr //nolint:wrapcheck // Close error passthrough is intentional
	}
	return arcErr //nolint:wrapcheck // Close error passthrough is intentional
}

// OpenEntry opens the file p refers to. An empty InternalPath selects the
// first disc image in the archive.
func (p *Path) OpenEntry() (*Entry, error) {
	arc, err := Open(p.ArchivePath)
	if err != nil {
		return nil, err
	}

	name := p.InternalPath
	if name == "" {
		name, err = DetectDiscImage(arc)
		if err != nil {
			_ = arc.Close()
			return nil, err
		}
	}

	body, size, err := arc.Open(name)
	if err != nil {
		_ = arc.Close()
		return nil, err //nolint:wrapcheck // archive errors are already descriptive
	}

	return &Entry{Reader: body, arc: arc, body: body, Name: name, Size: size}, nil
}
