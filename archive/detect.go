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
	"path"
	"path/filepath"
	"strings"
)

// discImageExtensions are raw GameCube/Wii disc image extensions. Only raw
// images hash to the digests GameTDB publishes.
var discImageExtensions = map[string]bool{
	".iso": true,
	".gcm": true,
}

// IsDiscImage checks if a filename has a raw disc image extension.
func IsDiscImage(filename string) bool {
	return discImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsDatabaseFile checks if a filename looks like an XML database.
func IsDatabaseFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".xml")
}

// DetectDiscImage finds the first raw disc image in an archive.
func DetectDiscImage(arc Archive) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive files: %w", err)
	}

	for _, file := range files {
		if IsDiscImage(file.Name) {
			return file.Name, nil
		}
	}

	return "", NoMatchError{Archive: arc.Path(), Want: "disc image"}
}

// DetectDatabaseFile finds the XML database in an archive. An entry whose
// base name equals name (case-insensitive) wins; otherwise the archive must
// hold exactly one .xml file.
func DetectDatabaseFile(arc Archive, name string) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive files: %w", err)
	}

	var candidates []string
	for _, file := range files {
		if name != "" && strings.EqualFold(path.Base(filepath.ToSlash(file.Name)), name) {
			return file.Name, nil
		}
		if IsDatabaseFile(file.Name) {
			candidates = append(candidates, file.Name)
		}
	}

	switch len(candidates) {
	case 0:
		return "", NoMatchError{Archive: arc.Path(), Want: "XML database"}
	case 1:
		return candidates[0], nil
	default:
		return "", AmbiguousError{Archive: arc.Path(), Candidates: candidates}
	}
}
