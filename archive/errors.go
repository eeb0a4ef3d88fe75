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

import "fmt"

// FormatError indicates an unsupported or invalid archive format.
type FormatError struct {
	Format string
	Reason string
}

func (e FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported archive format %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("unsupported archive format: %s", e.Format)
}

// FileNotFoundError indicates a file was not found in the archive.
type FileNotFoundError struct {
	Archive      string
	InternalPath string
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q not found in archive %q", e.InternalPath, e.Archive)
}

// NoMatchError indicates no archive entry matched what the caller looked for.
type NoMatchError struct {
	Archive string
	Want    string // human-readable description of the wanted entry
}

func (e NoMatchError) Error() string {
	return fmt.Sprintf("no %s found in archive %q", e.Want, e.Archive)
}

// AmbiguousError indicates several entries matched and none was preferred.
type AmbiguousError struct {
	Archive    string
	Candidates []string
}

func (e AmbiguousError) Error() string {
	return fmt.Sprintf("archive %q has %d candidate files: %v", e.Archive, len(e.Candidates), e.Candidates)
}
