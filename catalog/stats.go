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

package catalog

// Stats summarizes a catalog.
type Stats struct {
	Platforms  map[string]int `json:"platforms"`
	Titles     int            `json:"titles"`
	Resolved   int            `json:"resolved"`
	Unresolved int            `json:"unresolved"`
	Versions   int            `json:"versions"`
	Discs      int            `json:"discs"`
	Hashes     int            `json:"hashes"`
}

// Stats counts titles, layouts, discs and indexed digests.
func (c *Catalog) Stats() Stats {
	s := Stats{Platforms: make(map[string]int)}
	if c == nil {
		return s
	}

	s.Titles = len(c.GameData)
	s.Hashes = len(c.HashIndex)
	for _, record := range c.GameData {
		s.Platforms[record.Platform]++
		versions, ok := record.Versions.Map()
		if !ok {
			s.Unresolved++
			continue
		}
		s.Resolved++
		s.Versions += len(versions)
		for _, slots := range versions {
			s.Discs += len(slots)
		}
	}
	return s
}
