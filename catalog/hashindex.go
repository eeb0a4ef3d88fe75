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

import (
	"maps"
	"slices"
	"strings"
)

// BuildHashIndex maps every CRC32, MD5 and SHA1 of every resolved record to
// its game ID. The three digest kinds share one namespace because their
// lengths differ. Records are visited in game ID order, then version, then
// slot, so when two discs share a digest the last one visited wins.
// Records without a layout are skipped and reported.
func BuildHashIndex(gameData map[string]GameRecord, reporter Reporter) map[string]string {
	if reporter == nil {
		reporter = nopReporter{}
	}

	index := make(map[string]string)
	for _, gameID := range slices.Sorted(maps.Keys(gameData)) {
		record := gameData[gameID]
		versions, ok := record.Versions.Map()
		if !ok {
			reporter.Report(Issue{
				Kind:   IssueMissingVersions,
				GameID: gameID,
				Title:  record.Title,
			})
			continue
		}

		for _, version := range slices.Sorted(maps.Keys(versions)) {
			slots := versions[version]
			for _, slot := range slices.Sorted(maps.Keys(slots)) {
				for _, hash := range slots[slot].Hashes() {
					hash = normalizeHash(hash)
					if hash == "" {
						continue
					}
					if prev, exists := index[hash]; exists && prev != gameID {
						reporter.Report(Issue{
							Kind:    IssueHashCollision,
							GameID:  gameID,
							Title:   record.Title,
							Version: version,
							Detail:  hash + " was " + prev,
						})
					}
					index[hash] = gameID
				}
			}
		}
	}

	return index
}

func normalizeHash(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}
