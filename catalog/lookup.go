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

// Query selects a game by ID or by any of its disc digests.
type Query struct {
	GameID string
	CRC    string
	MD5    string
	SHA1   string
}

// GameIDFor returns the game ID a query resolves to. Digests are checked in
// the order crc, md5, sha1 and every hit replaces the previous candidate, so
// the effective precedence is sha1 > md5 > crc > GameID.
func (c *Catalog) GameIDFor(q Query) string {
	gameID := q.GameID
	for _, hash := range []string{q.CRC, q.MD5, q.SHA1} {
		hash = normalizeHash(hash)
		if hash == "" {
			continue
		}
		if id, ok := c.HashIndex[hash]; ok {
			gameID = id
		}
	}
	return gameID
}

// Lookup returns the record a query resolves to. A miss at any stage is
// reported as not found.
func (c *Catalog) Lookup(q Query) (GameRecord, bool) {
	if c == nil {
		return GameRecord{}, false
	}
	gameID := c.GameIDFor(q)
	if gameID == "" {
		return GameRecord{}, false
	}
	record, ok := c.GameData[gameID]
	return record, ok
}

// LookupGameID returns the record with the given game ID.
func (c *Catalog) LookupGameID(gameID string) (GameRecord, bool) {
	return c.Lookup(Query{GameID: gameID})
}

// LookupHash returns the record owning a CRC32, MD5 or SHA1 digest.
func (c *Catalog) LookupHash(hash string) (GameRecord, bool) {
	if c == nil {
		return GameRecord{}, false
	}
	hash = normalizeHash(hash)
	if hash == "" {
		return GameRecord{}, false
	}
	gameID, ok := c.HashIndex[hash]
	if !ok {
		return GameRecord{}, false
	}
	record, ok := c.GameData[gameID]
	return record, ok
}
