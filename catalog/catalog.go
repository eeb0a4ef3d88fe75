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

// Package catalog turns GameTDB title records into a queryable catalog.
//
// GameTDB labels the discs of a title with a free-text "version" attribute
// that has no fixed grammar. The Resolver in this package infers from those
// labels whether a title has several release versions, several discs or both,
// and produces a version → disc slot → disc info layout for it. BuildHashIndex
// then derives a reverse index from every CRC32/MD5/SHA1 digest to its game ID.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultPlatform is used when a title does not declare a <type>.
const DefaultPlatform = "Wii"

// DefaultVersion is the version key used for titles that carry no usable
// version token.
const DefaultVersion = "1.0"

// DiscInfo describes a single disc image. Any field may be empty.
type DiscInfo struct {
	Size string `json:"size"`
	CRC  string `json:"crc"`
	MD5  string `json:"md5"`
	SHA1 string `json:"sha1"`
}

// NewDiscInfo copies the fixed fields of a raw disc record.
func NewDiscInfo(disc RawDisc) DiscInfo {
	return DiscInfo{
		Size: disc.Size,
		CRC:  disc.CRC,
		MD5:  disc.MD5,
		SHA1: disc.SHA1,
	}
}

// Bytes parses the size field. It reports false when the size is missing or
// not a decimal number.
func (d DiscInfo) Bytes() (int64, bool) {
	if d.Size == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(d.Size), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Hashes returns the non-empty digests of the disc in crc, md5, sha1 order.
func (d DiscInfo) Hashes() []string {
	hashes := make([]string, 0, 3)
	for _, h := range []string{d.CRC, d.MD5, d.SHA1} {
		if strings.TrimSpace(h) != "" {
			hashes = append(hashes, h)
		}
	}
	return hashes
}

// Slot is the position of a disc within a version.
type Slot string

// Disc slots. At most two discs per version are supported.
const (
	SlotDisc1 Slot = "disc1"
	SlotDisc2 Slot = "disc2"
)

// DiscSlotMap maps a disc slot to its disc info.
type DiscSlotMap map[Slot]DiscInfo

// VersionMap maps a version label to the discs of that version. Labels are
// opaque: "1.0", "1.01" or whatever free text the source carried.
type VersionMap map[string]DiscSlotMap

// Versions is the resolved version layout of a title. The zero value is
// absent, which means the layout could not be resolved. A resolved but empty
// layout is a distinct value.
type Versions struct {
	m        VersionMap
	resolved bool
}

// Resolved wraps m as a present layout. A nil m is stored as an empty map.
func Resolved(m VersionMap) Versions {
	if m == nil {
		m = VersionMap{}
	}
	return Versions{m: m, resolved: true}
}

// Absent returns the "could not be resolved" marker.
func Absent() Versions {
	return Versions{}
}

// Map returns the layout and whether it is present.
func (v Versions) Map() (VersionMap, bool) {
	return v.m, v.resolved
}

// IsAbsent reports whether the layout could not be resolved.
func (v Versions) IsAbsent() bool {
	return !v.resolved
}

// Len returns the number of versions, zero when absent.
func (v Versions) Len() int {
	return len(v.m)
}

// MarshalJSON encodes an absent layout as null.
func (v Versions) MarshalJSON() ([]byte, error) {
	if !v.resolved {
		return []byte("null"), nil
	}
	return json.Marshal(v.m) //nolint:wrapcheck // plain passthrough
}

// UnmarshalJSON decodes null as absent and an object as a resolved layout.
func (v *Versions) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Absent()
		return nil
	}
	var m VersionMap
	if err := json.Unmarshal(data, &m); err != nil {
		return err //nolint:wrapcheck // plain passthrough
	}
	*v = Resolved(m)
	return nil
}

// GameRecord is the catalog entry for one title.
type GameRecord struct {
	GameID   string   `json:"gameid"`
	Title    string   `json:"title"`
	Region   string   `json:"region"`
	Platform string   `json:"platform"`
	Versions Versions `json:"versions"`
}

// Catalog holds every game record plus the reverse hash index.
type Catalog struct {
	GameData  map[string]GameRecord `json:"game_data"`
	HashIndex map[string]string     `json:"hash_index"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		GameData:  make(map[string]GameRecord),
		HashIndex: make(map[string]string),
	}
}

// RawDisc is one <rom> element as supplied by the source.
type RawDisc struct {
	Version string
	Name    string
	Size    string
	CRC     string
	MD5     string
	SHA1    string
}

// RawTitle is one <game> element as supplied by the source.
type RawTitle struct {
	GameID   string
	Title    string
	Region   string
	Platform string
	Discs    []RawDisc
}
