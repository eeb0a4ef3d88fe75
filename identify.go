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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ZaparooProject/go-wiitdb/archive"
	"github.com/ZaparooProject/go-wiitdb/catalog"
	"github.com/ZaparooProject/go-wiitdb/identifier"
)

// Match names the key that tied a disc image to a catalog record.
type Match string

const (
	MatchNone   Match = ""
	MatchSHA1   Match = "sha1"
	MatchMD5    Match = "md5"
	MatchCRC    Match = "crc"
	MatchGameID Match = "gameid"
)

// Identification is the outcome of identifying one disc image.
type Identification struct {
	Path string
	Size int64
	// Header is nil when the image has no GameCube or Wii header.
	Header *identifier.Header
	// Hashes is zero when hashing was skipped.
	Hashes identifier.Hashes
	// Record is nil when nothing matched.
	Record  *catalog.GameRecord
	MatchBy Match
	// Version and Slot locate the matching disc within Record when the match
	// came from a digest.
	Version string
	Slot    catalog.Slot
}

// Known reports whether the image matched a catalog record.
func (i *Identification) Known() bool {
	return i.Record != nil
}

type identifyConfig struct {
	hash bool
}

// IdentifyOption configures IdentifyFile and Scan.
type IdentifyOption func(*identifyConfig)

// WithoutHashing identifies by header game ID only. Hashing reads the whole
// image, which is slow for multi-gigabyte discs.
func WithoutHashing() IdentifyOption {
	return func(c *identifyConfig) {
		c.hash = false
	}
}

// IdentifyFile identifies the disc image at path. path may be a plain file, a
// block device or a file inside an archive ("games.zip/GALE01.iso"); an
// archive path without an internal part selects its first disc image.
func (db *DB) IdentifyFile(ctx context.Context, path string, opts ...IdentifyOption) (*Identification, error) {
	cfg := identifyConfig{hash: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	r, size, err := openImage(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return db.identify(ctx, path, r, size, cfg)
}

func openImage(path string) (io.ReadCloser, int64, error) {
	arcPath, err := archive.ParsePath(path)
	if err != nil {
		return nil, 0, fmt.Errorf("parse archive path: %w", err)
	}
	if arcPath != nil {
		entry, entryErr := arcPath.OpenEntry()
		if entryErr != nil {
			return nil, 0, fmt.Errorf("open archive entry: %w", entryErr)
		}
		return entry, entry.Size, nil
	}

	file, err := os.Open(path) //nolint:gosec // Path from user input is expected
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}

	if isBlockDevice(path) {
		size, sizeErr := deviceSize(file)
		if sizeErr != nil {
			_ = file.Close()
			return nil, 0, fmt.Errorf("failed to size block device: %w", sizeErr)
		}
		return file, size, nil
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	return file, stat.Size(), nil
}

// identify reads the header from the first bytes of r, then hashes the whole
// stream, so r is read exactly once.
func (db *DB) identify(ctx context.Context, path string, r io.Reader, size int64, cfg identifyConfig) (*Identification, error) {
	result := &Identification{Path: path, Size: size}

	head := make([]byte, identifier.HeaderSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	head = head[:n]

	header, err := identifier.ReadHeader(bytes.NewReader(head), int64(n))
	if err == nil {
		result.Header = header
	} else {
		var formatErr identifier.ErrInvalidFormat
		if !errors.As(err, &formatErr) {
			return nil, err
		}
		db.log.WithError(err).Debugf("No disc header in %s", path)
	}

	c := db.Catalog()

	if cfg.hash {
		hashes, hashErr := identifier.HashReader(contextReader{ctx: ctx, r: io.MultiReader(bytes.NewReader(head), r)})
		if hashErr != nil {
			return nil, hashErr
		}
		result.Hashes = hashes
		matchDigests(c, result)
	}

	if result.Record == nil && result.Header != nil {
		if record, ok := c.LookupGameID(result.Header.GameID); ok {
			result.Record = &record
			result.MatchBy = MatchGameID
		}
	}

	return result, nil
}

// matchDigests tries sha1, then md5, then crc.
func matchDigests(c *catalog.Catalog, result *Identification) {
	candidates := []struct {
		match Match
		hash  string
	}{
		{MatchSHA1, result.Hashes.SHA1},
		{MatchMD5, result.Hashes.MD5},
		{MatchCRC, result.Hashes.CRC},
	}

	for _, candidate := range candidates {
		if candidate.hash == "" {
			continue
		}
		record, ok := c.LookupHash(candidate.hash)
		if !ok {
			continue
		}
		result.Record = &record
		result.MatchBy = candidate.match
		result.Version, result.Slot = locateDisc(record, candidate.hash)
		return
	}
}

func locateDisc(record catalog.GameRecord, hash string) (string, catalog.Slot) {
	versions, ok := record.Versions.Map()
	if !ok {
		return "", ""
	}
	for _, version := range slices.Sorted(maps.Keys(versions)) {
		slots := versions[version]
		for _, slot := range slices.Sorted(maps.Keys(slots)) {
			for _, h := range slots[slot].Hashes() {
				if strings.EqualFold(h, hash) {
					return version, slot
				}
			}
		}
	}
	return "", ""
}

// contextReader stops a long read once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p) //nolint:wrapcheck // reader passthrough
}
