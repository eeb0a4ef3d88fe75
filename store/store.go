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

// Package store persists a catalog to a local cache file.
//
// The cache is a JSON object with the keys "game_data" and "hash_index". The
// file extension selects an optional compression layer: ".gz" (gzip), ".zst"
// (zstandard) or ".xz". Writes go to a temporary file that is renamed over
// the target, so a reader never sees a partially written cache.
package store

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

// FileName is the base name of the default cache file.
const FileName = "wiitdb.json"

var (
	// ErrNotFound means there is no cache file yet.
	ErrNotFound = errors.New("cache not found")
	// ErrCorrupt means the cache file exists but could not be decoded.
	ErrCorrupt = errors.New("cache corrupt")
)

// Store reads and writes a catalog cache file.
type Store struct {
	path string
}

// New returns a Store for path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the cache location inside the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user cache directory")
	}
	return filepath.Join(dir, "wiitdb", FileName), nil
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the cache file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read loads the cache. A missing file yields ErrNotFound; anything that
// cannot be decoded into both top-level keys yields ErrCorrupt.
func (s *Store) Read() (*catalog.Catalog, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, s.path)
		}
		return nil, errors.Wrapf(err, "open cache %s", s.path)
	}
	defer func() { _ = file.Close() }()

	return decode(file, codecFor(s.path))
}

// Write replaces the cache with c. Errors are always returned to the caller:
// after an update there is no older cache to fall back to.
func (s *Store) Write(c *catalog.Catalog) error {
	if c == nil || c.GameData == nil || c.HashIndex == nil {
		return errors.New("refusing to write incomplete catalog")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "create cache directory %s", dir)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return errors.Wrap(err, "lock cache")
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temporary cache file")
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := encode(tmp, codecFor(s.path), c); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync cache")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close cache")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrapf(err, "replace cache %s", s.path)
	}
	return nil
}

// cacheFile mirrors catalog.Catalog with pointers so missing keys can be told
// apart from empty ones.
type cacheFile struct {
	GameData  *map[string]catalog.GameRecord `json:"game_data"`
	HashIndex *map[string]string             `json:"hash_index"`
}

func decode(r io.Reader, c codec) (*catalog.Catalog, error) {
	reader, err := c.reader(r)
	if err != nil {
		return nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	defer func() { _ = reader.Close() }()

	var raw cacheFile
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	if raw.GameData == nil || *raw.GameData == nil {
		return nil, errors.Wrap(ErrCorrupt, "missing game_data")
	}
	if raw.HashIndex == nil || *raw.HashIndex == nil {
		return nil, errors.Wrap(ErrCorrupt, "missing hash_index")
	}

	return &catalog.Catalog{
		GameData:  *raw.GameData,
		HashIndex: *raw.HashIndex,
	}, nil
}

func encode(w io.Writer, c codec, cat *catalog.Catalog) error {
	writer, err := c.writer(w)
	if err != nil {
		return errors.Wrap(err, "create cache encoder")
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		_ = writer.Close()
		return errors.Wrap(err, "encode cache")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "flush cache")
	}
	return nil
}
