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

// Package wiitdb identifies GameCube and Wii disc images against the GameTDB
// database.
//
// A DB keeps a resolved catalog in memory and persists it to a local cache
// file. Open reads the cache and rebuilds it from the configured source when
// the cache is missing or unreadable; Update always rebuilds.
package wiitdb

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ZaparooProject/go-wiitdb/catalog"
	"github.com/ZaparooProject/go-wiitdb/internal/logger"
	"github.com/ZaparooProject/go-wiitdb/source"
	"github.com/ZaparooProject/go-wiitdb/store"
)

// Loader produces raw titles for a rebuild. *source.Source implements it.
type Loader interface {
	Load(ctx context.Context) ([]catalog.RawTitle, error)
}

// Options configures a DB.
type Options struct {
	// CachePath is the cache file; empty uses store.DefaultPath.
	CachePath string
	// Source is used when Loader is nil.
	Source source.Options
	// Loader overrides Source.
	Loader Loader
	// Denylist adds labels to the built-in denylist.
	Denylist []string
	// Reporter receives data quality issues in addition to the log.
	Reporter catalog.Reporter
}

// DB is the query facade over a cached catalog. It is safe for concurrent
// use; Update swaps the catalog atomically.
type DB struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog

	store   *store.Store
	loader  Loader
	builder *catalog.Builder
	log     *logrus.Entry
}

// New creates a DB without touching the cache or the network. The catalog
// is empty until Load or Update succeeds.
func New(opts Options) (*DB, error) {
	cachePath := opts.CachePath
	if cachePath == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return nil, err
		}
		cachePath = p
	}

	loader := opts.Loader
	if loader == nil {
		loader = source.New(opts.Source)
	}

	log := logger.GetLogger("wiitdb")

	var reporter catalog.Reporter = logger.NewReporter(logger.GetLogger("catalog"))
	if opts.Reporter != nil {
		reporter = catalog.Tee(reporter, opts.Reporter)
	}

	denylist := catalog.DefaultDenylist()
	denylist.Add(opts.Denylist...)
	resolver := catalog.NewResolver(catalog.WithDenylist(denylist), catalog.WithReporter(reporter))

	return &DB{
		catalog: catalog.New(),
		store:   store.New(cachePath),
		loader:  loader,
		builder: catalog.NewBuilder(resolver, reporter),
		log:     log,
	}, nil
}

// Open creates a DB and loads its catalog.
func Open(ctx context.Context, opts Options) (*DB, error) {
	db, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := db.Load(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Load reads the cache, falling back to Update when the cache is missing or
// cannot be read for any reason.
func (db *DB) Load(ctx context.Context) error {
	c, err := db.store.Read()
	switch {
	case err == nil:
		db.log.Debugf("Loaded %d titles from %s", len(c.GameData), db.store.Path())
		db.swap(c)
		return nil
	case errors.Is(err, store.ErrNotFound):
		db.log.Infof("No cache at %s, building", db.store.Path())
	default:
		db.log.WithError(err).Warnf("Cache at %s is unreadable, rebuilding", db.store.Path())
	}
	return db.Update(ctx)
}

// Update fetches and parses the source, resolves every title, writes the
// cache and swaps the in-memory catalog. Nothing is swapped or written when
// any step fails.
func (db *DB) Update(ctx context.Context) error {
	start := time.Now()

	titles, err := db.loader.Load(ctx)
	if err != nil {
		return err
	}

	c := db.builder.Build(titles)

	if err := db.store.Write(c); err != nil {
		return err
	}
	db.swap(c)

	db.log.WithFields(logrus.Fields{
		"titles": len(c.GameData),
		"hashes": len(c.HashIndex),
		"took":   time.Since(start).Round(time.Millisecond),
	}).Info("Database updated")
	return nil
}

func (db *DB) swap(c *catalog.Catalog) {
	db.mu.Lock()
	db.catalog = c
	db.mu.Unlock()
}

// Catalog returns the current catalog. Callers must not modify it.
func (db *DB) Catalog() *catalog.Catalog {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.catalog
}

// CachePath returns the cache file location.
func (db *DB) CachePath() string {
	return db.store.Path()
}

// GetGameData looks a title up by game ID and/or disc digests. Any digest
// that is indexed overrides the game ID, with sha1 > md5 > crc precedence.
func (db *DB) GetGameData(gameID, crc, md5, sha1 string) (*catalog.GameRecord, bool) {
	record, ok := db.Lookup(catalog.Query{GameID: gameID, CRC: crc, MD5: md5, SHA1: sha1})
	if !ok {
		return nil, false
	}
	return &record, true
}

// Lookup resolves q against the current catalog.
func (db *DB) Lookup(q catalog.Query) (catalog.GameRecord, bool) {
	return db.Catalog().Lookup(q)
}

// Stats summarizes the current catalog.
func (db *DB) Stats() catalog.Stats {
	return db.Catalog().Stats()
}
