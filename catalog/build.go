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
	"errors"
	"strings"
)

// Builder turns raw titles into a Catalog.
type Builder struct {
	resolver *Resolver
	reporter Reporter
}

// NewBuilder creates a Builder. A nil resolver uses NewResolver with the
// same reporter.
func NewBuilder(resolver *Resolver, reporter Reporter) *Builder {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if resolver == nil {
		resolver = NewResolver(WithReporter(reporter))
	}
	return &Builder{resolver: resolver, reporter: reporter}
}

// Build resolves every title and indexes its digests. Titles without a game
// ID are skipped; titles whose layout cannot be resolved are kept with an
// absent layout. A later title with the same game ID replaces an earlier one.
func (b *Builder) Build(titles []RawTitle) *Catalog {
	c := New()

	for _, title := range titles {
		gameID := strings.TrimSpace(title.GameID)
		if gameID == "" {
			b.reporter.Report(Issue{
				Kind:    IssueMissingGameID,
				Title:   title.Title,
				Records: len(title.Discs),
			})
			continue
		}
		title.GameID = gameID

		if _, dup := c.GameData[gameID]; dup {
			b.reporter.Report(Issue{Kind: IssueDuplicateGameID, GameID: gameID, Title: title.Title})
		}

		c.GameData[gameID] = GameRecord{
			GameID:   gameID,
			Title:    title.Title,
			Region:   title.Region,
			Platform: platformOrDefault(title.Platform),
			Versions: b.resolve(title),
		}
	}

	c.HashIndex = BuildHashIndex(c.GameData, b.reporter)
	return c
}

func (b *Builder) resolve(title RawTitle) Versions {
	versions, err := b.resolver.Resolve(title)
	if err == nil {
		return versions
	}

	kind := IssueMalformedDiscLabel
	if errors.Is(err, ErrUnrecognizedSlot) {
		kind = IssueUnrecognizedSlot
	}
	b.reporter.Report(Issue{
		Kind:    kind,
		GameID:  title.GameID,
		Title:   title.Title,
		Detail:  err.Error(),
		Records: len(title.Discs),
	})
	return Absent()
}

// Build is shorthand for NewBuilder(nil, reporter).Build(titles).
func Build(titles []RawTitle, reporter Reporter) *Catalog {
	return NewBuilder(nil, reporter).Build(titles)
}

func platformOrDefault(platform string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return DefaultPlatform
	}
	return platform
}
