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

import "sync"

// IssueKind classifies a data quality condition found in the source.
type IssueKind string

// Data quality conditions. None of them is fatal.
const (
	IssueUnresolved         IssueKind = "unresolved_versions"
	IssueDenylisted         IssueKind = "denylisted_version"
	IssueEmptyVersion       IssueKind = "empty_version"
	IssueSlotOverwritten    IssueKind = "slot_overwritten"
	IssueMalformedDiscLabel IssueKind = "malformed_disc_label"
	IssueUnrecognizedSlot   IssueKind = "unrecognized_slot"
	IssueMissingGameID      IssueKind = "missing_gameid"
	IssueDuplicateGameID    IssueKind = "duplicate_gameid"
	IssueMissingVersions    IssueKind = "missing_versions"
	IssueHashCollision      IssueKind = "hash_collision"
)

// Issue is a single data quality event.
type Issue struct {
	Kind    IssueKind
	GameID  string
	Title   string
	Version string // representative or offending version string
	Detail  string
	Records int
}

// Reporter receives data quality events.
type Reporter interface {
	Report(issue Issue)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(issue Issue)

// Report calls f(issue).
func (f ReporterFunc) Report(issue Issue) {
	f(issue)
}

type nopReporter struct{}

func (nopReporter) Report(Issue) {}

// Collector is a Reporter that keeps every issue in memory.
type Collector struct {
	issues []Issue
	mu     sync.Mutex
}

// Report appends issue.
func (c *Collector) Report(issue Issue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issues = append(c.issues, issue)
}

// Issues returns a copy of the collected issues.
func (c *Collector) Issues() []Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// Count returns the number of collected issues of the given kind.
func (c *Collector) Count(kind IssueKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, issue := range c.issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Tee forwards every issue to all reporters.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(issue Issue) {
		for _, r := range reporters {
			if r != nil {
				r.Report(issue)
			}
		}
	})
}
