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

// Resolver infers the version/disc layout of a title from its disc labels.
// A Resolver holds no per-title state and is safe for concurrent use as long
// as its Reporter is.
type Resolver struct {
	denylist *Denylist
	reporter Reporter
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDenylist replaces the default denylist.
func WithDenylist(d *Denylist) ResolverOption {
	return func(r *Resolver) {
		r.denylist = d
	}
}

// WithReporter sets the data quality reporter.
func WithReporter(reporter Reporter) ResolverOption {
	return func(r *Resolver) {
		if reporter != nil {
			r.reporter = reporter
		}
	}
}

// NewResolver creates a Resolver using the default denylist and discarding
// data quality reports unless options say otherwise.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		denylist: DefaultDenylist(),
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveDiscs resolves an anonymous list of disc records.
func (r *Resolver) ResolveDiscs(discs []RawDisc) (Versions, error) {
	return r.Resolve(RawTitle{Discs: discs})
}

// Resolve works out the layout of title. Titles whose shape cannot be
// inferred come back absent with a nil error; that is a normal outcome and is
// only reported. A non-nil error (ErrMalformedDiscLabel, ErrUnrecognizedSlot)
// means a disc would have been dropped, and the result is absent too.
func (r *Resolver) Resolve(title RawTitle) (Versions, error) {
	discs := title.Discs
	switch len(discs) {
	case 0:
		return Absent(), nil
	case 1:
		// One disc is always version 1.0 whatever its label says.
		return Resolved(VersionMap{
			DefaultVersion: {SlotDisc1: NewDiscInfo(discs[0])},
		}), nil
	}

	rep := representativeVersion(discs)
	if r.denylist.Contains(rep) {
		r.reporter.Report(Issue{
			Kind:    IssueDenylisted,
			GameID:  title.GameID,
			Title:   title.Title,
			Version: rep,
			Records: len(discs),
		})
		return Absent(), nil
	}

	version := ProbeVersion(rep)
	disc := ProbeDiscNumber(rep)

	var (
		versions VersionMap
		err      error
	)
	switch {
	case version.Matched && disc.Matched:
		versions, err = r.resolveVersionedDiscs(title)
	case disc.Matched:
		versions, err = r.resolveDiscs(title)
	case version.Matched:
		versions = r.resolveVersions(title)
	default:
		r.reporter.Report(Issue{
			Kind:    IssueUnresolved,
			GameID:  title.GameID,
			Title:   title.Title,
			Version: rep,
			Records: len(discs),
		})
		return Absent(), nil
	}
	if err != nil {
		return Absent(), err
	}

	if len(versions) == 0 {
		return Absent(), nil
	}
	return Resolved(versions), nil
}

// resolveVersionedDiscs handles titles with several versions of a
// multi-disc release. Every label must carry its own disc token.
func (r *Resolver) resolveVersionedDiscs(title RawTitle) (VersionMap, error) {
	versions := make(VersionMap)
	var scanner SlotScanner

	for i, disc := range title.Discs {
		token := ProbeDiscNumber(disc.Version)
		if !token.Matched {
			return nil, MalformedDiscLabelError{GameID: title.GameID, Version: disc.Version, Index: i}
		}
		slot, err := scanner.Classify(token.Text)
		if err != nil {
			return nil, err
		}

		key := DefaultVersion
		if v := ProbeVersion(disc.Version); v.Matched {
			key = v.Text
		}
		r.put(versions, title, key, slot, NewDiscInfo(disc))
	}

	return versions, nil
}

// resolveDiscs handles a single version spread over several discs.
func (r *Resolver) resolveDiscs(title RawTitle) (VersionMap, error) {
	versions := make(VersionMap)
	var scanner SlotScanner

	for _, disc := range title.Discs {
		slot, err := scanner.Classify(disc.Version)
		if err != nil {
			return nil, err
		}
		r.put(versions, title, DefaultVersion, slot, NewDiscInfo(disc))
	}

	return versions, nil
}

// resolveVersions handles several single-disc versions. The raw label is the
// version key, even when it is empty.
func (r *Resolver) resolveVersions(title RawTitle) VersionMap {
	versions := make(VersionMap)

	for _, disc := range title.Discs {
		if disc.Version == "" {
			r.reporter.Report(Issue{
				Kind:    IssueEmptyVersion,
				GameID:  title.GameID,
				Title:   title.Title,
				Records: len(title.Discs),
			})
		}
		r.put(versions, title, disc.Version, SlotDisc1, NewDiscInfo(disc))
	}

	return versions
}

// put stores info at versions[key][slot]. An occupied slot is overwritten.
func (r *Resolver) put(versions VersionMap, title RawTitle, key string, slot Slot, info DiscInfo) {
	slots, ok := versions[key]
	if !ok {
		slots = make(DiscSlotMap)
		versions[key] = slots
	}
	if _, taken := slots[slot]; taken {
		r.reporter.Report(Issue{
			Kind:    IssueSlotOverwritten,
			GameID:  title.GameID,
			Title:   title.Title,
			Version: key,
			Detail:  string(slot),
			Records: len(title.Discs),
		})
	}
	slots[slot] = info
}

// representativeVersion is the first non-empty label, or "" if all are empty.
func representativeVersion(discs []RawDisc) string {
	for _, disc := range discs {
		if disc.Version != "" {
			return disc.Version
		}
	}
	return ""
}
