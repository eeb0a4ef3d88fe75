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
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/scylladb/go-set/strset"
)

//go:embed anomalies.txt
var defaultAnomalies string

// Denylist holds representative version labels that are known upstream
// anomalies. Matching titles are left unresolved.
type Denylist struct {
	labels *strset.Set
}

// NewDenylist returns a denylist holding labels.
func NewDenylist(labels ...string) *Denylist {
	d := &Denylist{labels: strset.New()}
	d.Add(labels...)
	return d
}

// DefaultDenylist returns the denylist shipped with the package.
func DefaultDenylist() *Denylist {
	d, err := ParseDenylist(strings.NewReader(defaultAnomalies))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded denylist: %v", err))
	}
	return d
}

// ParseDenylist reads one label per line. Blank lines and lines starting with
// '#' are ignored.
func ParseDenylist(r io.Reader) (*Denylist, error) {
	d := NewDenylist()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read denylist: %w", err)
	}
	return d, nil
}

// Add inserts labels.
func (d *Denylist) Add(labels ...string) {
	for _, label := range labels {
		label = normalizeLabel(label)
		if label != "" {
			d.labels.Add(label)
		}
	}
}

// Contains reports whether label is denylisted.
func (d *Denylist) Contains(label string) bool {
	if d == nil {
		return false
	}
	return d.labels.Has(normalizeLabel(label))
}

// Labels returns the denylisted labels in no particular order.
func (d *Denylist) Labels() []string {
	return d.labels.List()
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
