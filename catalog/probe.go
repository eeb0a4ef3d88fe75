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
	"time"

	"github.com/dlclark/regexp2"
)

const probeTimeout = 100 * time.Millisecond

var (
	// versionPattern matches a dotted numeric version such as "1.01".
	versionPattern = mustProbe(`[0-9]+\.[0-9]+`, regexp2.None)
	// discNumberPattern matches "disc1", "Disc 2", "DISC0" and so on.
	discNumberPattern = mustProbe(`disc ?[0-2]`, regexp2.IgnoreCase)
)

// ProbeMatch is the outcome of a probe: whether it matched and the matched text.
type ProbeMatch struct {
	Text    string
	Matched bool
}

func mustProbe(expr string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, opts)
	re.MatchTimeout = probeTimeout
	return re
}

func probe(re *regexp2.Regexp, s string) ProbeMatch {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return ProbeMatch{}
	}
	return ProbeMatch{Text: m.String(), Matched: true}
}

// ProbeVersion looks for a dotted numeric version token in s.
func ProbeVersion(s string) ProbeMatch {
	return probe(versionPattern, s)
}

// ProbeDiscNumber looks for a "disc N" token (N in 0-2) in s.
func ProbeDiscNumber(s string) ProbeMatch {
	return probe(discNumberPattern, s)
}
