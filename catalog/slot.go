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

import "strings"

// SlotScanner classifies the disc labels of one title. A few titles number
// their discs from zero ("disc0", "disc1"), so once a '0' label has been seen
// a later '1' label means the second disc. Use a fresh scanner per title.
type SlotScanner struct {
	disc0Found bool
}

// Classify maps a free-text label to a disc slot. The first matching rule
// wins: '0' → disc1, '1' → disc1 (disc2 after a '0' label), '2' → disc2.
func (s *SlotScanner) Classify(label string) (Slot, error) {
	switch {
	case strings.ContainsRune(label, '0'):
		s.disc0Found = true
		return SlotDisc1, nil
	case strings.ContainsRune(label, '1'):
		if s.disc0Found {
			return SlotDisc2, nil
		}
		return SlotDisc1, nil
	case strings.ContainsRune(label, '2'):
		return SlotDisc2, nil
	default:
		return "", UnrecognizedSlotError{Label: label}
	}
}

// ClassifySlot classifies a single label with no scan history.
func ClassifySlot(label string) (Slot, error) {
	var s SlotScanner
	return s.Classify(label)
}
