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
	"fmt"
)

// ErrUnrecognizedSlot is returned when a version string carries none of the
// digits '0', '1' or '2'.
var ErrUnrecognizedSlot = errors.New("unrecognized disc slot")

// ErrMalformedDiscLabel is returned when a title whose labels carry both a
// version token and a disc token has a record without its own disc token.
var ErrMalformedDiscLabel = errors.New("malformed disc label")

// UnrecognizedSlotError reports the label that could not be classified.
type UnrecognizedSlotError struct {
	Label string
}

func (e UnrecognizedSlotError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedSlot, e.Label)
}

func (UnrecognizedSlotError) Unwrap() error {
	return ErrUnrecognizedSlot
}

// MalformedDiscLabelError reports the record that lacked a disc token.
type MalformedDiscLabelError struct {
	GameID  string
	Version string
	Index   int
}

func (e MalformedDiscLabelError) Error() string {
	if e.GameID == "" {
		return fmt.Sprintf("%s: record %d has version %q", ErrMalformedDiscLabel, e.Index, e.Version)
	}
	return fmt.Sprintf("%s: %s record %d has version %q", ErrMalformedDiscLabel, e.GameID, e.Index, e.Version)
}

func (MalformedDiscLabelError) Unwrap() error {
	return ErrMalformedDiscLabel
}
