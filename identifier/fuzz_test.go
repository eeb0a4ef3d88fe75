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

package identifier

import (
	"bytes"
	"testing"
)

// FuzzReadHeader tests disc header parsing with arbitrary input.
func FuzzReadHeader(f *testing.F) {
	f.Add(createDiscHeader(PlatformGameCube, "GALE01", "Super Smash Bros. Melee", 0, 2))
	f.Add(createDiscHeader(PlatformWii, "RSPE01", "Wii Sports", 0, 0))
	f.Add(make([]byte, HeaderSize))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		header, err := ReadHeader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return
		}
		if len(header.GameID) != gameCodeSize+makerCodeSize {
			t.Errorf("GameID %q has wrong length", header.GameID)
		}
		if header.Platform != PlatformGameCube && header.Platform != PlatformWii {
			t.Errorf("unexpected platform %q", header.Platform)
		}
	})
}

// FuzzDetectPlatform tests magic word detection doesn't panic.
func FuzzDetectPlatform(f *testing.F) {
	f.Add(createDiscHeader(PlatformWii, "RSPE01", "", 0, 0))
	f.Add([]byte{0x00})

	f.Fuzz(func(_ *testing.T, data []byte) {
		_ = DetectPlatform(data)
	})
}
