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

package binary

import (
	"bytes"
	"strings"
	"testing"
)

func FuzzCleanString(f *testing.F) {
	f.Add([]byte("killer7\x00\x00\x00"))
	f.Add([]byte("  Super Smash Bros. Melee  \x00garbage"))
	f.Add([]byte{0x00, 0x41})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		result := CleanString(data)

		if strings.IndexByte(result, 0) >= 0 {
			t.Errorf("CleanString(%q) kept a NUL byte", data)
		}
		if result != strings.TrimSpace(result) {
			t.Errorf("CleanString(%q) = %q is not trimmed", data, result)
		}
		if len(result) > len(data) {
			t.Errorf("CleanString(%q) grew the input", data)
		}
	})
}

func FuzzExtractPrintable(f *testing.F) {
	f.Add([]byte("GALE"))
	f.Add([]byte{'G', 0x00, 'K', 0xFF, '7', 'E'})
	f.Add([]byte{0x1F, 0x7F})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		result := ExtractPrintable(data)

		for i := 0; i < len(result); i++ {
			if c := result[i]; c < 0x20 || c > 0x7E {
				t.Errorf("ExtractPrintable(%q) kept byte 0x%02X", data, c)
			}
		}
	})
}

func FuzzHasMagic(f *testing.F) {
	f.Add([]byte{0x5D, 0x1C, 0x9E, 0xA3}, 0)
	f.Add([]byte{0x00, 0x5D, 0x1C, 0x9E, 0xA3}, 1)
	f.Add([]byte{0x5D}, 3)

	magic := []byte{0x5D, 0x1C, 0x9E, 0xA3}
	f.Fuzz(func(t *testing.T, data []byte, offset int) {
		got := HasMagic(data, offset, magic)

		want := offset >= 0 && offset <= len(data)-len(magic) &&
			bytes.Equal(data[offset:offset+len(magic)], magic)
		if got != want {
			t.Errorf("HasMagic(%x, %d) = %v, want %v", data, offset, got, want)
		}
	})
}
