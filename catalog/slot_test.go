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

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

func TestClassifySlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		want    catalog.Slot
		wantErr bool
	}{
		{label: "disc0", want: catalog.SlotDisc1},
		{label: "Disc 1", want: catalog.SlotDisc1},
		{label: "disc2", want: catalog.SlotDisc2},
		{label: "2 of 2", want: catalog.SlotDisc2},
		// '0' wins over any other digit.
		{label: "1.0", want: catalog.SlotDisc1},
		// '1' wins over '2'.
		{label: "12", want: catalog.SlotDisc1},
		{label: "disc", wantErr: true},
		{label: "", wantErr: true},
		{label: "disc3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.ClassifySlot(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, catalog.ErrUnrecognizedSlot)
				assert.True(t, strings.Contains(err.Error(), tt.label))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotScanner_Disc0Flag(t *testing.T) {
	t.Parallel()

	var scanner catalog.SlotScanner

	slot, err := scanner.Classify("disc1")
	require.NoError(t, err)
	assert.Equal(t, catalog.SlotDisc1, slot)

	slot, err = scanner.Classify("disc0")
	require.NoError(t, err)
	assert.Equal(t, catalog.SlotDisc1, slot)

	// After a zero-indexed label, '1' names the second disc.
	slot, err = scanner.Classify("disc1")
	require.NoError(t, err)
	assert.Equal(t, catalog.SlotDisc2, slot)

	// A fresh classification has no history.
	slot, err = catalog.ClassifySlot("disc1")
	require.NoError(t, err)
	assert.Equal(t, catalog.SlotDisc1, slot)
}

func TestProbes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input       string
		wantVersion catalog.ProbeMatch
		wantDisc    catalog.ProbeMatch
	}{
		{
			input:       "1.01 Disc 2",
			wantVersion: catalog.ProbeMatch{Text: "1.01", Matched: true},
			wantDisc:    catalog.ProbeMatch{Text: "Disc 2", Matched: true},
		},
		{
			input:       "disc1",
			wantDisc:    catalog.ProbeMatch{Text: "disc1", Matched: true},
		},
		{
			input:       "v12.345",
			wantVersion: catalog.ProbeMatch{Text: "12.345", Matched: true},
		},
		{input: "Disc 3"},
		{input: "disc  1"},
		{input: "1."},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantVersion, catalog.ProbeVersion(tt.input))
			assert.Equal(t, tt.wantDisc, catalog.ProbeDiscNumber(tt.input))
		})
	}
}

func TestDenylist(t *testing.T) {
	t.Parallel()

	d := catalog.DefaultDenylist()
	for _, label := range []string{"disc1ukv", "disc2ukv", "disc1eur", "DISC2EUR", " disc1eur "} {
		assert.True(t, d.Contains(label), label)
	}
	assert.False(t, d.Contains("disc1"))
	assert.Len(t, d.Labels(), 4)

	parsed, err := catalog.ParseDenylist(strings.NewReader("# comment\n\nfoo\n  Bar \n"))
	require.NoError(t, err)
	assert.True(t, parsed.Contains("foo"))
	assert.True(t, parsed.Contains("bar"))
	assert.False(t, parsed.Contains("# comment"))

	var nilList *catalog.Denylist
	assert.False(t, nilList.Contains("foo"))
}
