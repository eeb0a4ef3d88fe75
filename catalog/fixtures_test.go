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

import "github.com/ZaparooProject/go-wiitdb/catalog"

// Fixtures modelled on real wiitdb.xml entries.

var sdwj18Disc = catalog.RawDisc{
	Version: "",
	Size:    "4699979776",
	CRC:     "f817c6ee",
	MD5:     "9895ea282c824d0cd71f83b41894b4fc",
	SHA1:    "84318b312fa6138e106da3661154716fb906ba0c",
}

func sdwj18() catalog.RawTitle {
	return catalog.RawTitle{
		GameID: "SDWJ18",
		Title:  "Deca Sporta 3",
		Region: "NTSC-J",
		Discs:  []catalog.RawDisc{sdwj18Disc},
	}
}

var killer7Discs = []catalog.RawDisc{
	{
		Version: "1.0 Disc 1",
		Size:    "1459978240",
		CRC:     "2f0a6f1c",
		MD5:     "0d3f4a7b8e2c1d9f6a5b4c3d2e1f0a9b",
		SHA1:    "1111111111111111111111111111111111111111",
	},
	{
		Version: "1.0 Disc 2",
		Size:    "1459978240",
		CRC:     "7c41a9d3",
		MD5:     "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		SHA1:    "2222222222222222222222222222222222222222",
	},
	{
		Version: "1.01 Disc 1",
		Size:    "1459978240",
		CRC:     "93e5b0aa",
		MD5:     "ffeeddccbbaa99887766554433221100",
		SHA1:    "3333333333333333333333333333333333333333",
	},
	{
		Version: "1.01 Disc 2",
		Size:    "1459978240",
		CRC:     "c0ffee01",
		MD5:     "00112233445566778899aabbccddeeff",
		SHA1:    "4444444444444444444444444444444444444444",
	},
}

func killer7() catalog.RawTitle {
	discs := make([]catalog.RawDisc, len(killer7Discs))
	copy(discs, killer7Discs)
	return catalog.RawTitle{
		GameID:   "GK7E08",
		Title:    "killer7",
		Region:   "NTSC-U",
		Platform: "GameCube",
		Discs:    discs,
	}
}

func melee() catalog.RawTitle {
	return catalog.RawTitle{
		GameID:   "GALE01",
		Title:    "Super Smash Bros. Melee",
		Region:   "NTSC-U",
		Platform: "GameCube",
		Discs: []catalog.RawDisc{
			{Version: "1.00", Size: "1459978240", CRC: "aaaa0000", MD5: "aa000000000000000000000000000000", SHA1: "aa00000000000000000000000000000000000000"},
			{Version: "1.01", Size: "1459978240", CRC: "aaaa0001", MD5: "aa000000000000000000000000000001", SHA1: "aa00000000000000000000000000000000000001"},
			{Version: "1.02", Size: "1459978240", CRC: "aaaa0002", MD5: "aa000000000000000000000000000002", SHA1: "aa00000000000000000000000000000000000002"},
		},
	}
}

func twoDiscs(labels ...string) []catalog.RawDisc {
	discs := make([]catalog.RawDisc, len(labels))
	for i, label := range labels {
		discs[i] = catalog.RawDisc{
			Version: label,
			Size:    "1459978240",
			CRC:     string(rune('a'+i)) + "0000000",
		}
	}
	return discs
}
