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
	"fmt"
	"io"

	"github.com/ZaparooProject/go-wiitdb/internal/binary"
)

// HeaderSize is the number of bytes ReadHeader needs.
const HeaderSize = 0x0440

// Disc header offsets shared by GameCube and Wii
const (
	gameCodeOffset     = 0x0000
	gameCodeSize       = 4
	makerCodeOffset    = 0x0004
	makerCodeSize      = 2
	discNumberOffset   = 0x0006
	revisionOffset     = 0x0007
	wiiMagicOffset     = 0x0018
	gcMagicOffset      = 0x001C
	internalNameOffset = 0x0020
	gcInternalNameSize = 0x03E0 // 0x0020 to 0x0400
	wiiInternalNameLen = 0x0040
)

var (
	// GameCube magic word at offset 0x1C
	gcMagicWord = []byte{0xC2, 0x33, 0x9F, 0x3D}
	// Wii magic word at offset 0x18
	wiiMagicWord = []byte{0x5D, 0x1C, 0x9E, 0xA3}
)

// DetectPlatform reports which console header describes, or "" when neither
// magic word is present.
func DetectPlatform(header []byte) Platform {
	if len(header) < internalNameOffset {
		return ""
	}
	switch {
	case binary.HasMagic(header, wiiMagicOffset, wiiMagicWord):
		return PlatformWii
	case binary.HasMagic(header, gcMagicOffset, gcMagicWord):
		return PlatformGameCube
	default:
		return ""
	}
}

// ReadHeader reads and validates the disc header at the start of r.
func ReadHeader(r io.ReaderAt, size int64) (*Header, error) {
	if size < HeaderSize {
		return nil, ErrInvalidFormat{Reason: "file too small"}
	}

	header, err := binary.ReadBytesAt(r, 0, HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read disc header: %w", err)
	}

	platform := DetectPlatform(header)
	if platform == "" {
		return nil, ErrInvalidFormat{Reason: "invalid magic word"}
	}

	gameCode := binary.ExtractPrintable(header[gameCodeOffset : gameCodeOffset+gameCodeSize])
	makerCode := binary.ExtractPrintable(header[makerCodeOffset : makerCodeOffset+makerCodeSize])
	if len(gameCode) != gameCodeSize || len(makerCode) != makerCodeSize {
		return nil, ErrInvalidFormat{Reason: "malformed game ID"}
	}

	nameSize := gcInternalNameSize
	if platform == PlatformWii {
		nameSize = wiiInternalNameLen
	}

	return &Header{
		GameID:        gameCode + makerCode,
		GameCode:      gameCode,
		MakerCode:     makerCode,
		DiscNumber:    int(header[discNumberOffset]),
		Revision:      int(header[revisionOffset]),
		InternalTitle: binary.CleanString(header[internalNameOffset : internalNameOffset+nameSize]),
		Platform:      platform,
	}, nil
}
