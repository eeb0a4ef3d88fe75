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

//go:build windows

package wiitdb

import (
	"errors"
	"os"
)

// isBlockDevice returns false on Windows; drives are opened as
// \\.\CdRom0 and treated as plain files.
func isBlockDevice(_ string) bool {
	return false
}

func deviceSize(_ *os.File) (int64, error) {
	return 0, errors.New("block devices are not supported on windows")
}
