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
	"crypto/md5"  //nolint:gosec // GameTDB publishes MD5 digests
	"crypto/sha1" //nolint:gosec // GameTDB publishes SHA1 digests
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
)

// Hashes are the lowercase hex digests of a whole disc image.
type Hashes struct {
	CRC  string
	MD5  string
	SHA1 string
	Size int64
}

// HashReader computes CRC32, MD5 and SHA1 of r in a single pass.
func HashReader(r io.Reader) (Hashes, error) {
	crc := crc32.NewIEEE()
	md := md5.New()   //nolint:gosec // see import
	sha := sha1.New() //nolint:gosec // see import

	n, err := io.Copy(io.MultiWriter(crc, md, sha), r)
	if err != nil {
		return Hashes{}, fmt.Errorf("failed to hash disc image: %w", err)
	}

	return Hashes{
		CRC:  hex.EncodeToString(crc.Sum(nil)),
		MD5:  hex.EncodeToString(md.Sum(nil)),
		SHA1: hex.EncodeToString(sha.Sum(nil)),
		Size: n,
	}, nil
}
