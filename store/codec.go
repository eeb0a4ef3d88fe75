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

package store

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// codec wraps the cache stream in a compression layer.
type codec struct {
	reader func(io.Reader) (io.ReadCloser, error)
	writer func(io.Writer) (io.WriteCloser, error)
	name   string
}

var (
	plainCodec = codec{
		name: "json",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return nopWriteCloser{w}, nil
		},
	}

	gzipCodec = codec{
		name: "gzip",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r) //nolint:wrapcheck // wrapped by caller
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression) //nolint:wrapcheck // wrapped by caller
		},
	}

	zstdCodec = codec{
		name: "zstd",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r)
			if err != nil {
				return nil, err //nolint:wrapcheck // wrapped by caller
			}
			return dec.IOReadCloser(), nil
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression)) //nolint:wrapcheck // wrapped by caller
		},
	}

	xzCodec = codec{
		name: "xz",
		reader: func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err //nolint:wrapcheck // wrapped by caller
			}
			return io.NopCloser(xr), nil
		},
		writer: func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w) //nolint:wrapcheck // wrapped by caller
		},
	}
)

// codecFor picks a codec from the final extension of path.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return gzipCodec
	case ".zst", ".zstd":
		return zstdCodec
	case ".xz":
		return xzCodec
	default:
		return plainCodec
	}
}

// Compression names the compression used for path.
func Compression(path string) string {
	return codecFor(path).name
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
