// Package binary provides helpers for reading fixed-layout disc headers.
package binary

import (
	"bytes"
	"io"
	"strings"
)

// ReadAt fills buf from r at offset. A reader that returns io.EOF together
// with a full buffer is not an error.
func ReadAt(r io.ReaderAt, offset int64, buf []byte) error {
	n, err := r.ReadAt(buf, offset)
	if n == len(buf) {
		return nil
	}
	if err == nil || err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadBytesAt reads n bytes from r at offset.
func ReadBytesAt(r io.ReaderAt, offset int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := ReadAt(r, offset, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// CleanString returns the text before the first NUL in b with surrounding
// whitespace removed. Disc titles are NUL padded.
func CleanString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// ExtractPrintable keeps only printable ASCII (0x20-0x7E) from b and trims
// the result.
func ExtractPrintable(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x20 && c <= 0x7E {
			out = append(out, c)
		}
	}
	return strings.TrimSpace(string(out))
}

// HasMagic reports whether b holds magic at offset.
func HasMagic(b []byte, offset int, magic []byte) bool {
	if offset < 0 || offset > len(b)-len(magic) {
		return false
	}
	return bytes.Equal(b[offset:offset+len(magic)], magic)
}
