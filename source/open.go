package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZaparooProject/go-wiitdb/archive"
)

// DatabaseName is the file looked for inside source archives.
const DatabaseName = "wiitdb.xml"

// UnsupportedError is returned for paths that are neither an archive nor XML.
type UnsupportedError struct {
	Path string
}

func (e UnsupportedError) Error() string {
	return "unsupported database source: " + e.Path
}

// Open opens the XML database at path. path is either a bare .xml file or a
// ZIP, 7z or RAR archive containing one.
func Open(path string) (io.ReadCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case archive.IsArchiveExtension(ext):
		return OpenArchive(path)
	case ext == ".xml":
		f, err := os.Open(path) //nolint:gosec // path comes from configuration
		if err != nil {
			return nil, errors.Wrap(err, "could not open database file")
		}
		return f, nil
	default:
		return nil, UnsupportedError{Path: path}
	}
}

// OpenArchive opens the database stored inside the archive at path.
func OpenArchive(path string) (io.ReadCloser, error) {
	arc, err := archive.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open archive %s", path)
	}

	name, err := archive.DetectDatabaseFile(arc, DatabaseName)
	if err != nil {
		_ = arc.Close()
		return nil, errors.Wrapf(err, "could not locate database in %s", path)
	}

	body, _, err := arc.Open(name)
	if err != nil {
		_ = arc.Close()
		return nil, errors.Wrapf(err, "could not open %s in %s", name, path)
	}

	return &archiveFile{ReadCloser: body, arc: arc}, nil
}

type archiveFile struct {
	io.ReadCloser
	arc archive.Archive
}

func (f *archiveFile) Close() error {
	bodyErr := f.ReadCloser.Close()
	if err := f.arc.Close(); err != nil {
		return err //nolint:wrapcheck // close errors pass through
	}
	return bodyErr //nolint:wrapcheck // close errors pass through
}
