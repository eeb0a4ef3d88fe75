// Package source reads the GameTDB database from a URL, a local archive or a
// bare XML file and turns it into raw catalog titles.
package source

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ZaparooProject/go-wiitdb/catalog"
	"github.com/ZaparooProject/go-wiitdb/internal/logger"
)

// Options selects the database source. Path, when set, wins over URL.
type Options struct {
	URL       string
	Path      string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	// TempDir holds downloads while they are parsed.
	TempDir string
}

// Source loads raw titles from the configured location.
type Source struct {
	opts    Options
	fetcher *Fetcher
	log     *logrus.Entry
}

func New(opts Options) *Source {
	s := &Source{
		opts: opts,
		log:  logger.GetLogger("source"),
	}
	if opts.Path == "" {
		s.fetcher = NewFetcher(FetchOptions{
			URL:       opts.URL,
			Timeout:   opts.Timeout,
			Retries:   opts.Retries,
			RetryWait: opts.RetryWait,
		})
	}
	return s
}

// Location describes where Load reads from.
func (s *Source) Location() string {
	if s.opts.Path != "" {
		return s.opts.Path
	}
	return s.opts.URL
}

// Load fetches the database if needed and parses it.
func (s *Source) Load(ctx context.Context) ([]catalog.RawTitle, error) {
	path := s.opts.Path
	if path == "" {
		downloaded, err := s.fetcher.Fetch(ctx, s.opts.TempDir)
		if err != nil {
			return nil, errors.Wrap(err, "failed fetching database")
		}
		defer func() { _ = os.Remove(downloaded) }()
		path = downloaded
	}

	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context errors pass through
	}

	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	titles, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed parsing %s", path)
	}

	s.log.Debugf("Parsed %d titles from %s", len(titles), s.Location())
	return titles, nil
}
