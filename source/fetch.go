package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/ZaparooProject/go-wiitdb/archive"
	"github.com/ZaparooProject/go-wiitdb/internal/logger"
)

// FetchOptions configures a Fetcher. Zero values fall back to defaults.
type FetchOptions struct {
	URL       string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
}

const (
	defaultTimeout   = 2 * time.Minute
	defaultRetryWait = time.Second
	defaultUserAgent = "go-wiitdb"
)

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// Fetcher downloads the database archive.
type Fetcher struct {
	url       string
	userAgent string
	http      *http.Client
	log       *logrus.Entry
}

// NewFetcher returns a Fetcher for opts.URL.
func NewFetcher(opts FetchOptions) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = defaultRetryWait
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	log := logger.GetLogger("fetch")
	return &Fetcher{
		url:       opts.URL,
		userAgent: opts.UserAgent,
		http:      newRetryableHTTPClient(opts.Timeout, opts.Retries, opts.RetryWait, ratelimit.New(1, ratelimit.WithoutSlack), log),
		log:       log,
	}
}

// Fetch downloads the database into a new temporary file in dir (the OS
// temp dir when empty) and returns its path. The caller removes the file.
func (f *Fetcher) Fetch(ctx context.Context, dir string) (string, error) {
	if f.url == "" {
		return "", errors.New("no source url configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "could not create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	f.log.Infof("Downloading %s", req.URL.Redacted())

	res, err := f.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "client request error")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return "", StatusError{URL: req.URL.Redacted(), StatusCode: res.StatusCode}
	}

	tmp, err := os.CreateTemp(dir, "wiitdb-*"+downloadExt(f.url))
	if err != nil {
		return "", errors.Wrap(err, "could not create download file")
	}

	n, err := io.Copy(tmp, res.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", errors.Wrap(err, "could not save download")
	}

	f.log.Infof("Downloaded %s to %s", humanize.IBytes(uint64(n)), tmp.Name()) //nolint:gosec // n is non-negative
	return tmp.Name(), nil
}

// downloadExt picks the temp file extension from the URL path so Open can
// dispatch on it later.
func downloadExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".zip"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if archive.IsArchiveExtension(ext) || ext == ".xml" {
		return ext
	}
	return ".zip"
}
