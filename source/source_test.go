package source_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaparooProject/go-wiitdb/archive"
	"github.com/ZaparooProject/go-wiitdb/source"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xmlPath := writeFile(t, dir, "wiitdb.xml", []byte(sampleXML))
	zipPath := writeZIP(t, dir, "wiitdb.zip", map[string][]byte{
		"readme.txt": []byte("GameTDB"),
		"wiitdb.xml": []byte(sampleXML),
	})

	for _, path := range []string{xmlPath, zipPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()

			r, err := source.Open(path)
			require.NoError(t, err)
			defer func() { _ = r.Close() }()

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, sampleXML, string(data))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	noXML := writeZIP(t, dir, "empty.zip", map[string][]byte{"readme.txt": nil})

	_, err := source.Open(filepath.Join(dir, "wiitdb.txt"))
	var unsupported source.UnsupportedError
	assert.ErrorAs(t, err, &unsupported)

	_, err = source.Open(noXML)
	var noMatch archive.NoMatchError
	assert.ErrorAs(t, err, &noMatch)

	_, err = source.Open(filepath.Join(dir, "missing.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func serveZIP(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	zipPath := writeZIP(t, t.TempDir(), "wiitdb.zip", map[string][]byte{"wiitdb.xml": []byte(sampleXML)})
	body, err := os.ReadFile(zipPath) //nolint:gosec // test temp dir
	require.NoError(t, err)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if r.URL.Path == "/missing.zip" {
			http.NotFound(w, r)
			return
		}
		if n <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv, hits := serveZIP(t, 1)
	dir := t.TempDir()

	f := source.NewFetcher(source.FetchOptions{
		URL:       srv.URL + "/wiitdb.zip?LANG=EN&GAMECUBE=1",
		Retries:   2,
		RetryWait: time.Millisecond,
	})

	path, err := f.Fetch(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".zip", filepath.Ext(path))
	assert.EqualValues(t, 2, hits.Load(), "first attempt fails and is retried")

	r, err := source.Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	titles, err := source.Parse(r)
	require.NoError(t, err)
	assert.Len(t, titles, 3)
}

func TestFetcher_NotFound(t *testing.T) {
	t.Parallel()

	srv, _ := serveZIP(t, 0)
	f := source.NewFetcher(source.FetchOptions{URL: srv.URL + "/missing.zip", RetryWait: time.Millisecond})

	_, err := f.Fetch(context.Background(), t.TempDir())

	var statusErr source.StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetcher_NoURL(t *testing.T) {
	t.Parallel()

	_, err := source.NewFetcher(source.FetchOptions{}).Fetch(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestFetcher_Cancelled(t *testing.T) {
	t.Parallel()

	srv, _ := serveZIP(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewFetcher(source.FetchOptions{URL: srv.URL + "/wiitdb.zip"}).Fetch(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Load(t *testing.T) {
	t.Parallel()

	srv, _ := serveZIP(t, 0)
	localXML := writeFile(t, t.TempDir(), "wiitdb.xml", []byte(sampleXML))

	tests := []struct {
		name string
		opts source.Options
	}{
		{name: "url", opts: source.Options{URL: srv.URL + "/wiitdb.zip", RetryWait: time.Millisecond}},
		{name: "path", opts: source.Options{URL: "http://127.0.0.1:1/unused.zip", Path: localXML}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmp := t.TempDir()
			tt.opts.TempDir = tmp

			src := source.New(tt.opts)
			titles, err := src.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, titles, 3)

			leftovers, err := os.ReadDir(tmp)
			require.NoError(t, err)
			assert.Empty(t, leftovers, "downloads are removed after parsing")
		})
	}
}
