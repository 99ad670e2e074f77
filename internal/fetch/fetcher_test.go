package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFetcher points a Fetcher at an httptest server standing in for the
// GitHub API and raw download host.
func newTestFetcher(t *testing.T, srv *httptest.Server, staging string) *Fetcher {
	t.Helper()

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	return New(context.Background(), Options{
		Client:     gh,
		Downloader: srv.Client(),
		StagingDir: staging,
	})
}

func contentsJSON(srvURL string) string {
	return fmt.Sprintf(`[
		{"name": "README.md", "path": "README.md", "type": "file", "download_url": "%s/raw/README.md"},
		{"name": "main.py", "path": "main.py", "type": "file", "download_url": "%s/raw/main.py"},
		{"name": "docs", "path": "docs", "type": "dir", "download_url": null}
	]`, srvURL, srvURL)
}

func TestFetchTopLevelFiles(t *testing.T) {
	staging := t.TempDir()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/repos/acme/widgets/contents/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, contentsJSON(srv.URL))
	})
	mux.HandleFunc("/raw/README.md", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "# Overview\nhello")
	})
	mux.HandleFunc("/raw/main.py", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "def main():\n    pass\n")
	})

	f := newTestFetcher(t, srv, staging)
	files, err := f.Fetch(context.Background(), "acme", "widgets")
	require.NoError(t, err)

	// Directory entry is skipped; order follows the listing.
	require.Len(t, files, 2)
	assert.Equal(t, "README.md", files[0].Name)
	assert.Equal(t, "# Overview\nhello", files[0].Content)
	assert.Equal(t, "main.py", files[1].Name)

	// Both files are staged flat under their basenames.
	data, err := os.ReadFile(filepath.Join(staging, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Overview\nhello", string(data))

	_, err = os.Stat(filepath.Join(staging, "main.py"))
	require.NoError(t, err)
}

func TestFetchListing404(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/repos/acme/missing/contents/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	f := newTestFetcher(t, srv, t.TempDir())
	_, err := f.Fetch(context.Background(), "acme", "missing")
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusNotFound, terr.Status)
}

func TestFetchDownloadFailureAbortsWithNoPartialResult(t *testing.T) {
	staging := t.TempDir()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/repos/acme/widgets/contents/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, contentsJSON(srv.URL))
	})
	mux.HandleFunc("/raw/README.md", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "# Overview")
	})
	mux.HandleFunc("/raw/main.py", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	})

	f := newTestFetcher(t, srv, staging)
	files, err := f.Fetch(context.Background(), "acme", "widgets")

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusBadGateway, terr.Status)
	assert.Nil(t, files)

	// Nothing is staged when the fetch aborts.
	entries, err := os.ReadDir(staging)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		in      string
		owner   string
		repo    string
		wantErr bool
	}{
		{in: "acme/widgets", owner: "acme", repo: "widgets"},
		{in: "https://github.com/acme/widgets", owner: "acme", repo: "widgets"},
		{in: "https://github.com/acme/widgets.git", owner: "acme", repo: "widgets"},
		{in: "https://github.com/acme/widgets/", owner: "acme", repo: "widgets"},
		{in: "widgets", wantErr: true},
		{in: "", wantErr: true},
		{in: "acme/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := ParseRepo(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &TransportError{Op: "list", Status: 500, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "HTTP 500")
}
