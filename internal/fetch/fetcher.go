// Package fetch retrieves a repository's top-level files through the GitHub
// contents API and stages their raw content on disk for later capability use.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

const maxFileSize = 1 << 20 // 1 MB per downloaded file

// RawFile is one fetched repository file. Immutable once produced.
type RawFile struct {
	Name    string
	Path    string
	Content string
}

// TransportError wraps any non-success response from the listing call or a
// per-file download. The first one aborts the whole fetch.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Options configures a Fetcher.
type Options struct {
	Token      string
	StagingDir string
	// Client overrides the GitHub API client, for tests and enterprise
	// endpoints. When nil a client is built from Token.
	Client *github.Client
	// Downloader overrides the HTTP client used for raw file downloads.
	Downloader *http.Client
}

// Fetcher lists and downloads a repository's top-level files.
type Fetcher struct {
	api        *github.Client
	downloader *http.Client
	stagingDir string
}

// New creates a Fetcher. With a token, API calls authenticate via an OAuth2
// static token source; without one they are anonymous.
func New(ctx context.Context, opts Options) *Fetcher {
	api := opts.Client
	if api == nil {
		var hc *http.Client
		if opts.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			hc = oauth2.NewClient(ctx, ts)
		}
		api = github.NewClient(hc)
	}

	downloader := opts.Downloader
	if downloader == nil {
		downloader = &http.Client{Timeout: 30 * time.Second}
	}

	return &Fetcher{
		api:        api,
		downloader: downloader,
		stagingDir: opts.StagingDir,
	}
}

// Fetch lists the repository's top-level entries, downloads every entry of
// type "file", and stages the content under the staging directory, one flat
// file per entry named by basename. Subdirectories are ignored. It fails fast
// with a TransportError on the first non-success response and returns no
// partial result.
func (f *Fetcher) Fetch(ctx context.Context, owner, repo string) ([]RawFile, error) {
	_, entries, resp, err := f.api.Repositories.GetContents(ctx, owner, repo, "", nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, &TransportError{Op: fmt.Sprintf("list %s/%s contents", owner, repo), Status: status, Err: err}
	}

	var files []RawFile
	for _, entry := range entries {
		if entry.GetType() != "file" {
			continue
		}

		content, err := f.download(ctx, entry.GetDownloadURL())
		if err != nil {
			return nil, err
		}

		files = append(files, RawFile{
			Name:    entry.GetName(),
			Path:    entry.GetPath(),
			Content: content,
		})
	}

	if err := f.stage(files); err != nil {
		return nil, err
	}

	return files, nil
}

func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request for %q: %w", url, err)
	}

	resp, err := f.downloader.Do(req)
	if err != nil {
		return "", &TransportError{Op: fmt.Sprintf("download %q", url), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{Op: fmt.Sprintf("download %q", url), Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize))
	if err != nil {
		return "", fmt.Errorf("read %q: %w", url, err)
	}

	return string(body), nil
}

// stage writes fetched content to the staging directory. Files sharing a
// basename overwrite each other; the layout is deliberately flat.
func (f *Fetcher) stage(files []RawFile) error {
	if f.stagingDir == "" {
		return nil
	}

	if err := os.MkdirAll(f.stagingDir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	for _, file := range files {
		dest := filepath.Join(f.stagingDir, filepath.Base(file.Name))
		if err := os.WriteFile(dest, []byte(file.Content), 0o644); err != nil {
			return fmt.Errorf("stage %s: %w", file.Name, err)
		}
	}

	return nil
}

// ParseRepo extracts owner and repo from an identifier: either "owner/repo"
// or a full repository URL such as "https://github.com/owner/repo".
func ParseRepo(identifier string) (owner, repo string, err error) {
	s := strings.TrimSuffix(strings.TrimSuffix(identifier, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid repository identifier %q: want owner/repo", identifier)
	}

	owner = parts[len(parts)-2]
	repo = parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository identifier %q: want owner/repo", identifier)
	}

	return owner, repo, nil
}
