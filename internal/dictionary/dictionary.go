// Package dictionary downloads the flat word list used by the solver.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultURL is the upstream English word list.
const DefaultURL = "https://github.com/dwyl/english-words/raw/master/words_alpha.txt"

// Download describes a dictionary on disk.
type Download struct {
	Path   string
	Bytes  int64
	Cached bool
}

// Exists reports whether a dictionary file is present at path.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat dictionary: %w", err)
}

// Fetch downloads url into destPath. An existing file is kept unless force is set.
func Fetch(ctx context.Context, url, destPath string, force bool) (Download, error) {
	if url == "" {
		return Download{}, fmt.Errorf("dictionary url is required")
	}
	if destPath == "" {
		return Download{}, fmt.Errorf("dictionary path is required")
	}
	if !force {
		ok, err := Exists(destPath)
		if err != nil {
			return Download{}, err
		}
		if ok {
			return Download{Path: destPath, Cached: true}, nil
		}
	}
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Download{}, fmt.Errorf("failed to create dictionary dir: %w", err)
	}

	resp, err := httpRequest(ctx, url)
	if err != nil {
		return Download{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Download{}, fmt.Errorf("unexpected dictionary status: %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp(dir, "dictionary-*.txt")
	if err != nil {
		return Download{}, fmt.Errorf("failed to create temp dictionary: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	n, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		return Download{}, fmt.Errorf("failed to download dictionary: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return Download{}, fmt.Errorf("failed to close temp dictionary: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Download{}, fmt.Errorf("failed to move dictionary into place: %w", err)
	}
	return Download{Path: destPath, Bytes: n}, nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "blossom")
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
