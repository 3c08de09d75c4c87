package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestFetchWritesFile(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("tool\nboot\n"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "nested", "words.txt")
	dl, err := Fetch(context.Background(), srv.URL, dest, false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if dl.Cached || dl.Bytes != 10 || dl.Path != dest {
		t.Fatalf("unexpected download: %+v", dl)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read dictionary: %v", err)
	}
	if string(data) != "tool\nboot\n" {
		t.Fatalf("unexpected contents %q", data)
	}

	dl, err = Fetch(context.Background(), srv.URL, dest, false)
	if err != nil {
		t.Fatalf("second Fetch failed: %v", err)
	}
	if !dl.Cached || hits.Load() != 1 {
		t.Fatalf("expected cached result without a request, got %+v after %d hits", dl, hits.Load())
	}

	if _, err := Fetch(context.Background(), srv.URL, dest, true); err != nil {
		t.Fatalf("forced Fetch failed: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected forced fetch to hit the server, got %d hits", hits.Load())
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "words.txt")
	if _, err := Fetch(context.Background(), srv.URL, dest, false); err == nil {
		t.Fatalf("expected error for 404")
	}
	ok, err := Exists(dest)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Fatalf("expected no dictionary after failed download")
	}
	entries, err := os.ReadDir(filepath.Dir(dest))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFetchRequiresArguments(t *testing.T) {
	if _, err := Fetch(context.Background(), "", "x", false); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := Fetch(context.Background(), "http://example.test", "", false); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
