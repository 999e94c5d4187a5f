package analyze

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/wordcalc/pkg/source"
	"github.com/dtnitsch/wordcalc/pkg/storage"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	refs := []string{
		writeInput(t, dir, "a.txt", "alpha beta"),
		filepath.Join(dir, "missing.txt"),
		writeInput(t, dir, "c.html", "<p>gamma delta</p>"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := source.NewLoader(storage.New(), nil)

	results := LoadAll(context.Background(), logger, loader, source.KindAuto, refs, 2)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	for i, r := range results {
		if r.Index != i || r.Ref != refs[i] {
			t.Errorf("results[%d] = {%d %s}, want input order", i, r.Index, r.Ref)
		}
	}
	if got := results[0].Text(); got != "alpha beta" {
		t.Errorf("results[0].Text() = %q, want %q", got, "alpha beta")
	}
	if results[1].Error == nil {
		t.Error("results[1].Error = nil, want error for missing file")
	}
	if got := results[1].Text(); got != "" {
		t.Errorf("results[1].Text() = %q, want empty", got)
	}
	if got := results[2].Text(); got != "gamma delta" {
		t.Errorf("results[2].Text() = %q, want %q", got, "gamma delta")
	}
}

func TestLoadAllCancelled(t *testing.T) {
	dir := t.TempDir()
	ref := writeInput(t, dir, "a.txt", "alpha")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := LoadAll(ctx, logger, source.NewLoader(storage.New(), nil), source.KindText, []string{ref}, 0)
	if results[0].Error == nil {
		t.Error("LoadAll() with cancelled context returned no error")
	}
}
