package serve

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
)

func TestStartPruning(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := StartPruning("", &Pruner{Logger: logger})
	if err != nil || c != nil {
		t.Errorf("StartPruning(\"\") = %v, %v; want nil, nil", c, err)
	}

	if _, err := StartPruning("every tuesday", &Pruner{Logger: logger}); err == nil {
		t.Error("StartPruning() with invalid schedule error = nil, want error")
	}

	c, err = StartPruning("0 3 * * *", &Pruner{Logger: logger})
	if err != nil {
		t.Fatalf("StartPruning() error = %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Errorf("len(Entries()) = %d, want 1", len(c.Entries()))
	}
	<-c.Stop().Done()
}

func TestPrunerRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir := t.TempDir()
	cache, err := caching.NewCache(dir, time.Millisecond)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := cache.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	history, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer history.Close()
	if _, err := history.InsertReport(&models.Report{Scope: models.ScopeDocument}, "req-1", 0); err != nil {
		t.Fatalf("InsertReport() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	(&Pruner{History: history, Retention: 24 * time.Hour, Cache: cache, Logger: logger}).Run()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache entries after Run() = %d, want 0", len(entries))
	}

	reports, err := history.ListReports(10)
	if err != nil {
		t.Fatalf("ListReports() error = %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("reports after Run() = %d, want the recent report kept", len(reports))
	}
}
