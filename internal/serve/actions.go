package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/internal/proofread"
	"github.com/dtnitsch/wordcalc/pkg/analytics"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
	"github.com/dtnitsch/wordcalc/pkg/language"
)

const shutdownTimeout = 10 * time.Second

func ServeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c)

	checker, err := proofread.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	analyzer := analytics.New(analytics.Options{
		MinOccurrences:   cfg.MinOccurrences,
		ExcludeStopwords: cfg.ExcludeStopwords,
		Locale:           cfg.Locale,
	}, language.NewDetector(), logger)

	pruner := &Pruner{Retention: cfg.History.Retention, Logger: logger.With("component", "prune")}

	var history *dbpkg.DB
	if cfg.History.Enabled {
		history, err = dbpkg.Open(cfg.History.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer history.Close()
		pruner.History = history
	}
	if cfg.Grammar.CacheDir != "" {
		if pruner.Cache, err = caching.NewCache(cfg.Grammar.CacheDir, cfg.Grammar.CacheTTL); err != nil {
			return fmt.Errorf("failed to open grammar cache: %w", err)
		}
	}

	scheduler, err := StartPruning(cfg.History.PruneSchedule, pruner)
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer func() { <-scheduler.Stop().Done() }()
	}

	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           NewServer(analyzer, checker, history, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", cfg.Serve.Addr, "history", cfg.History.Enabled)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
