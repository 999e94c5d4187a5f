package serve

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dtnitsch/wordcalc/pkg/caching"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
)

// Pruner removes history older than the retention window and expired
// grammar cache entries. Either target may be nil.
type Pruner struct {
	History   *dbpkg.DB
	Retention time.Duration
	Cache     *caching.Cache
	Logger    *slog.Logger
}

// Run performs one pruning pass.
func (p *Pruner) Run() {
	if p.History != nil && p.Retention > 0 {
		removed, err := p.History.PruneOlderThan(p.Retention)
		if err != nil {
			p.Logger.Error("Scheduled history pruning failed", "error", err)
		} else {
			p.Logger.Info("Scheduled history pruning completed", "removed", removed)
		}
	}
	if p.Cache != nil {
		removed, err := p.Cache.Prune()
		if err != nil {
			p.Logger.Error("Scheduled cache pruning failed", "error", err)
		} else {
			p.Logger.Debug("Scheduled cache pruning completed", "removed", removed)
		}
	}
}

// StartPruning schedules p on the standard cron expression schedule. An
// empty schedule returns a nil Cron and schedules nothing.
func StartPruning(schedule string, p *Pruner) (*cron.Cron, error) {
	if schedule == "" {
		p.Logger.Info("Prune schedule not configured, skipping scheduler")
		return nil, nil
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, p.Run); err != nil {
		return nil, fmt.Errorf("failed to schedule pruning: %w", err)
	}
	c.Start()
	p.Logger.Info("Prune scheduler started", "schedule", schedule, "retention", p.Retention.String())
	return c, nil
}
