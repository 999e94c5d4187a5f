package watch

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/analyze"
	"github.com/dtnitsch/wordcalc/internal/common"
)

func WatchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("watch needs exactly one file, got %d", c.NArg())
	}
	path := c.Args().First()

	s, err := analyze.NewSession(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	render := func() {
		report, _, _, err := s.Analyze(ctx, c, []string{path})
		if err != nil {
			s.Logger.Error("Failed to analyze file", "path", path, "error", err)
			return
		}
		f := s.Analyzer.Formatter()
		if err := common.Write(c, report, func() string {
			return f.Headline(report.Stats.Counts) + "\n" + f.Summary(report)
		}); err != nil {
			s.Logger.Error("Failed to write report", "error", err)
		}
	}

	w, err := NewWatcher(path, s.Config.Watch.Debounce, s.Logger)
	if err != nil {
		return err
	}

	render()
	return w.Run(ctx, render)
}

