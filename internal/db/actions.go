// Package db implements the history subcommands.
package db

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
	"github.com/dtnitsch/wordcalc/pkg/formatter"
	"github.com/dtnitsch/wordcalc/pkg/storage"
)

func ListAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	reports, err := database.ListReports(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	return common.Write(c, reports, func() string {
		var sb strings.Builder
		writeReportTable(&sb, reports)
		if info, err := storage.New().GetFileStats(database.Path()); err == nil {
			fmt.Fprintf(&sb, "Database: %s (%s)\n", database.Path(), info.HumanSize())
		}
		return sb.String()
	})
}

func writeReportTable(w io.Writer, reports []dbpkg.ReportSummary) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports found")
		return
	}

	fmt.Fprintf(w, "%-6s %-16s %-9s %-10s %-8s %-22s %s\n",
		"ID", "Created", "Scope", "Words", "Size", "Level", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range reports {
		fmt.Fprintf(w, "%-6d %-16s %-9s %-10s %-8s %-22s %s\n",
			r.ID,
			humanize.Time(r.CreatedAt),
			r.Scope,
			humanize.Comma(int64(r.Words)),
			humanize.Bytes(uint64(r.TextBytes)),
			r.GradeLabel,
			r.Source,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d reports\n", len(reports))
	fmt.Fprintf(w, "Tip: Use 'wordcalc history show <id>' to see details\n")
}

func ShowAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	reportID, err := GetReportIDOrLatest(c, database)
	if err != nil {
		return err
	}

	stored, err := database.GetReport(reportID)
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	f := formatter.New(cfg.Locale)

	return common.Write(c, stored, func() string {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Report %d\n", stored.ID)
		sb.WriteString(strings.Repeat("=", 60) + "\n")
		fmt.Fprintf(&sb, "Created:     %s (%s)\n", stored.CreatedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(stored.CreatedAt))
		fmt.Fprintf(&sb, "Request:     %s\n", stored.RequestID)
		fmt.Fprintf(&sb, "Text size:   %s\n\n", humanize.Bytes(uint64(stored.TextBytes)))
		sb.WriteString(f.Summary(&stored.Report))
		return sb.String()
	})
}

func PruneAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	age := cfg.History.Retention
	if c.IsSet("older-than") {
		age = c.Duration("older-than")
	}
	if age <= 0 {
		return fmt.Errorf("--older-than must be positive, got %s", age)
	}

	database, err := dbpkg.Open(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	removed, err := database.PruneOlderThan(age)
	if err != nil {
		return fmt.Errorf("failed to prune reports: %w", err)
	}
	logger.Info("Pruned reports", "removed", removed, "older_than", age.String())

	var cacheRemoved int
	if cfg.Grammar.CacheDir != "" {
		cache, err := caching.NewCache(cfg.Grammar.CacheDir, cfg.Grammar.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to open grammar cache: %w", err)
		}
		if cacheRemoved, err = cache.Prune(); err != nil {
			return fmt.Errorf("failed to prune grammar cache: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Removed %d reports and %d cached grammar responses\n", removed, cacheRemoved)
	return nil
}

func TermsAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	terms, err := database.TopTerms(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to get top terms: %w", err)
	}

	return common.Write(c, terms, func() string {
		if len(terms) == 0 {
			return "No keywords recorded"
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%-20s %-12s %s\n", "Term", "Occurrences", "Reports")
		sb.WriteString(strings.Repeat("-", 44) + "\n")
		for _, t := range terms {
			fmt.Fprintf(&sb, "%-20s %-12s %d\n", t.Term, humanize.Comma(int64(t.Occurrences)), t.Reports)
		}
		return sb.String()
	})
}
