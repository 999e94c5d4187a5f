package db

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	dbpkg "github.com/dtnitsch/wordcalc/pkg/db"
)

// openHistory opens the configured history database.
func openHistory(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(cfg.History.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// GetReportIDOrLatest returns the report ID from args, or the latest report if not provided
func GetReportIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		reports, err := database.ListReports(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest report: %w", err)
		}
		if len(reports) == 0 {
			return 0, fmt.Errorf("%w: run 'wordcalc stats --record <file>' first", dbpkg.ErrNotFound)
		}
		return reports[0].ID, nil
	}

	var reportID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &reportID); err != nil {
		return 0, fmt.Errorf("invalid report ID: %s", c.Args().First())
	}
	return reportID, nil
}
