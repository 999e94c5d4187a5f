package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/wordcalc/models"
)

// ReportSummary is one row of the history listing.
type ReportSummary struct {
	ID          int64     `json:"id" yaml:"id"`
	RequestID   string    `json:"request_id" yaml:"request_id"`
	Source      string    `json:"source" yaml:"source"`
	Scope       string    `json:"scope" yaml:"scope"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Words       int       `json:"words" yaml:"words"`
	Characters  int       `json:"characters" yaml:"characters"`
	GradeLabel  string    `json:"grade_label" yaml:"grade_label"`
	FleschScore *float64  `json:"flesch_score,omitempty" yaml:"flesch_score,omitempty"` // nil when not applicable
	Language    string    `json:"language,omitempty" yaml:"language,omitempty"`
	TextBytes   int       `json:"text_bytes" yaml:"text_bytes"`
}

// StoredReport is a report read back from history.
type StoredReport struct {
	ReportSummary `yaml:",inline"`
	Report        models.Report `json:"report" yaml:"report"`
}

// TermTotal is a term's occurrences summed over stored reports.
type TermTotal struct {
	Term        string `json:"term" yaml:"term"`
	Occurrences int    `json:"occurrences" yaml:"occurrences"`
	Reports     int    `json:"reports" yaml:"reports"`
}

// InsertReport records report and its keywords, returning the analysis_id.
func (db *DB) InsertReport(report *models.Report, requestID string, textBytes int) (int64, error) {
	return db.insertReportAt(report, requestID, textBytes, time.Now())
}

func (db *DB) insertReportAt(report *models.Report, requestID string, textBytes int, at time.Time) (int64, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}

	var flesch sql.NullFloat64
	if report.Stats.Readability.Applicable {
		flesch = sql.NullFloat64{Float64: report.Stats.Readability.FleschScore, Valid: true}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	counts := report.Stats.Counts
	result, err := tx.Exec(`
		INSERT INTO analyses (
			request_id, source, scope, created_at,
			word_count, char_count, sentence_count, paragraph_count, syllable_count,
			flesch_score, grade_label, reading_time_seconds, speaking_time_seconds,
			language, text_bytes, report_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, requestID, report.Source, report.Scope, dbTime(at),
		counts.Words, counts.Characters, counts.Sentences, counts.Paragraphs, counts.Syllables,
		flesch, report.Stats.Readability.GradeLabel, report.Stats.ReadingTimeSeconds, report.Stats.SpeakingTimeSeconds,
		report.Language, textBytes, string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report ID: %w", err)
	}

	for rank, entry := range report.Keywords {
		_, err := tx.Exec(`
			INSERT INTO analysis_keywords (analysis_id, rank, term, occurrences, density_percent)
			VALUES (?, ?, ?, ?, ?)
		`, id, rank+1, entry.Term, entry.Occurrences, entry.DensityPercent)
		if err != nil {
			return 0, fmt.Errorf("failed to insert keyword: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report: %w", err)
	}
	return id, nil
}

const summaryColumns = `
	analysis_id, COALESCE(request_id, ''), COALESCE(source, ''), scope, created_at,
	word_count, char_count, grade_label, flesch_score, COALESCE(language, ''), text_bytes`

func scanSummary(scan func(dest ...any) error) (ReportSummary, error) {
	var s ReportSummary
	var flesch sql.NullFloat64
	err := scan(&s.ID, &s.RequestID, &s.Source, &s.Scope, &s.CreatedAt,
		&s.Words, &s.Characters, &s.GradeLabel, &flesch, &s.Language, &s.TextBytes)
	if err != nil {
		return s, err
	}
	if flesch.Valid {
		score := flesch.Float64
		s.FleschScore = &score
	}
	return s, nil
}

// ListReports returns the most recent reports first. limit <= 0 means no limit.
func (db *DB) ListReports(limit int) ([]ReportSummary, error) {
	query := "SELECT" + summaryColumns + " FROM analyses ORDER BY created_at DESC, analysis_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		s, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return out, nil
}

// GetReport loads one stored report.
func (db *DB) GetReport(id int64) (*StoredReport, error) {
	var payload string
	var stored StoredReport

	row := db.QueryRow("SELECT"+summaryColumns+", report_json FROM analyses WHERE analysis_id = ?", id)
	summary, err := scanSummary(func(dest ...any) error {
		return row.Scan(append(dest, &payload)...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	stored.ReportSummary = summary
	if err := json.Unmarshal([]byte(payload), &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report %d: %w", id, err)
	}
	return &stored, nil
}

// PruneOlderThan deletes reports older than age and returns how many were removed.
func (db *DB) PruneOlderThan(age time.Duration) (int64, error) {
	return db.pruneBefore(time.Now().Add(-age))
}

func (db *DB) pruneBefore(cutoff time.Time) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		DELETE FROM analysis_keywords
		WHERE analysis_id IN (SELECT analysis_id FROM analyses WHERE created_at < ?)
	`, dbTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to prune keywords: %w", err)
	}

	result, err := tx.Exec("DELETE FROM analyses WHERE created_at < ?", dbTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to prune reports: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned reports: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit prune: %w", err)
	}
	return removed, nil
}

// TopTerms sums keyword occurrences across all stored reports.
func (db *DB) TopTerms(limit int) ([]TermTotal, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(`
		SELECT term, SUM(occurrences), COUNT(DISTINCT analysis_id)
		FROM analysis_keywords
		GROUP BY term
		ORDER BY SUM(occurrences) DESC, term ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query terms: %w", err)
	}
	defer rows.Close()

	var out []TermTotal
	for rows.Next() {
		var t TermTotal
		if err := rows.Scan(&t.Term, &t.Occurrences, &t.Reports); err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// dbTime normalizes timestamps so stored values compare in time order.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
