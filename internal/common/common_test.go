package common

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/grammar"
	"github.com/dtnitsch/wordcalc/pkg/transform"
)

func TestFilterResultFields(t *testing.T) {
	report := models.Report{Source: "a.txt", Scope: models.ScopeDocument}

	all := FilterResultFields(report, "")
	if _, ok := all["stats"]; !ok {
		t.Errorf("FilterResultFields() without fields dropped stats: %v", all)
	}

	got := FilterResultFields(report, "source, scope")
	if len(got) != 2 || got["source"] != "a.txt" || got["scope"] != models.ScopeDocument {
		t.Errorf("FilterResultFields() = %v, want source and scope only", got)
	}
}

func TestMarshal(t *testing.T) {
	v := models.TransformResponse{Text: "HELLO"}
	text := func() string { return "HELLO" }

	tests := []struct {
		format string
		want   string
	}{
		{FormatText, "HELLO\n"},
		{FormatJSON, "{\n  \"text\": \"HELLO\"\n}\n"},
		{FormatYAML, "text: HELLO\n"},
	}

	for _, tt := range tests {
		got, err := Marshal(v, tt.format, text)
		if err != nil {
			t.Fatalf("Marshal(%s) error = %v", tt.format, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"": FormatText, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil, want error")
	}
}

func TestErrorInfo(t *testing.T) {
	tests := []struct {
		err        error
		wantType   string
		wantStatus int
	}{
		{fmt.Errorf("%w: bad", transform.ErrInvalidPattern), models.ErrorTypeInvalidPattern, http.StatusBadRequest},
		{fmt.Errorf("%w: down", grammar.ErrServiceUnavailable), models.ErrorTypeServiceUnavailable, http.StatusBadGateway},
		{fmt.Errorf("%w: 9", grammar.ErrMatchOutOfRange), models.ErrorTypeInvalidInput, http.StatusBadRequest},
		{errors.New("boom"), models.ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		info := ErrorInfo(tt.err)
		if info.Type != tt.wantType {
			t.Errorf("ErrorInfo(%v).Type = %q, want %q", tt.err, info.Type, tt.wantType)
		}
		if !strings.Contains(info.Message, tt.err.Error()) {
			t.Errorf("ErrorInfo(%v).Message = %q", tt.err, info.Message)
		}
		if got := HTTPStatus(info); got != tt.wantStatus {
			t.Errorf("HTTPStatus(%q) = %d, want %d", info.Type, got, tt.wantStatus)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordcalc.yaml")
	yamlConfig := "locale: de-DE\nmin_occurrences: 3\ngrammar:\n  language: en-GB\n"
	if err := os.WriteFile(path, []byte(yamlConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var got *models.Config
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.StringFlag{Name: "locale"},
			&cli.IntFlag{Name: "min-occurrences"},
			&cli.BoolFlag{Name: "record"},
			&cli.StringFlag{Name: "db"},
		},
		Action: func(c *cli.Context) error {
			var err error
			got, err = LoadConfig(c)
			return err
		},
	}

	args := []string{"wordcalc", "--config", path, "--min-occurrences", "5", "--record", "--db", filepath.Join(dir, "h.db")}
	if err := app.Run(args); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got.Locale != "de-DE" {
		t.Errorf("Locale = %q, want de-DE from file", got.Locale)
	}
	if got.MinOccurrences != 5 {
		t.Errorf("MinOccurrences = %d, want 5 from flag", got.MinOccurrences)
	}
	if got.Grammar.Language != "en-GB" {
		t.Errorf("Grammar.Language = %q, want en-GB", got.Grammar.Language)
	}
	if !got.History.Enabled || got.History.DBPath != filepath.Join(dir, "h.db") {
		t.Errorf("History = %+v, want enabled at h.db", got.History)
	}

	if err := app.Run([]string{"wordcalc", "--config", path, "--min-occurrences", "0"}); err == nil {
		t.Error("LoadConfig() with min-occurrences 0 error = nil, want validation error")
	}
}
