// Package proofread implements the grammar subcommands.
package proofread

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/internal/convert"
	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	"github.com/dtnitsch/wordcalc/pkg/grammar"
)

// excerptRadius is the context shown around each match in text output.
const excerptRadius = 20

// NewClient builds a grammar client from configuration. The response
// cache is enabled when grammar.cache_dir is set.
func NewClient(cfg *models.Config, logger *slog.Logger) (*grammar.Client, error) {
	opts := []grammar.Option{grammar.WithLogger(logger)}
	if cfg.Grammar.CacheDir != "" {
		cache, err := caching.NewCache(cfg.Grammar.CacheDir, cfg.Grammar.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to open grammar cache: %w", err)
		}
		opts = append(opts, grammar.WithCache(cache))
	}
	return grammar.NewClient(cfg.Grammar.Endpoint, cfg.Grammar.Language, cfg.Grammar.Timeout, opts...), nil
}

// ParseSkip parses "offset:length" pairs identifying matches to ignore.
func ParseSkip(values []string) ([][2]int, error) {
	skips := make([][2]int, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid skip %q: want offset:length", v)
		}
		offset, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid skip offset %q: %w", parts[0], err)
		}
		length, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid skip length %q: %w", parts[1], err)
		}
		skips = append(skips, [2]int{offset, length})
	}
	return skips, nil
}

// FormatMatches renders matches one per entry with context and the first suggestion.
func FormatMatches(text string, matches []models.Match) string {
	if len(matches) == 0 {
		return "No issues found."
	}

	var sb strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&sb, "%-6s %s\n", fmt.Sprintf("%d:%d", m.Offset, m.Length), m.Message)
		fmt.Fprintf(&sb, "       ...%s...\n", Excerpt(text, m))
		if best, ok := m.BestReplacement(); ok {
			fmt.Fprintf(&sb, "       suggestion: %q\n", best)
		}
		if m.Rule.ID != "" {
			fmt.Fprintf(&sb, "       rule: %s\n", m.Rule.ID)
		}
	}
	return sb.String()
}

// Excerpt is the context printed for m.
func Excerpt(text string, m models.Match) string {
	return grammar.Excerpt(text, m, excerptRadius)
}

// readTrimmed reads the input the way the service sees it. Offsets in the
// reply refer to this trimmed text.
func readTrimmed(c *cli.Context) (string, error) {
	text, err := convert.ReadText(c)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func check(c *cli.Context, text string) (*models.CheckResponse, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	client, err := NewClient(cfg, common.NewLogger(c))
	if err != nil {
		return nil, err
	}
	return client.Check(c.Context, models.CheckRequest{Text: text, Language: cfg.Grammar.Language})
}

func CheckAction(c *cli.Context) error {
	text, err := readTrimmed(c)
	if err != nil {
		return err
	}

	resp, err := check(c, text)
	if err != nil {
		return err
	}
	return common.Write(c, resp, func() string { return FormatMatches(text, resp.Matches) })
}

func ApplyAction(c *cli.Context) error {
	text, err := readTrimmed(c)
	if err != nil {
		return err
	}

	out, err := grammar.ApplyMatch(text, c.Int("offset"), c.Int("length"), c.String("value"))
	if err != nil {
		return err
	}

	resp := models.ApplyResponse{Text: out, Applied: 1}
	return common.Write(c, resp, func() string { return resp.Text })
}

func ApplyAllAction(c *cli.Context) error {
	skips, err := ParseSkip(c.StringSlice("skip"))
	if err != nil {
		return err
	}
	text, err := readTrimmed(c)
	if err != nil {
		return err
	}

	checked, err := check(c, text)
	if err != nil {
		return err
	}

	matches := grammar.Fixable(checked.Matches)
	for _, s := range skips {
		matches = grammar.Ignore(matches, s[0], s[1])
	}
	out, applied := grammar.ApplyAll(text, matches)

	resp := models.ApplyResponse{Text: out, Applied: applied}
	return common.Write(c, resp, func() string { return resp.Text })
}
