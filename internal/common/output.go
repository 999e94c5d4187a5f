package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordcalc/pkg/storage"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat validates an output format name. Empty means text.
func ParseFormat(name string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(name)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", name)
}

// Marshal renders v in format. text produces the human rendering and is
// required for FormatText.
func Marshal(v interface{}, format string, text func() string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	}

	out := text()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), nil
}

// Write renders v per --format and sends it to --output, or stdout when unset.
func Write(c *cli.Context, v interface{}, text func() string) error {
	format, err := ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	data, err := Marshal(v, format, text)
	if err != nil {
		return err
	}

	if path := c.String("output"); path != "" {
		if err := storage.New().SaveFile(path, data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
