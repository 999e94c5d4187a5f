// Package convert implements the transform and replace commands.
package convert

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/storage"
	"github.com/dtnitsch/wordcalc/pkg/transform"
)

// ReadText reads the single input argument, or stdin when none is given.
func ReadText(c *cli.Context) (string, error) {
	if c.NArg() > 1 {
		return "", fmt.Errorf("expected one input, got %d", c.NArg())
	}
	ref := c.Args().First()
	if ref == "" {
		ref = storage.StdinName
	}
	data, err := storage.New().ReadInput(ref)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func TransformAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	kind, err := models.ParseTransformKind(c.String("kind"))
	if err != nil {
		return err
	}
	sel, err := models.ParseSelection(c.String("selection"))
	if err != nil {
		return err
	}
	text, err := ReadText(c)
	if err != nil {
		return err
	}

	out, err := transform.ApplyRequest(models.TransformRequest{Text: text, Kind: kind, Selection: sel})
	if err != nil {
		return err
	}
	logger.Debug("Transformed text", "kind", kind, "runes_in", len([]rune(text)), "runes_out", len([]rune(out)))

	resp := models.TransformResponse{Text: out}
	return common.Write(c, resp, func() string { return resp.Text })
}

func ReplaceAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	text, err := ReadText(c)
	if err != nil {
		return err
	}

	out, err := transform.ReplaceRequest(models.ReplaceRequest{
		Text:        text,
		Find:        c.String("find"),
		Replacement: c.String("replace"),
		Literal:     c.Bool("literal"),
	})
	if err != nil {
		return err
	}
	logger.Debug("Replaced text", "find", c.String("find"), "literal", c.Bool("literal"))

	resp := models.TransformResponse{Text: out}
	return common.Write(c, resp, func() string { return resp.Text })
}
