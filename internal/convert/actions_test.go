package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/pkg/transform"
)

func newApp() *cli.App {
	return &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "text"},
			&cli.StringFlag{Name: "output"},
			&cli.BoolFlag{Name: "quiet"},
			&cli.BoolFlag{Name: "verbose"},
		},
		Commands: []*cli.Command{
			{
				Name: "transform",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind"},
					&cli.StringFlag{Name: "selection"},
				},
				Action: TransformAction,
			},
			{
				Name: "replace",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "find"},
					&cli.StringFlag{Name: "replace"},
					&cli.BoolFlag{Name: "literal"},
				},
				Action: ReplaceAction,
			},
		},
	}
}

func TestActions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("hello big world"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	output := filepath.Join(dir, "out.txt")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"title", []string{"transform", "--kind", "title", input}, "Hello Big World\n"},
		{"selection", []string{"transform", "--kind", "upper", "--selection", "6:9", input}, "hello BIG world\n"},
		{"regex", []string{"replace", "--find", "b(i)g", "--replace", "s${1}x", input}, "hello six world\n"},
		{"literal", []string{"replace", "--literal", "--find", "o", "--replace", "0", input}, "hell0 big w0rld\n"},
		{"json", []string{"--format", "json", "transform", "--kind", "upper", input}, "{\n  \"text\": \"HELLO BIG WORLD\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"wordcalc", "--quiet", "--output", output}, tt.args...)
			if err := newApp().Run(args); err != nil {
				t.Fatalf("Run(%v) error = %v", tt.args, err)
			}
			got, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceActionInvalidPattern(t *testing.T) {
	input := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(input, []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	err := newApp().Run([]string{"wordcalc", "--quiet", "replace", "--find", "(", "--replace", "x", input})
	if !errors.Is(err, transform.ErrInvalidPattern) {
		t.Errorf("Run() error = %v, want ErrInvalidPattern", err)
	}
}
