package models

import "strings"

// Document is text loaded from a source, split into semantic blocks.
type Document struct {
	Source string  `json:"source" yaml:"source"`
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Blocks []Block `json:"blocks" yaml:"blocks"`

	// Raw holds plain-text input verbatim. When set it wins over Blocks.
	Raw string `json:"-" yaml:"-"`
}

// Block represents one semantic block of text (heading, paragraph, list item, code).
type Block struct {
	Type string `json:"type" yaml:"type"` // e.g., "h1", "p", "li", "pre"
	Text string `json:"text" yaml:"text"`
}

// ToPlainText returns the text to analyze. Blocks are written one per line
// so that every block counts as a paragraph.
func (d *Document) ToPlainText() string {
	if d.Raw != "" || len(d.Blocks) == 0 {
		return d.Raw
	}

	var sb strings.Builder
	for i, block := range d.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block.Text)
	}
	return sb.String()
}
