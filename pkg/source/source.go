// Package source loads text to analyze from files, stdin, HTML documents
// and web articles.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/storage"
)

// Kind tells the Loader how to interpret a reference.
type Kind string

const (
	KindAuto Kind = "auto" // guess from the reference
	KindText Kind = "text" // plain text file or stdin
	KindHTML Kind = "html" // local HTML file
	KindURL  Kind = "url"  // web page, main article only
)

// ParseKind validates a kind name. Empty means KindAuto.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return KindAuto, nil
	case KindAuto, KindText, KindHTML, KindURL:
		return k, nil
	}
	return "", fmt.Errorf("unknown source kind %q (want auto, text, html or url)", name)
}

// Detect guesses the kind of ref.
func Detect(ref string) Kind {
	lower := strings.ToLower(ref)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindURL
	case filepath.Ext(lower) == ".html", filepath.Ext(lower) == ".htm":
		return KindHTML
	}
	return KindText
}

// Loader resolves references into Documents.
type Loader struct {
	storage *storage.Storage
	fetcher *Fetcher
}

// NewLoader creates a Loader. fetcher may be nil, in which case URL
// references fail.
func NewLoader(store *storage.Storage, fetcher *Fetcher) *Loader {
	return &Loader{storage: store, fetcher: fetcher}
}

// Load reads ref according to kind.
func (l *Loader) Load(ctx context.Context, ref string, kind Kind) (*models.Document, error) {
	if kind == KindAuto || kind == "" {
		kind = Detect(ref)
	}

	switch kind {
	case KindText:
		data, err := l.storage.ReadInput(ref)
		if err != nil {
			return nil, err
		}
		return &models.Document{Source: displayName(ref), Raw: string(data)}, nil

	case KindHTML:
		data, err := l.storage.ReadInput(ref)
		if err != nil {
			return nil, err
		}
		return ParseHTML(displayName(ref), string(data))

	case KindURL:
		if l.fetcher == nil {
			return nil, fmt.Errorf("cannot load %s: URL fetching is not configured", ref)
		}
		html, err := l.fetcher.GetHTML(ctx, ref)
		if err != nil {
			return nil, err
		}
		return ParseArticle(ref, html)
	}

	return nil, fmt.Errorf("unknown source kind %q", kind)
}

func displayName(ref string) string {
	if ref == storage.StdinName {
		return "stdin"
	}
	return ref
}
