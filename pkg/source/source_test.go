package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	"github.com/dtnitsch/wordcalc/pkg/storage"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>  Writing   Tips </title><style>p { color: red; }</style></head>
<body>
  <nav><a href="/">Home</a></nav>
  <article>
    <h1>Writing clearly</h1>
    <p>Short sentences help readers.
       Long ones wander.</p>
    <ul>
      <li><p>Prefer active voice.</p></li>
      <li>Cut filler words.</li>
    </ul>
    <blockquote><p>Omit needless words.</p></blockquote>
    <script>var notProse = true;</script>
  </article>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	doc, err := ParseHTML("tips.html", samplePage)
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	if doc.Title != "Writing Tips" {
		t.Errorf("Title = %q, want %q", doc.Title, "Writing Tips")
	}

	want := []models.Block{
		{Type: "h1", Text: "Writing clearly"},
		{Type: "p", Text: "Short sentences help readers. Long ones wander."},
		{Type: "li", Text: "Prefer active voice."},
		{Type: "li", Text: "Cut filler words."},
		{Type: "blockquote", Text: "Omit needless words."},
	}
	if len(doc.Blocks) != len(want) {
		t.Fatalf("len(Blocks) = %d, want %d: %+v", len(doc.Blocks), len(want), doc.Blocks)
	}
	for i := range want {
		if doc.Blocks[i] != want[i] {
			t.Errorf("Blocks[%d] = %+v, want %+v", i, doc.Blocks[i], want[i])
		}
	}

	text := doc.ToPlainText()
	if strings.Contains(text, "notProse") || strings.Contains(text, "color") {
		t.Errorf("ToPlainText() contains script or style text: %q", text)
	}
	if got := strings.Count(text, "\n") + 1; got != len(want) {
		t.Errorf("ToPlainText() has %d lines, want %d", got, len(want))
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"a\n\n\n  b", "a b"},
		{"tab\tseparated   words", "tab separated words"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectAndParseKind(t *testing.T) {
	detect := map[string]Kind{
		"https://example.com/post": KindURL,
		"HTTP://EXAMPLE.COM":       KindURL,
		"page.html":                KindHTML,
		"notes/Page.HTM":           KindHTML,
		"notes.md":                 KindText,
		"-":                        KindText,
	}
	for ref, want := range detect {
		if got := Detect(ref); got != want {
			t.Errorf("Detect(%q) = %q, want %q", ref, got, want)
		}
	}

	if k, err := ParseKind(""); err != nil || k != KindAuto {
		t.Errorf("ParseKind(\"\") = %q, %v; want auto", k, err)
	}
	if k, err := ParseKind("HTML"); err != nil || k != KindHTML {
		t.Errorf("ParseKind(HTML) = %q, %v; want html", k, err)
	}
	if _, err := ParseKind("pdf"); err == nil {
		t.Error("ParseKind(pdf) error = nil, want error")
	}
}

func TestLoaderText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(path, []byte("  Raw text.\n\nKept as is.  "), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(storage.New(), nil)
	doc, err := l.Load(context.Background(), path, KindAuto)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.ToPlainText() != "  Raw text.\n\nKept as is.  " {
		t.Errorf("ToPlainText() = %q, want the file verbatim", doc.ToPlainText())
	}

	stdin := NewLoader(&storage.Storage{Stdin: strings.NewReader("piped")}, nil)
	doc, err = stdin.Load(context.Background(), "-", KindText)
	if err != nil {
		t.Fatalf("Load(-) error = %v", err)
	}
	if doc.Source != "stdin" || doc.ToPlainText() != "piped" {
		t.Errorf("Load(-) = %+v", doc)
	}
}

func TestLoaderURL(t *testing.T) {
	var paragraphs strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&paragraphs, "<p>Paragraph %d of the article body talks at length about writing, editing and revising prose so that readers stay engaged.</p>\n", i)
	}
	page := `<html><head><title>Article</title></head><body><article><h1>Article</h1>` +
		paragraphs.String() + `</article></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/post" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	l := NewLoader(storage.New(), NewFetcher(5*time.Second))

	doc, err := l.Load(context.Background(), srv.URL+"/post", KindAuto)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.Contains(doc.ToPlainText(), "Paragraph 3 of the article body") {
		t.Errorf("ToPlainText() = %q, want article paragraphs", doc.ToPlainText())
	}

	if _, err := l.Load(context.Background(), srv.URL+"/missing", KindURL); err == nil {
		t.Error("Load() of a 404 page error = nil, want error")
	}
}

func TestLoaderURLWithoutFetcher(t *testing.T) {
	l := NewLoader(storage.New(), nil)
	if _, err := l.Load(context.Background(), "https://example.com", KindAuto); err == nil {
		t.Error("Load() error = nil, want error without fetcher")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://Example.COM/Post", "https://example.com/Post"},
		{"https://example.com/p?b=2&a=1", "https://example.com/p?a=1&b=2"},
		{"https://example.com/p#section", "https://example.com/p"},
	}
	for _, tt := range tests {
		got, err := normalizeURL(tt.in)
		if err != nil {
			t.Fatalf("normalizeURL(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("normalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetcherCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, "<p>cached page</p>")
	}))
	defer srv.Close()

	cache, err := caching.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	f := NewFetcher(5*time.Second).WithCache(cache, nil)

	for i := 0; i < 3; i++ {
		got, err := f.GetHTML(context.Background(), srv.URL+"/page?b=1&a=2#top")
		if err != nil {
			t.Fatalf("GetHTML() error = %v", err)
		}
		if got != "<p>cached page</p>" {
			t.Errorf("GetHTML() = %q", got)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}
