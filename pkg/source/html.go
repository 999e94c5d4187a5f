package source

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/wordcalc/models"
)

// blockSelector lists the tags that carry prose.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,pre"

// ParseHTML extracts text blocks from a whole HTML document.
func ParseHTML(source, html string) (*models.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Script and style text is never prose
	doc.Find("script,style,noscript,template").Remove()

	return &models.Document{
		Source: source,
		Title:  normalizeText(doc.Find("title").First().Text()),
		Blocks: extractBlocks(doc.Selection),
	}, nil
}

// ParseArticle uses go-readability to isolate the main article of a page
// and extracts its text blocks.
func ParseArticle(rawURL, html string) (*models.Document, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article HTML: %w", err)
	}

	blocks := extractBlocks(doc.Selection)
	if len(blocks) == 0 {
		// Some pages keep their text outside block tags
		if text := normalizeText(doc.Text()); text != "" {
			blocks = []models.Block{{Type: "p", Text: text}}
		}
	}

	return &models.Document{
		Source: rawURL,
		Title:  normalizeText(article.Title),
		Blocks: blocks,
	}, nil
}

func extractBlocks(sel *goquery.Selection) []models.Block {
	var blocks []models.Block
	sel.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		// Nested matches (p inside li, p inside blockquote) are taken by the outer block
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}

		tag := goquery.NodeName(s)
		text := normalizeText(s.Text())
		if tag == "pre" {
			text = strings.TrimSpace(s.Text())
		}
		if text == "" {
			return
		}
		blocks = append(blocks, models.Block{Type: tag, Text: text})
	})
	return blocks
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
