// Package extract isolates the main content of a standards page and reads
// page-level metadata, both through goquery.
//
// The content priority mirrors the pattern converter: <article>, then
// <main>, then a <div> whose class mentions "content", then <body>.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before the content region is chosen.
var noiseSelectors = []string{"script", "style", "noscript"}

// contentSelectors are tried in priority order; the first hit wins. The class
// match ignores case like the pattern converter's region match.
var contentSelectors = []string{"article", "main", `div[class*="content" i]`, "body"}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw HTML and returns the inner HTML of the best content
// container. Documents without any container are returned whole, minus noise.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		content := doc.Find(sel).First()
		if content.Length() == 0 {
			continue
		}
		inner, err := content.Html()
		if err != nil {
			return "", fmt.Errorf("serializing %s: %w", sel, err)
		}
		return inner, nil
	}

	whole, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return whole, nil
}
