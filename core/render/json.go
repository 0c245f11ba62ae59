// JSON renderer. Builds structured JSON from the converted Markdown and page metadata,
// using the goldmark outline for headings, sections and code blocks.

package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/stdmirror/core"
	"github.com/gaurav-prasanna/stdmirror/core/markdown"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the JSON page document.
func (r *JSONRenderer) Render(md string, meta core.PageMetadata) ([]byte, error) {
	outline := markdown.Parse(md)
	if meta.Title == "" {
		meta.Title = outline.Title
	}

	page := core.PageJSON{
		Metadata: meta,
		Content: core.PageContent{
			Text:     stripMarkdown(md),
			Markdown: md,
			Sections: outline.Sections,
		},
		Structure: core.PageStructure{
			Headings:      outline.Headings,
			CodeBlocks:    outline.CodeBlocks,
			CodeLanguages: outline.CodeLanguages,
			Lists:         outline.ListItems,
		},
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

var (
	headingMarkRe = regexp.MustCompile(`(?m)^#{1,7}\s+`)
	listMarkRe    = regexp.MustCompile(`(?m)^\s*- `)
	fenceRe       = regexp.MustCompile("(?m)^```.*$\n?")
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes the Markdown the converter emits to produce plain text.
func stripMarkdown(md string) string {
	text := headingMarkRe.ReplaceAllString(md, "")
	text = listMarkRe.ReplaceAllString(text, "")
	text = fenceRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
