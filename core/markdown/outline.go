// Package markdown reads the structure back out of converted Markdown.
// It walks goldmark's AST rather than matching lines, so "#Region" lines
// inside fenced BSL code are never mistaken for headings.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/stdmirror/core"
)

// Outline is the structural summary of one Markdown document.
type Outline struct {
	// Title is the text of the first heading.
	Title string
	// Summary is the text of the first top-level paragraph.
	Summary       string
	Headings      []core.Heading
	Sections      []core.Section
	CodeBlocks    int
	CodeLanguages []string
	ListItems     int
}

type headingSpan struct {
	heading   core.Heading
	lineStart int
	lineEnd   int
}

// Parse builds the outline of md.
func Parse(md string) Outline {
	src := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		out   Outline
		spans []headingSpan
		langs = map[string]bool{}
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			h := core.Heading{Level: node.Level, Text: linesText(node, src)}
			out.Headings = append(out.Headings, h)
			seg := node.Lines().At(0)
			spans = append(spans, headingSpan{
				heading:   h,
				lineStart: bytes.LastIndexByte(src[:seg.Start], '\n') + 1,
				lineEnd:   lineEnd(src, seg.Stop),
			})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if out.Summary == "" && node.Parent() != nil && node.Parent().Kind() == ast.KindDocument {
				out.Summary = linesText(node, src)
			}
		case *ast.FencedCodeBlock:
			out.CodeBlocks++
			if lang := string(node.Language(src)); lang != "" && !langs[lang] {
				langs[lang] = true
				out.CodeLanguages = append(out.CodeLanguages, lang)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			out.CodeBlocks++
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			out.ListItems++
		}
		return ast.WalkContinue, nil
	})

	if len(out.Headings) > 0 {
		out.Title = out.Headings[0].Text
	}
	out.Sections = buildSections(src, spans)
	return out
}

// buildSections cuts the source between consecutive headings.
func buildSections(src []byte, spans []headingSpan) []core.Section {
	if len(spans) == 0 {
		return nil
	}
	sections := make([]core.Section, 0, len(spans))
	for i, sp := range spans {
		end := len(src)
		if i+1 < len(spans) {
			end = spans[i+1].lineStart
		}
		body := ""
		if sp.lineEnd < end {
			body = strings.TrimSpace(string(src[sp.lineEnd:end]))
		}
		sections = append(sections, core.Section{
			Heading: sp.heading.Text,
			Level:   sp.heading.Level,
			Text:    body,
		})
	}
	return sections
}

// linesText joins a block's raw lines into one space-separated string.
func linesText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
		b.WriteByte(' ')
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func lineEnd(src []byte, from int) int {
	if i := bytes.IndexByte(src[from:], '\n'); i >= 0 {
		return from + i + 1
	}
	return len(src)
}
