package convert

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/marker"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/stdmirror/core"
	"github.com/gaurav-prasanna/stdmirror/core/extract"
)

// Engine names accepted by NewEngine.
const (
	EnginePattern = "pattern"
	EngineLibrary = "library"
)

// LibraryConverter isolates content with goquery and converts it with
// html-to-markdown. Headings and code blocks are rendered the way the
// pattern engine writes them. Any parse or conversion failure falls back to
// the pattern engine, so Convert stays total.
type LibraryConverter struct {
	extractor *extract.HTMLExtractor
	fallback  *Converter
	conv      *converter.Converter
}

// NewLibrary creates a LibraryConverter whose code fences are tagged with lang.
func NewLibrary(lang string) *LibraryConverter {
	c := &LibraryConverter{
		extractor: extract.New(),
		fallback:  New(lang),
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
	for n := 1; n <= 6; n++ {
		c.conv.Register.RendererFor("h"+strconv.Itoa(n), converter.TagTypeBlock, c.renderHeading, converter.PriorityEarly)
	}
	c.conv.Register.RendererFor("pre", converter.TagTypeBlock, c.renderCode, converter.PriorityEarly)
	return c
}

// Convert converts page to Markdown via the DOM-based pipeline.
func (c *LibraryConverter) Convert(page string) string {
	content, err := c.extractor.Extract(page)
	if err != nil {
		return c.fallback.Convert(page)
	}

	markdown, err := c.conv.ConvertString(content)
	if err != nil {
		return c.fallback.Convert(page)
	}
	return strings.TrimSpace(strings.ReplaceAll(markdown, "\u00a0", " "))
}

// renderHeading keeps h1 at "#" and pushes h2..h6 one level deeper.
func (c *LibraryConverter) renderHeading(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	level, _ := strconv.Atoi(strings.TrimPrefix(n.Data, "h"))
	if level > 1 {
		level++
	}

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)
	text := strings.Join(strings.Fields(buf.String()), " ")
	if text == "" {
		return converter.RenderSuccess
	}

	w.WriteString("\n\n")
	w.WriteString(strings.Repeat("#", level))
	w.WriteString(" ")
	w.WriteString(text)
	w.WriteString("\n\n")
	return converter.RenderSuccess
}

// renderCode writes <pre> and <pre><code> as a fence tagged with the
// configured language. Markup inside the block is dropped.
func (c *LibraryConverter) renderCode(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	block := c.fallback.fence(tidyCode(goquery.NewDocumentFromNode(n).Text()))
	// Newlines are masked so the converter's blank-line collapsing skips the body.
	block = strings.ReplaceAll(block, "\n", string(marker.MarkerCodeBlockNewline))

	w.WriteString("\n\n")
	w.WriteString(block)
	w.WriteString("\n\n")
	return converter.RenderSuccess
}

// NewEngine returns the converter registered under name.
func NewEngine(name, lang string) (core.Converter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EnginePattern:
		return New(lang), nil
	case EngineLibrary:
		return NewLibrary(lang), nil
	default:
		return nil, &UnknownEngineError{Name: name}
	}
}

// UnknownEngineError reports an engine name NewEngine does not know.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown conversion engine %q (want %s or %s)", e.Name, EnginePattern, EngineLibrary)
}
