package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/stdmirror/core"
)

// Output format names.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// ErrNoContent is returned by renderers that cannot work on empty Markdown.
var ErrNoContent = errors.New("no content to render")

// Options carries renderer-specific settings.
type Options struct {
	// PDFFont is a UTF-8 TrueType font file used by the PDF renderer.
	PDFFont string
}

// New returns the renderer for format.
func New(format string, opts Options) (core.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatMarkdown, "md":
		return NewMarkdownRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(opts.PDFFont), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatMarkdown, FormatJSON, FormatPDF)
	}
}
