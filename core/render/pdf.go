// PDF renderer. Converts Markdown into a PDF using gofpdf. Handles headings (sized by
// level), paragraphs, list items and fenced code blocks.
//
// The built-in PDF fonts only cover cp1252. Cyrillic standards need a UTF-8
// TrueType font passed through NewPDFRenderer.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/stdmirror/core"
)

const utf8Family = "stdmirror"

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a PDFRenderer. fontPath may be empty.
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// pdfWriter bundles the document with its font choices.
type pdfWriter struct {
	pdf      *gofpdf.Fpdf
	text     string
	code     string
	hasBold  bool
	translit func(string) string
}

func (r *PDFRenderer) newWriter() *pdfWriter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	w := &pdfWriter{pdf: pdf, text: "Helvetica", code: "Courier", hasBold: true}
	if r.fontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", r.fontPath)
		w.text, w.code, w.hasBold = utf8Family, utf8Family, false
		w.translit = func(s string) string { return s }
	} else {
		w.translit = pdf.UnicodeTranslatorFromDescriptor("")
	}
	return w
}

func (w *pdfWriter) font(family, style string, size float64) {
	if !w.hasBold {
		style = ""
	}
	w.pdf.SetFont(family, style, size)
}

func (w *pdfWriter) cell(height float64, s string, fill bool) {
	w.pdf.MultiCell(0, height, w.translit(s), "", "L", fill)
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, ErrNoContent
	}

	w := r.newWriter()
	pdf := w.pdf
	pdf.AddPage()

	if meta.Title != "" {
		w.font(w.text, "B", 18)
		w.cell(8, meta.Title, false)
		pdf.Ln(4)
	}

	if meta.URL != "" {
		w.font(w.text, "I", 9)
		pdf.SetTextColor(100, 100, 100)
		w.cell(5, "Source: "+meta.URL, false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	inCodeBlock := false
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			w.font(w.code, "", 9)
			pdf.SetFillColor(245, 245, 245)
			w.cell(4.5, line, true)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			w.heading(strings.TrimSpace(strings.TrimLeft(trimmed, "#")), level)
		case strings.HasPrefix(trimmed, "- "):
			w.font(w.text, "", 10)
			w.cell(5, "• "+strings.TrimSpace(trimmed[2:]), false)
		default:
			w.font(w.text, "", 10)
			w.cell(5, trimmed, false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// heading sets the font size based on heading level and writes text.
func (w *pdfWriter) heading(text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	w.pdf.Ln(4)
	w.font(w.text, "B", size)
	w.cell(size*0.6, text, false)
	w.pdf.Ln(2)
}
