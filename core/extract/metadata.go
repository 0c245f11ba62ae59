package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// defaultLanguage is reported when the page does not declare one.
const defaultLanguage = "ru"

// Metadata is what stdmirror keeps about a page besides its Markdown.
type Metadata struct {
	Title    string
	Language string
}

// ReadMetadata pulls the page title and declared language from raw HTML.
// The title prefers <title>, then og:title, then the first <h1>.
// Unparseable input yields empty metadata rather than an error.
func ReadMetadata(html string) Metadata {
	meta := Metadata{Language: defaultLanguage}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	meta.Title = pageTitle(doc)
	if lang, ok := doc.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		meta.Language = strings.TrimSpace(lang)
	}
	return meta
}

func pageTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if og, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return collapse(doc.Find("h1").First().Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
