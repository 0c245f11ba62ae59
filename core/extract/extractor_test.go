package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/core/extract"
)

const pageHTML = `<!DOCTYPE html>
<html lang="ru-RU">
<head>
  <title>  Module
    structure </title>
  <meta property="og:title" content="OG title">
</head>
<body>
  <nav>Navigation</nav>
  <article><h1>Heading</h1><p>Article text.</p><script>track()</script></article>
  <footer>Footer</footer>
</body>
</html>`

func TestExtract_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		html        string
		contains    string
		notContains string
	}{
		{"article", pageHTML, "Article text.", "Navigation"},
		{"main", `<body><nav>Menu</nav><main><p>Main text</p></main></body>`, "Main text", "Menu"},
		{"content div", `<body><div class="sidebar">Menu</div><div class="std-content">Standard</div></body>`, "Standard", "Menu"},
		{"content div any case", `<body><div class="sidebar">Menu</div><div class="Page-Content">Standard</div></body>`, "Standard", "Menu"},
		{"body", `<body><p>Body only</p><style>.x{}</style></body>`, "Body only", ".x{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extract.New().Extract(tt.html)
			require.NoError(t, err)
			assert.Contains(t, got, tt.contains)
			assert.NotContains(t, got, tt.notContains)
		})
	}
}

func TestExtract_RemovesScripts(t *testing.T) {
	t.Parallel()

	got, err := extract.New().Extract(pageHTML)
	require.NoError(t, err)
	assert.NotContains(t, got, "track()")
}

func TestReadMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		html      string
		wantTitle string
		wantLang  string
	}{
		{"title tag", pageHTML, "Module structure", "ru-RU"},
		{"og title", `<html><head><meta property="og:title" content="OG title"></head><body></body></html>`, "OG title", "ru"},
		{"h1 fallback", `<html lang="en"><body><h1>First heading</h1></body></html>`, "First heading", "en"},
		{"empty", ``, "", "ru"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := extract.ReadMetadata(tt.html)
			assert.Equal(t, tt.wantTitle, meta.Title)
			assert.Equal(t, tt.wantLang, meta.Language)
		})
	}
}
