package convert_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/core/convert"
)

func TestLibraryConverter_Convert(t *testing.T) {
	t.Parallel()

	got := convert.NewLibrary("").Convert(standardPageHTML)

	assert.Contains(t, got, "# Module structure")
	assert.Contains(t, got, "Common modules")
	assert.Contains(t, got, "Procedure Test()")
	assert.NotContains(t, got, "window.track")
	assert.NotContains(t, got, "Copyright")
	assert.NotContains(t, got, "Home")
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		engine  string
		wantErr bool
	}{
		{"default", "", false},
		{"pattern", "pattern", false},
		{"library", "Library", false},
		{"unknown", "dom", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := convert.NewEngine(tt.engine, "bsl")
			if tt.wantErr {
				var engineErr *convert.UnknownEngineError
				require.True(t, errors.As(err, &engineErr))
				assert.Equal(t, tt.engine, engineErr.Name)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestNewEngine_PatternIsDefault(t *testing.T) {
	t.Parallel()

	c, err := convert.NewEngine("", "")
	require.NoError(t, err)
	assert.Equal(t, convert.ToMarkdown("<h2>Title</h2>"), c.Convert("<h2>Title</h2>"))
}

func TestLibraryConverter_MatchesPatternEngine(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<body><h1>Top</h1></body>`,
		`<body><h2>Title</h2></body>`,
		`<body><h3 class="x">Sub</h3></body>`,
		`<body><h6>Six</h6></body>`,
		`<pre><code class="bsl"><b>bold</b> &amp; &quot;quotes&quot;</code></pre>`,
		`<pre><b>bold</b> & "quotes"</pre>`,
		"<pre>If A &lt; B Then\n    B();\nEndIf;</pre>",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, convert.ToMarkdown(in), convert.NewLibrary("").Convert(in))
		})
	}
}

func TestLibraryConverter_CodeLanguage(t *testing.T) {
	t.Parallel()

	got := convert.NewLibrary("go").Convert("<pre><code>x := 1</code></pre>")
	assert.Equal(t, "```go\nx := 1\n```", got)
}
