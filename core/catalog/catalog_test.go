package catalog_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
)

func TestDefault_IDs(t *testing.T) {
	ids := catalog.Default().IDs()

	require.Len(t, ids, 154)
	assert.True(t, sort.IntsAreSorted(ids))
	assert.Equal(t, 401, ids[0])
	assert.Equal(t, 798, ids[len(ids)-1])
	assert.Contains(t, ids, 453)
}

func TestDefault_IsACopy(t *testing.T) {
	c := catalog.Default()
	c.Sections[0].Standards[0] = 1

	assert.Equal(t, 453, catalog.Default().Sections[0].Standards[0])
}

func TestSectionOf(t *testing.T) {
	c := catalog.Default()

	s, ok := c.SectionOf(456)
	require.True(t, ok)
	assert.Equal(t, 32, s.ID)
	assert.Equal(t, "Module formatting", s.Title)

	_, ok = c.SectionOf(1)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantIDs []int
		wantErr string
	}{
		{
			name: "sorted and de-duplicated",
			yaml: `
sections:
  - id: 32
    title: Module formatting
    standards: [456, 455]
  - id: 33
    title: Constructs
    standards: [455, 441]
`,
			wantIDs: []int{441, 455, 456},
		},
		{
			name:    "empty catalog",
			yaml:    "sections: []\n",
			wantErr: "no standards",
		},
		{
			name: "negative id",
			yaml: `
sections:
  - id: 1
    title: Broken
    standards: [-3]
`,
			wantErr: "invalid standard id -3",
		},
		{
			name:    "malformed yaml",
			yaml:    "sections: [",
			wantErr: "parsing YAML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, c.IDs())
		})
	}
}

func TestLoad_RoundTripsDefault(t *testing.T) {
	data, err := catalog.Default().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().IDs(), c.IDs())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr bool
	}{
		{"keeps order", []string{"641", "453"}, []int{641, 453}, false},
		{"trims spaces", []string{" 788 "}, []int{788}, false},
		{"empty", nil, []int{}, false},
		{"not a number", []string{"453", "abc"}, nil, true},
		{"zero", []string{"0"}, nil, true},
		{"negative", []string{"-5"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParseIDs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStandardURL(t *testing.T) {
	assert.Equal(t, "https://v8std.ru/std/453/", catalog.StandardURL("", 453))
	assert.Equal(t, "http://localhost/std/7", catalog.StandardURL("http://localhost/std/%d", 7))
}
