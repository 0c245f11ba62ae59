// Package index builds lookup.json, the table of contents the standards
// lookup server reads instead of going to the network. Every mirrored
// std-<id>.md becomes one entry with its title, a short summary, the
// canonical URL and the local file name.
package index

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
	"github.com/gaurav-prasanna/stdmirror/core/markdown"
	"github.com/gaurav-prasanna/stdmirror/core/output"
)

// FileName is the conventional name of the index inside the content directory.
const FileName = "lookup.json"

// MaxSummary caps the summary length in characters.
const MaxSummary = 280

// ErrNoStandards is returned when the directory holds no mirrored standards.
var ErrNoStandards = errors.New("no mirrored standards found")

// Entry describes one section of the lookup table. IDs are strings because
// hand-written entries use slugs such as "doc-comment".
type Entry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	LocalFile string `json:"localFile,omitempty"`
	Section   string `json:"section,omitempty"`
}

// Lookup is the on-disk shape of lookup.json. Diagnostics are curated by
// hand and carried through untouched.
type Lookup struct {
	Sections    []Entry           `json:"sections"`
	Diagnostics []json.RawMessage `json:"diagnostics"`
}

// Build outlines every std-<id>.md in dir. Entries come back sorted by id.
func Build(dir string, cat *catalog.Catalog, urlTemplate string) (*Lookup, error) {
	matches, err := filepath.Glob(filepath.Join(dir, output.FilePrefix+"*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	type file struct {
		id   int
		path string
	}
	var files []file
	for _, m := range matches {
		base := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(m), output.FilePrefix), ".md")
		id, err := strconv.Atoi(base)
		if err != nil || id <= 0 {
			continue
		}
		files = append(files, file{id: id, path: m})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoStandards)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].id < files[j].id })

	l := &Lookup{Sections: make([]Entry, 0, len(files))}
	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.path, err)
		}
		l.Sections = append(l.Sections, entryFor(f.id, string(data), cat, urlTemplate))
	}
	return l, nil
}

func entryFor(id int, md string, cat *catalog.Catalog, urlTemplate string) Entry {
	o := markdown.Parse(md)

	e := Entry{
		ID:        strconv.Itoa(id),
		Title:     o.Title,
		Summary:   truncate(o.Summary, MaxSummary),
		URL:       catalog.StandardURL(urlTemplate, id),
		LocalFile: output.FileName(id, ".md"),
	}
	if e.Title == "" {
		e.Title = "Standard " + e.ID
	}
	if e.Summary == "" && len(o.Sections) > 0 {
		e.Summary = truncate(strings.Join(strings.Fields(o.Sections[0].Text), " "), MaxSummary)
	}
	if cat != nil {
		if s, ok := cat.SectionOf(id); ok {
			e.Section = s.Title
		}
	}
	return e
}

// truncate cuts s to at most max characters, backing off to a word boundary.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// Read loads an existing lookup.json.
func Read(path string) (*Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var l Lookup
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &l, nil
}

// Merge keeps what prev holds that l does not generate: hand-written
// entries and diagnostics. Generated entries win on id clashes; kept
// entries follow them in their previous order.
func (l *Lookup) Merge(prev *Lookup) {
	if prev == nil {
		return
	}
	have := make(map[string]bool, len(l.Sections))
	for _, e := range l.Sections {
		have[e.ID] = true
	}
	for _, e := range prev.Sections {
		if !have[e.ID] {
			l.Sections = append(l.Sections, e)
		}
	}
	if len(l.Diagnostics) == 0 {
		l.Diagnostics = prev.Diagnostics
	}
}

// Marshal encodes l as indented JSON without HTML escaping.
func (l *Lookup) Marshal() ([]byte, error) {
	out := *l
	if out.Sections == nil {
		out.Sections = []Entry{}
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []json.RawMessage{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding lookup: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores l at path via a temporary file in the same directory.
func (l *Lookup) Write(path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".lookup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, errors.Join(writeErr, closeErr))
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
