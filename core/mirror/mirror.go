// Package mirror runs the per-standard pipeline: fetch, convert, check
// length, render and write. Each identifier is processed on its own; no
// failure stops the run and nothing is retried.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/gaurav-prasanna/stdmirror/core"
	"github.com/gaurav-prasanna/stdmirror/core/catalog"
	"github.com/gaurav-prasanna/stdmirror/core/extract"
	"github.com/gaurav-prasanna/stdmirror/core/fetch"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

// DefaultMinLength is the shortest conversion worth keeping, in characters.
const DefaultMinLength = 200

// Writer persists one rendered standard.
type Writer interface {
	Write(id int, data []byte, ext string) (string, error)
}

// Config wires a Mirror to its collaborators.
type Config struct {
	Fetcher   core.Fetcher
	Converter core.Converter
	Renderer  core.Renderer
	Writer    Writer

	// Catalog is only consulted for section names in page metadata.
	Catalog *catalog.Catalog
	// URLTemplate addresses a standard; %d is replaced by its identifier.
	URLTemplate string
	// MinLength is the skip threshold, counted in characters.
	MinLength int

	Out    io.Writer
	Logger logger.Logger
	Now    func() time.Time
}

// Status is the outcome class of one identifier.
type Status int

const (
	StatusWritten Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Outcome records what happened to one identifier.
type Outcome struct {
	ID     int
	Status Status
	Path   string
	Chars  int
	Err    error
}

// Result summarizes a run.
type Result struct {
	Written  int
	Skipped  int
	Failed   int
	Outcomes []Outcome
}

// Total returns the number of identifiers processed.
func (r Result) Total() int {
	return r.Written + r.Skipped + r.Failed
}

// HasFailures reports whether any identifier failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Mirror processes identifiers sequentially.
type Mirror struct {
	cfg Config
}

// New validates cfg and fills defaults.
func New(cfg Config) (*Mirror, error) {
	switch {
	case cfg.Fetcher == nil:
		return nil, errors.New("mirror: fetcher is required")
	case cfg.Converter == nil:
		return nil, errors.New("mirror: converter is required")
	case cfg.Renderer == nil:
		return nil, errors.New("mirror: renderer is required")
	case cfg.Writer == nil:
		return nil, errors.New("mirror: writer is required")
	}
	if cfg.URLTemplate == "" {
		cfg.URLTemplate = catalog.DefaultURLTemplate
	}
	if cfg.MinLength < 0 {
		cfg.MinLength = 0
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Mirror{cfg: cfg}, nil
}

// Run processes ids in order, printing one status line per identifier and
// a summary. A cancelled context stops the run before the next identifier.
func (m *Mirror) Run(ctx context.Context, ids []int) Result {
	var result Result
	log := m.cfg.Logger

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", logger.Int("remaining", len(ids)-i), logger.Error(err))
			break
		}

		fmt.Fprintf(m.cfg.Out, "[%d/%d] std/%d ", i+1, len(ids), id)
		out := m.Process(ctx, id)
		result.Outcomes = append(result.Outcomes, out)

		switch out.Status {
		case StatusWritten:
			result.Written++
			fmt.Fprintf(m.cfg.Out, "✓ %s (%d chars)\n", filepath.Base(out.Path), out.Chars)
			log.Debug("standard written", logger.Int("id", id), logger.String("path", out.Path), logger.Int("chars", out.Chars))
		case StatusSkipped:
			result.Skipped++
			fmt.Fprintf(m.cfg.Out, "- skip (short: %d < %d chars)\n", out.Chars, m.cfg.MinLength)
			log.Info("standard skipped", logger.Int("id", id), logger.Int("chars", out.Chars))
		case StatusFailed:
			result.Failed++
			fmt.Fprintf(m.cfg.Out, "✗ %s\n", describe(out.Err))
			log.Warn("standard failed", logger.Int("id", id), logger.Error(out.Err))
		}
	}

	fmt.Fprintf(m.cfg.Out, "\nDone: %d written, %d skipped, %d failed (total: %d)\n",
		result.Written, result.Skipped, result.Failed, result.Total())
	return result
}

// Process runs the pipeline for a single identifier. Panics in any stage
// are turned into a failed outcome.
func (m *Mirror) Process(ctx context.Context, id int) (out Outcome) {
	out.ID = id
	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	fail := func(err error) Outcome {
		out.Status = StatusFailed
		out.Err = err
		return out
	}

	url := catalog.StandardURL(m.cfg.URLTemplate, id)
	res, err := m.cfg.Fetcher.Fetch(ctx, url)
	if err != nil {
		return fail(fmt.Errorf("fetch: %w", err))
	}

	md := m.cfg.Converter.Convert(res.HTML)
	out.Chars = utf8.RuneCountInString(md)
	if out.Chars < m.cfg.MinLength {
		out.Status = StatusSkipped
		return out
	}

	data, err := m.cfg.Renderer.Render(md, m.metadata(id, url, res.HTML))
	if err != nil {
		return fail(fmt.Errorf("render: %w", err))
	}

	path, err := m.cfg.Writer.Write(id, data, m.cfg.Renderer.Extension())
	if err != nil {
		return fail(fmt.Errorf("write: %w", err))
	}

	out.Status = StatusWritten
	out.Path = path
	return out
}

func (m *Mirror) metadata(id int, url, html string) core.PageMetadata {
	page := extract.ReadMetadata(html)
	meta := core.PageMetadata{
		ID:        id,
		URL:       url,
		Title:     page.Title,
		Language:  page.Language,
		FetchedAt: m.cfg.Now().UTC().Format(time.RFC3339),
	}
	if m.cfg.Catalog != nil {
		if s, ok := m.cfg.Catalog.SectionOf(id); ok {
			meta.Section = s.Title
		}
	}
	return meta
}

// describe renders a failure for the console: HTTP errors by status code,
// everything else by message.
func describe(err error) string {
	var statusErr *fetch.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP %d", statusErr.Code)
	}
	return fmt.Sprintf("error: %v", err)
}
