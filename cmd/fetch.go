package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
	"github.com/gaurav-prasanna/stdmirror/core/convert"
	"github.com/gaurav-prasanna/stdmirror/core/fetch"
	"github.com/gaurav-prasanna/stdmirror/core/mirror"
	"github.com/gaurav-prasanna/stdmirror/core/output"
	"github.com/gaurav-prasanna/stdmirror/core/render"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [ids...]",
	Short: "Download standards and store them as std-<id>.md",
	Long: `Fetch downloads each standard page, converts it to Markdown and writes it to
the output directory. Without arguments every standard in the catalog is
mirrored in ascending order; explicit ids are processed as given.

Pages whose converted text is shorter than --min_length characters are
skipped. HTTP and network failures are reported per standard and never stop
the run.

Examples:
  stdmirror fetch
  stdmirror fetch 453 641 --output_dir ./content
  stdmirror fetch 456 --format json`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	f := fetchCmd.Flags()
	f.Duration("timeout", 0, "per-request timeout (default 15s)")
	f.Int("min_length", mirror.DefaultMinLength, "skip standards shorter than this many characters")
	f.String("format", "", "output format: markdown, json or pdf (default markdown)")
	f.String("pdf_font", "", "UTF-8 TrueType font for PDF output (needed for Cyrillic)")

	bindFlag("timeout", f.Lookup("timeout"))
	bindFlag("min_length", f.Lookup("min_length"))
	bindFlag("format", f.Lookup("format"))
	bindFlag("pdf_font", f.Lookup("pdf_font"))
}

func runFetch(cmd *cobra.Command, args []string) error {
	ids, cat, err := resolveIDs(args)
	if err != nil {
		return err
	}

	converter, err := convert.NewEngine(cfg.Engine, cfg.CodeLanguage)
	if err != nil {
		return err
	}
	renderer, err := render.New(cfg.Format, render.Options{PDFFont: cfg.PDFFont})
	if err != nil {
		return err
	}
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	m, err := mirror.New(mirror.Config{
		Fetcher:     fetch.New(fetch.Config{Timeout: cfg.Timeout, UserAgent: cfg.UserAgent}),
		Converter:   converter,
		Renderer:    renderer,
		Writer:      writer,
		Catalog:     cat,
		URLTemplate: cfg.BaseURL,
		MinLength:   cfg.MinLength,
		Out:         cmd.OutOrStdout(),
		Logger:      log,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mirroring %d standards into %s\n", len(ids), writer.OutputDir)
	log.Info("fetch started", logger.Int("count", len(ids)), logger.String("output_dir", writer.OutputDir))

	result := m.Run(cmd.Context(), ids)
	if result.HasFailures() {
		log.Warn("some standards failed", logger.Int("failed", result.Failed), logger.Int("total", result.Total()))
	}
	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("fetch interrupted: %w", err)
	}
	return nil
}

// resolveIDs returns the explicit ids in argument order, or the whole
// catalog sorted when none are given.
func resolveIDs(args []string) ([]int, *catalog.Catalog, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 0 {
		return cat.IDs(), cat, nil
	}
	ids, err := catalog.ParseIDs(args)
	if err != nil {
		return nil, nil, err
	}
	return ids, cat, nil
}
