package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/stdmirror/core/index"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

var flagIndexPath string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build lookup.json from the mirrored standards",
	Long: `Index reads every std-<id>.md in the output directory and writes
lookup.json next to them. Hand-written entries and diagnostics already in an
existing lookup.json are kept.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&flagIndexPath, "path", "", "where to write the index (default <output_dir>/lookup.json)")
}

func runIndex(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	l, err := index.Build(cfg.OutputDir, cat, cfg.BaseURL)
	if err != nil {
		return err
	}

	path := flagIndexPath
	if path == "" {
		path = filepath.Join(cfg.OutputDir, index.FileName)
	}

	prev, err := index.Read(path)
	switch {
	case err == nil:
		l.Merge(prev)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return err
	}

	if err := l.Write(path); err != nil {
		return err
	}
	log.Info("index written", logger.String("path", path), logger.Int("entries", len(l.Sections)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%d entries)\n", path, len(l.Sections))
	return nil
}
