package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
)

var flagCatalogYAML bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the standards that fetch would mirror",
	Long: `Catalog prints every section of the active catalog with its standards and
URLs. With --yaml it prints the catalog in the format accepted by --catalog,
which is a convenient starting point for a partial mirror.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&flagCatalogYAML, "yaml", false, "print the catalog as YAML")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flagCatalogYAML {
		data, err := cat.Marshal()
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, s := range cat.Sections {
		fmt.Fprintf(tw, "%s (%d)\n", s.Title, len(s.Standards))
		for _, id := range s.Standards {
			fmt.Fprintf(tw, "  %d\t%s\n", id, catalog.StandardURL(cfg.BaseURL, id))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTotal: %d standards in %d sections\n", len(cat.IDs()), len(cat.Sections))
	return nil
}

