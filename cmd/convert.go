// The convert command runs only the conversion stage on a local HTML file
// or stdin, which is handy for checking how a saved page will look once
// mirrored.

package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/stdmirror/core/convert"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

var flagConvertOut string

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert a local HTML page to Markdown",
	Long: `Convert reads HTML from a file (or stdin when the argument is "-" or
missing) and prints the Markdown a fetch would store. Nothing is downloaded.

Examples:
  stdmirror convert saved/453.html
  curl -s https://v8std.ru/std/453/ | stdmirror convert -
  stdmirror convert page.html --engine library -o std-453.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&flagConvertOut, "out", "o", "", "write Markdown to this file instead of stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	src := "-"
	if len(args) == 1 {
		src = args[0]
	}

	html, err := readSource(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}

	converter, err := convert.NewEngine(cfg.Engine, cfg.CodeLanguage)
	if err != nil {
		return err
	}
	md := converter.Convert(html)
	log.Debug("converted", logger.String("source", src), logger.Int("chars", utf8.RuneCountInString(md)))

	if flagConvertOut == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), md)
		return err
	}
	if err := os.WriteFile(flagConvertOut, []byte(md+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagConvertOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", flagConvertOut)
	return nil
}

func readSource(stdin io.Reader, src string) (string, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}
	return string(data), nil
}
