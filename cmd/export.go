package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xolan/sip/internal/cli"
	"github.com/xolan/sip/internal/cli/handlers"
	"github.com/xolan/sip/internal/export"
	"github.com/xolan/sip/internal/filter"
	"github.com/xolan/sip/internal/service"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export drinks to various formats",
	Long: `Export drinks to CSV, JSON or an Excel workbook.

Examples:
  sip export csv > drinks.csv
  sip export json --last 30
  sip export xlsx --from 2026-01-01 -o drinks.xlsx
  sip export csv --category Beer --category Cider`,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	for _, format := range []string{export.FormatCSV, export.FormatJSON, export.FormatXLSX} {
		exportCmd.AddCommand(newExportFormatCmd(format))
	}
}

// newExportFormatCmd builds the subcommand for one export format
func newExportFormatCmd(format string) *cobra.Command {
	c := &cobra.Command{
		Use:   format,
		Short: "Export drinks as " + format,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fromStr, _ := cmd.Flags().GetString("from")
			toStr, _ := cmd.Flags().GetString("to")
			lastDays, _ := cmd.Flags().GetInt("last")
			output, _ := cmd.Flags().GetString("output")
			runExport(format, fromStr, toStr, lastDays, output, filterFromFlags(cmd))
		},
	}
	addRangeFlags(c)
	c.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	return c
}

// runExport handles the export command logic
func runExport(format, fromStr, toStr string, lastDays int, output string, f *filter.Filter) {
	d, ok := handlerDeps()
	if !ok {
		return
	}

	var spec *service.DateRangeSpec
	criteria := map[string]any{}
	if fromStr != "" || toStr != "" || lastDays != 0 {
		s, ok := parseRangeFlags(d.Services, fromStr, toStr, lastDays)
		if !ok {
			return
		}
		spec = &s
		if fromStr != "" {
			criteria["from"] = fromStr
		}
		if toStr != "" {
			criteria["to"] = toStr
		}
		if lastDays > 0 {
			criteria["last_days"] = lastDays
		}
	}
	if f != nil {
		if len(f.Categories) > 0 {
			criteria["categories"] = f.Categories
		}
		if f.Keyword != "" {
			criteria["search"] = f.Keyword
		}
		if f.Origin == filter.CustomOnly {
			criteria["custom_only"] = true
		}
	}

	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			d.Fail("Failed to create output file", err, "Check that the directory exists and is writable")
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				cli.Fail(d.Stderr, "Failed to close output file", err, "")
			}
		}()
		d.Stdout = file
	}

	handlers.Export(d, format, spec, criteria, f)
}
