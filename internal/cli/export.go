package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
	"github.com/rshade/coolroof/internal/report"
)

// Export formats.
const (
	exportFormatCSV  = "csv"
	exportFormatXLSX = "xlsx"
	exportFormatPDF  = "pdf"
)

// ExportParams holds the parameters of the export command. Exported for testing.
type ExportParams struct {
	CalculatorParams

	Format string
	Out    string
}

// ValidateExportFlags checks the format and destination. Binary formats need
// a file. Exported for testing.
func ValidateExportFlags(params *ExportParams) error {
	switch params.Format {
	case exportFormatCSV:
		return nil
	case exportFormatXLSX, exportFormatPDF:
		if params.Out == "" || params.Out == "-" {
			return fmt.Errorf("--out FILE is required for %s export", params.Format)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (csv, xlsx, pdf)", params.Format)
	}
}

// NewExportCmd creates the "export" command.
func NewExportCmd() *cobra.Command {
	var params ExportParams

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the savings summary as CSV, XLSX or PDF",
		Long: `Export the computed summary of one configuration. CSV writes the flat
summary record (to stdout unless --out is given); XLSX adds the 20-year series
with a chart and the equivalents; PDF is a printable one-page report.`,
		Example: `  coolroof export --format csv > summary.csv
  coolroof export --format xlsx --out savings.xlsx --area 2400
  coolroof export --format pdf --out savings.pdf --name "Warehouse B"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeExport(cmd, &params)
		},
	}

	bindCalculatorFlags(cmd.Flags(), &params.CalculatorParams)
	cmd.Flags().StringVar(&params.Format, "format", exportFormatCSV, "export format (csv, xlsx, pdf)")
	cmd.Flags().StringVarP(&params.Out, "out", "o", "", "output file (csv defaults to stdout)")

	return cmd
}

func executeExport(cmd *cobra.Command, params *ExportParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := ValidateExportFlags(params); err != nil {
		return err
	}

	r, err := buildReport(cmd.Flags(), &params.CalculatorParams, config.GetGlobalConfig(), true)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	write := func(w io.Writer) error {
		switch params.Format {
		case exportFormatXLSX:
			return report.WriteXLSX(w, []*report.Report{r})
		case exportFormatPDF:
			return report.WritePDF(w, r)
		default:
			return report.WriteCSV(w, []*report.Report{r})
		}
	}

	if params.Out == "" || params.Out == "-" {
		return write(cmd.OutOrStdout())
	}
	if err = writeFile(params.Out, write); err != nil {
		return fmt.Errorf("exporting %s: %w", params.Format, err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "export").
		Str("format", params.Format).
		Str("path", params.Out).
		Str("report_id", r.ID).
		Msg("report exported")
	cmd.Printf("Exported %s report to %s\n", params.Format, params.Out)
	return nil
}

// writeFile creates path and streams write into it, removing the file if
// writing fails.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return errors.Join(err, os.Remove(path))
	}
	return f.Close()
}
