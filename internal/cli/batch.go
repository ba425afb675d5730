package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
	"github.com/rshade/coolroof/internal/report"
)

// BatchParams holds the parameters of the batch command. Exported for testing.
type BatchParams struct {
	Input  string
	Output string
	Out    string
}

// NewBatchCmd creates the "batch" command.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute every scenario of an XLSX workbook",
		Long: `Read scenarios from the first sheet of an XLSX workbook and compute each.

The first row is a header. area_m2 is required; name, roof_type,
roof_insulation, wall_insulation, eer (number or band), energy_price and
emission_factor are optional and default to the configuration. Invalid rows
are skipped with a warning.`,
		Example: `  coolroof batch --input scenarios.xlsx
  coolroof batch --input scenarios.xlsx --output csv > results.csv
  coolroof batch --input scenarios.xlsx --out results.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBatch(cmd, &params)
		},
	}

	cmd.Flags().StringVarP(&params.Input, "input", "i", "", "scenario workbook (.xlsx)")
	cmd.Flags().StringVar(&params.Output, "output", config.GetDefaultOutputFormat(),
		"output format (table, json, ndjson, csv)")
	cmd.Flags().StringVarP(&params.Out, "out", "o", "", "also write the results to an XLSX workbook")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeBatch(cmd *cobra.Command, params *BatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if !config.IsValidFormat(params.Output) {
		return fmt.Errorf("unsupported output format %q (table, json, ndjson, csv)", params.Output)
	}

	cfg := config.GetGlobalConfig()
	defaults, err := cfg.Defaults.Calculator()
	if err != nil {
		return fmt.Errorf("invalid configuration defaults: %w", err)
	}

	f, err := os.Open(params.Input)
	if err != nil {
		return fmt.Errorf("opening scenarios: %w", err)
	}
	defer f.Close()

	imported, err := report.ReadScenarios(f, defaults)
	if err != nil {
		return fmt.Errorf("reading %s: %w", params.Input, err)
	}
	for _, skipped := range imported.Skipped {
		log.Warn().Ctx(ctx).
			Str("operation", "batch").
			Int("row", skipped.Row).
			Err(skipped.Err).
			Msg("skipping scenario row")
		cmd.PrintErrf("Warning: %s: skipped %v\n", imported.Sheet, skipped)
	}
	if len(imported.Scenarios) == 0 {
		return fmt.Errorf("%w: %s", errNoScenarios, params.Input)
	}

	unitCost := cfg.Defaults.UnitCost
	reports := make([]*report.Report, 0, len(imported.Scenarios))
	for _, sc := range imported.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("row %d", sc.Row)
		}
		r, rErr := report.New(sc.Config, report.Options{
			Name:     name,
			Currency: cfg.Defaults.Currency,
			UnitCost: &unitCost,
			Charts:   chartSettings(cfg),
		})
		if rErr != nil {
			return fmt.Errorf("scenario %q: %w", name, rErr)
		}
		reports = append(reports, r)
	}

	if err = report.RenderMany(cmd.OutOrStdout(), params.Output, reports); err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}
	if params.Out != "" {
		if err = writeFile(params.Out, func(w io.Writer) error { return report.WriteXLSX(w, reports) }); err != nil {
			return fmt.Errorf("writing %s: %w", params.Out, err)
		}
		cmd.PrintErrf("Wrote %d scenarios to %s\n", len(reports), params.Out)
	}

	log.Info().Ctx(ctx).
		Str("operation", "batch").
		Int("scenarios", len(reports)).
		Int("skipped", len(imported.Skipped)).
		Dur("duration_ms", time.Since(start)).
		Msg("batch complete")
	return nil
}
