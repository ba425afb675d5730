package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
	"github.com/rshade/coolroof/internal/report"
)

// CalcParams holds the parameters of the calc command. Exported for testing.
type CalcParams struct {
	CalculatorParams

	Output  string
	Payback bool
}

// NewCalcCmd creates the "calc" command: compute the savings of one
// configuration and render them.
func NewCalcCmd() *cobra.Command {
	var params CalcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the savings of one roof configuration",
		Long: `Compute the annual and 20-year savings of the reflective coating for one
roof configuration. Unset flags fall back to the configured defaults.`,
		Example: `  # Defaults from ~/.coolroof/config.yaml
  coolroof calc

  # Bitumen roof with 80 mm PU, high-efficiency AC, CSV summary row
  coolroof calc --roof-type bitumen --roof-insulation pu-80 --eer-band high --output csv

  # Include the payback period
  coolroof calc --payback --unit-cost 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalc(cmd, &params)
		},
	}

	bindCalculatorFlags(cmd.Flags(), &params.CalculatorParams)
	cmd.Flags().StringVar(&params.Output, "output", config.GetDefaultOutputFormat(),
		"output format (table, json, ndjson, csv)")
	cmd.Flags().BoolVar(&params.Payback, "payback", false, "include the payback period (implied by --unit-cost)")

	return cmd
}

func executeCalc(cmd *cobra.Command, params *CalcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if !config.IsValidFormat(params.Output) {
		return fmt.Errorf("unsupported output format %q (table, json, ndjson, csv)", params.Output)
	}

	withPayback := params.Payback || cmd.Flags().Changed("unit-cost")
	r, err := buildReport(cmd.Flags(), &params.CalculatorParams, config.GetGlobalConfig(), withPayback)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("operation", "calc").
		Str("report_id", r.ID).
		Float64("area_m2", r.Configuration.AreaM2).
		Str("roof_type", r.Configuration.RoofType.String()).
		Float64("kwh_per_year", r.Metrics.EnergyKWh).
		Msg("savings computed")

	if err = report.Render(cmd.OutOrStdout(), params.Output, r); err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	log.Info().Ctx(ctx).
		Str("operation", "calc").
		Dur("duration_ms", time.Since(start)).
		Msg("calculation complete")
	return nil
}
