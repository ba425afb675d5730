package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/greenops"
	"github.com/rshade/coolroof/internal/logging"
)

// PaybackParams holds the parameters of the payback command. Exported for testing.
type PaybackParams struct {
	CalculatorParams

	Output string
}

// paybackResult is the machine-readable payback output.
type paybackResult struct {
	Currency string             `json:"currency"`
	UnitCost float64            `json:"unit_cost"`
	AreaM2   float64            `json:"area_m2"`
	Payback  calculator.Payback `json:"payback"`
}

// NewPaybackCmd creates the "payback" command.
func NewPaybackCmd() *cobra.Command {
	var params PaybackParams

	cmd := &cobra.Command{
		Use:   "payback",
		Short: "Estimate the simple payback period of the coating",
		Long: `Estimate how many years of cost savings repay the coating investment
(unit cost per m² times roof area). The payback is undefined when there are
no annual cost savings, for example with a zero energy price.`,
		Example: `  coolroof payback --unit-cost 45 --area 1500`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executePayback(cmd, &params)
		},
	}

	bindCalculatorFlags(cmd.Flags(), &params.CalculatorParams)
	cmd.Flags().StringVar(&params.Output, "output", config.FormatTable, "output format (table, json)")

	return cmd
}

func executePayback(cmd *cobra.Command, params *PaybackParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	cfg := config.GetGlobalConfig()
	d, err := ResolveDefaults(cmd.Flags(), &params.CalculatorParams, cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r, err := buildReport(cmd.Flags(), &params.CalculatorParams, cfg, true)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("operation", "payback").
		Float64("capex", r.Payback.Capex).
		Bool("defined", r.Payback.Defined).
		Msg("payback computed")

	res := paybackResult{
		Currency: r.Currency,
		UnitCost: d.UnitCost,
		AreaM2:   r.Configuration.AreaM2,
		Payback:  *r.Payback,
	}
	switch params.Output {
	case config.FormatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.FormatTable, "":
		renderPaybackTable(cmd.OutOrStdout(), res)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (table, json)", params.Output)
	}
}

func renderPaybackTable(w io.Writer, res paybackResult) {
	p := res.Payback
	fmt.Fprintln(w, "Coating Payback")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "Investment:      %s (%g per m² × %s m²)\n",
		greenops.FormatCurrency(p.Capex, res.Currency), res.UnitCost, greenops.FormatFloat(res.AreaM2, 0))
	fmt.Fprintf(w, "Annual savings:  %s\n", greenops.FormatCurrency(p.AnnualCost, res.Currency))
	if !p.Defined {
		fmt.Fprintln(w, "Payback:         undefined (no annual cost savings)")
		return
	}
	fmt.Fprintf(w, "Payback:         %s\n", p)
}
