package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
	"github.com/rshade/coolroof/internal/report"
	"github.com/rshade/coolroof/internal/tui"
)

// InteractiveParams holds the parameters of the interactive command.
// Exported for testing.
type InteractiveParams struct {
	CalculatorParams

	ExportDir   string
	NoAltScreen bool
}

// NewInteractiveCmd creates the "interactive" command.
func NewInteractiveCmd() *cobra.Command {
	var params InteractiveParams

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Interactive calculator that recomputes on every change",
		Long: `Launch the interactive calculator. Move between inputs with the arrow keys,
cycle choices with left/right and press enter to type a number. Every change
recomputes the savings, charts and payback. Press x to save the summary as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeInteractive(cmd, &params)
		},
	}

	bindCalculatorFlags(cmd.Flags(), &params.CalculatorParams)
	cmd.Flags().StringVar(&params.ExportDir, "export-dir", ".", "directory for CSV exports")
	cmd.Flags().BoolVar(&params.NoAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	return cmd
}

// InputsFromDefaults converts resolved defaults into the calculator form
// state. Exported for testing.
func InputsFromDefaults(d config.DefaultsConfig, autoScale bool) (tui.Inputs, error) {
	cfg, err := d.Calculator()
	if err != nil {
		return tui.Inputs{}, err
	}
	band, err := calculator.ParseEERBand(d.EERBand)
	if err != nil {
		return tui.Inputs{}, err
	}
	return tui.Inputs{
		AreaM2:         cfg.AreaM2,
		RoofType:       cfg.RoofType,
		RoofInsulation: cfg.RoofInsulation,
		WallInsulation: cfg.WallInsulation,
		EERBand:        band,
		CustomEER:      d.EER,
		EnergyPrice:    cfg.EnergyPrice,
		EmissionFactor: cfg.EmissionFactor,
		UnitCost:       d.UnitCost,
		AutoScale:      autoScale,
	}, nil
}

// csvExporter returns a tui.ExportFunc writing coolroof-<id>.csv into dir.
func csvExporter(dir string) tui.ExportFunc {
	return func(ctx context.Context, r *report.Report) (string, error) {
		path := filepath.Join(dir, fmt.Sprintf("coolroof-%s.csv", r.ID))
		if err := writeFile(path, func(w io.Writer) error {
			return report.WriteCSV(w, []*report.Report{r})
		}); err != nil {
			return "", err
		}
		logging.FromContext(ctx).Info().
			Str("operation", "interactive_export").
			Str("path", path).
			Msg("summary exported")
		return path, nil
	}
}

func executeInteractive(cmd *cobra.Command, params *InteractiveParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg := config.GetGlobalConfig()
	d, err := ResolveDefaults(cmd.Flags(), &params.CalculatorParams, cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	inputs, err := InputsFromDefaults(d, cfg.Charts.AutoScale)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	model := tui.NewCalculatorModel(ctx, inputs, tui.Options{
		Currency: d.Currency,
		Charts:   chartSettings(cfg),
		Export:   csvExporter(params.ExportDir),
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !params.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Debug().Ctx(ctx).Str("operation", "interactive").Msg("starting interactive calculator")
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}

	calcModel, ok := finalModel.(*tui.CalculatorModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.CalculatorModel", finalModel)
	}

	// Leave the last valid result on screen after the alternate screen closes.
	if r := calcModel.Report(); r != nil {
		return report.Render(cmd.OutOrStdout(), report.FormatTable, r)
	}
	return nil
}
