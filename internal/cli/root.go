package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the coolroof CLI.
// It loads configuration (including a --config overlay), wires up logging
// and tracing, and registers the calculator and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "coolroof",
		Short:         "Cool roof coating savings calculator",
		Long:          "coolroof: estimate the energy, cost and CO2 savings of a reflective roof coating",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkConfigLoaded(cmd); err != nil {
				return err
			}
			if err := applyConfigOverlay(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the configuration (whole sections replace)")

	cmd.AddCommand(
		NewCalcCmd(),
		NewPaybackCmd(),
		NewExportCmd(),
		NewBatchCmd(),
		NewOptionsCmd(),
		NewInteractiveCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Savings of a 1000 m² metal roof with the configured defaults
  coolroof calc

  # Insulated concrete roof, old air conditioning, JSON output
  coolroof calc --area 2500 --roof-type concrete --roof-insulation xps-100 --eer-band old --output json

  # Payback of the coating at 45 per m²
  coolroof payback --unit-cost 45

  # Printable report
  coolroof export --format pdf --out savings.pdf

  # Compute every scenario of a spreadsheet
  coolroof batch --input scenarios.xlsx --out results.xlsx

  # Interactive calculator
  coolroof interactive

  # Change a default
  coolroof config set defaults.energy_price 0.92`

// annotationTolerateConfigErrors marks commands that must run even when the
// configuration file or environment overrides cannot be applied, so a broken
// setup can be repaired.
const annotationTolerateConfigErrors = "coolroof/tolerate-config-errors"

// checkConfigLoaded fails the command when the configuration file, .env file
// or COOLROOF_* variables could not be applied.
func checkConfigLoaded(cmd *cobra.Command) error {
	err := config.GlobalConfigErr()
	if err == nil {
		return nil
	}
	if _, ok := cmd.Annotations[annotationTolerateConfigErrors]; ok {
		cmd.PrintErrf("Warning: %v\n", err)
		return nil
	}
	return fmt.Errorf("loading configuration: %w", err)
}

// applyConfigOverlay merges the --config file into the global configuration
// and re-applies environment overrides on top of it.
func applyConfigOverlay(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil
	}

	cfg := config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(cfg, path); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("applying environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
