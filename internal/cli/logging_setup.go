package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/coolroof/internal/config"
	"github.com/rshade/coolroof/internal/logging"
)

// effectiveLoggingConfig returns the logging section with --debug applied.
// Debug output always goes to the console so it interleaves with results.
func effectiveLoggingConfig(cmd *cobra.Command) config.LoggingConfig {
	lc := config.GetLoggingConfig()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		lc = config.LoggingConfig{Level: "debug", Format: "console"}
	}
	return lc
}

// setupLogging builds the command logger and stores it, tagged with a trace
// id, in the command context.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	lc := effectiveLoggingConfig(cmd)
	result := logging.NewLoggerWithPath(lc.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	cmdLogger := logger.With().
		Str("trace_id", traceID).
		Str("command", cmd.CommandPath()).
		Logger()
	cmd.SetContext(cmdLogger.WithContext(ctx))

	cmdLogger.Debug().Str("level", lc.Level).Str("format", lc.Format).Msg("command started")
	return result
}

// cleanupLogging logs completion and releases the log file, if any.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logging.FromContext(cmd.Context()).Debug().Msg("command finished")
	if logResult == nil {
		return nil
	}
	return logResult.Close()
}
