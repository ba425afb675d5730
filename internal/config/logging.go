package config

import (
	"github.com/rshade/coolroof/internal/logging"
)

// logFileDefault selects DefaultLogPath in logging.file.
const logFileDefault = "default"

// ToLoggingConfig converts the logging section into a logging.Config. An
// empty file logs to stderr; "default" logs to ~/.coolroof/logs/coolroof.log.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	out := logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: logging.OutputStderr,
	}
	if lc.File != "" {
		out.Output = logging.OutputFile
		out.File = lc.File
		if lc.File == logFileDefault {
			out.File = DefaultLogPath()
		}
	}
	return out
}

// GetLoggingConfig returns a copy of the logging section of the global
// configuration. Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
