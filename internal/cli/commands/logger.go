package commands

import (
	"github.com/aki/dircontents/internal/cli/ui"
	"github.com/aki/dircontents/internal/core/logger"
	"github.com/spf13/cobra"
)

// registerLoggerFlags registers global logging flags
func registerLoggerFlags(cmd *cobra.Command, global *globalOptions) {
	cmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&global.logFormat, "log-format", "text", "Log format (text, json)")
}

// createLogger creates a logger writing to the command's error stream
func createLogger(level, format string) (logger.Logger, error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := logger.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(lvl),
		logger.WithFormat(f),
		logger.WithOutput(ui.Stderr),
	), nil
}
