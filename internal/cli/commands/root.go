// Package commands implements the dircontents command line.
package commands

import (
	"context"
	"os"

	"github.com/aki/dircontents/internal/cli/ui"
	"github.com/aki/dircontents/internal/core/config"
	"github.com/aki/dircontents/internal/core/logger"
	"github.com/spf13/cobra"
)

// ConfigEnv overrides the configuration file location
const ConfigEnv = "DIRCONTENTS_CONFIG"

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the command tree. The root command itself lists
// directories; config and version are subcommands.
func NewRootCommand() *cobra.Command {
	global := &globalOptions{}
	list := &listOptions{}

	rootCmd := &cobra.Command{
		Use:   "dircontents [flags] [DIRECTORY...]",
		Short: "List directory contents in colored columns",
		Long: `dircontents reads the names of items in one or more directories and prints
them to the terminal, like ls. Directories are blue, symlinks cyan,
executables green and entries that no longer resolve (broken symlinks) red.

Defaults can be stored in a YAML file, see 'dircontents config'.`,
		Example: `  # List the working directory
  dircontents

  # Include hidden files, in reverse order
  dircontents -a -r /etc

  # One entry per line with human-readable sizes in base 1000
  dircontents -shb ~/Downloads`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Stdout = cmd.OutOrStdout()
			ui.Stderr = cmd.ErrOrStderr()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, global, list, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&global.configPath, "config", "", "Config file (default $"+ConfigEnv+" or the user config directory)")
	registerLoggerFlags(rootCmd, global)

	registerListFlags(rootCmd, list)

	rootCmd.AddCommand(newConfigCmd(global))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func (g *globalOptions) configManager() (*config.Manager, error) {
	path := g.configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.NewManager(path), nil
}

func (g *globalOptions) logger() (logger.Logger, error) {
	return createLogger(g.logLevel, g.logFormat)
}
