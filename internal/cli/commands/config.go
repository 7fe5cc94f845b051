package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aki/dircontents/internal/cli/ui"
	"github.com/aki/dircontents/internal/core/config"
	"github.com/aki/dircontents/internal/filemanager"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dircontents configuration",
		Long: `Manage the configuration file holding the default listing options.

Flags given on the command line always override the file.`,
		Example: `  # View the effective configuration
  dircontents config show

  # Write a configuration file with the defaults
  dircontents config init

  # Validate the configuration file
  dircontents config validate`,
	}

	cmd.AddCommand(
		newConfigShowCmd(global),
		newConfigInitCmd(global),
		newConfigPathCmd(global),
		newConfigValidateCmd(global),
	)
	return cmd
}

func newConfigShowCmd(global *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the current configuration",
		Long:  "Display the configuration with defaults applied for keys missing from the file",
		Example: `  # Show configuration in YAML format (default)
  dircontents config show

  # Show configuration as a table
  dircontents config show --format pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := global.configManager()
			if err != nil {
				return err
			}
			cfg, err := mgr.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			switch format {
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal configuration: %w", err)
				}
				fmt.Fprint(ui.Stdout, string(data))
				return nil
			case "json":
				return ui.OutputJSON(cfg)
			case "pretty":
				showConfigPretty(mgr, cfg)
				return nil
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json, pretty)")
	return cmd
}

func showConfigPretty(mgr *config.Manager, cfg *config.Config) {
	source := mgr.GetConfigPath()
	if !mgr.Exists() {
		source += " (not found, using defaults)"
	}
	ui.OutputLine("Configuration: %s", source)
	ui.OutputLine("")

	width := "detect"
	if cfg.Width > 0 {
		width = strconv.Itoa(cfg.Width)
	}

	tbl := ui.NewTable("SETTING", "VALUE")
	tbl.AddRow("show_hidden", cfg.ShowHidden)
	tbl.AddRow("sort", cfg.Sort)
	tbl.AddRow("show_size", cfg.ShowSize)
	tbl.AddRow("human_readable", cfg.HumanReadable)
	tbl.AddRow("size_base", cfg.SizeBase)
	tbl.AddRow("color", cfg.Color)
	tbl.AddRow("links", cfg.Links)
	tbl.AddRow("width", width)
	tbl.Print()
}

func newConfigInitCmd(global *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := global.configManager()
			if err != nil {
				return err
			}
			if err := mgr.Init(cmd.Context(), force); err != nil {
				if errors.Is(err, filemanager.ErrExists) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", mgr.GetConfigPath())
				}
				return err
			}
			ui.Success("Created %s", mgr.GetConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newConfigPathCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := global.configManager()
			if err != nil {
				return err
			}
			ui.OutputLine("%s", mgr.GetConfigPath())
			return nil
		},
	}
}

func newConfigValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against its schema.

This command checks:
- Only known keys are present
- Values have the right type
- Enumerated values (sort, size_base, color, links) are allowed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := global.configManager()
			if err != nil {
				return err
			}
			if !mgr.Exists() {
				return fmt.Errorf("no configuration file at %s", mgr.GetConfigPath())
			}

			if _, err := mgr.Load(cmd.Context()); err != nil {
				ui.Error("Configuration validation failed: %v", err)
				return fmt.Errorf("invalid configuration")
			}
			ui.Success("Configuration is valid")
			return nil
		},
	}
}
