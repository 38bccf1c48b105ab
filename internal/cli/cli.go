// Package cli defines the interactive-map command line: the GUI as the root
// command plus the dump and version subcommands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bsmietanka/interactive-map/internal/config"
	"github.com/bsmietanka/interactive-map/internal/dataset"
	"github.com/bsmietanka/interactive-map/internal/logger"
	"github.com/bsmietanka/interactive-map/internal/version"
)

// RunGUIFunc starts the graphical interface and blocks until it exits.
type RunGUIFunc func(ctx context.Context, cfg *config.Config, lggr logger.Logger) error

// Dump formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewRootCmd returns the root command. Running it without a subcommand
// calls runGUI.
func NewRootCmd(runGUI RunGUIFunc) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           version.Name,
		Short:         "Interactive map of the 1820 Wąwolnica land register",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lggr, err := setup(cmd, configPath)
			if err != nil {
				return err
			}
			defer lggr.Sync() //nolint:errcheck

			lggr.Infow("Starting", "version", version.Version, "map", cfg.MapPath)
			return runGUI(cmd.Context(), cfg, lggr)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newDumpCmd(&configPath))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads the configuration and builds the logger for cmd.
func setup(cmd *cobra.Command, configPath string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	lggr, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, lggr, nil
}

func newDumpCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the unified table",
		Long: "Loads the annotations and the descriptions, joins them and prints " +
			"the resulting table, one record per plot, in table order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != FormatJSON && format != FormatYAML {
				return fmt.Errorf("unknown format %q, want %s or %s", format, FormatJSON, FormatYAML)
			}
			cfg, lggr, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			defer lggr.Sync() //nolint:errcheck

			table, _, err := dataset.Load(cfg.Paths(), cfg.Schema, lggr.Named("dataset"))
			if err != nil {
				return err
			}
			return writeTable(cmd, table, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatJSON, "output format: json or yaml")
	return cmd
}

func writeTable(cmd *cobra.Command, table *dataset.Table, format string) error {
	out := cmd.OutOrStdout()
	if format == FormatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(table); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
