package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lavatech-dev/balance/internal/buildinfo"
	"github.com/lavatech-dev/balance/internal/catalog"
	"github.com/lavatech-dev/balance/internal/config"
	"github.com/lavatech-dev/balance/internal/engine"
	"github.com/lavatech-dev/balance/internal/session"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "balance",
		Short:   "General balance sheet engine for a single company",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "balance.yaml", "path to the configuration file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBalanceCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))
	rootCmd.AddCommand(newAccountsCommand(&configPath))
	rootCmd.AddCommand(newTxCommand(&configPath))
	rootCmd.AddCommand(newServeCommand(&configPath))

	return rootCmd
}

// loadConfig reads the config file, or falls back to defaults when the
// file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(""), nil
	}
	return config.Load(path)
}

// loadSession builds a fresh session from the configuration: the default
// chart with the configured overrides, at the configured VAT rate.
func loadSession(path string) (*session.Session, *config.Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	chart, err := cfg.Chart()
	if err != nil {
		return nil, nil, fmt.Errorf("building chart: %w", err)
	}
	sess := session.New(catalog.NewStore(chart), engine.New(cfg.Rate()))
	return sess, cfg, nil
}
