package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minimallymodern/homesite"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "homesite",
	Short: "Minimally Modern Home site server",
	Long: `homesite serves the Minimally Modern Home decor site. Posts are read
from the configured Sanity dataset on every page load.

Configuration comes from a YAML file (--config) overlaid with HOMESITE_*
environment variables, e.g. HOMESITE_SANITY__DATASET=staging.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "homesite.yml", "config file path")
}

func loadConfig() (homesite.SiteConfig, error) {
	cfg, err := homesite.LoadConfig(cfgFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
