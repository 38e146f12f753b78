package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nieomylnieja/jsonview/internal/config"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Serve and render selective JSON views of a product catalog",
		Long: `catalog exposes a demo product catalog whose resources are rendered as JSON projections.
Relations are emitted only when included, any property can be excluded by its dotted path.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the configuration file (default: ./catalog.yaml, if present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
