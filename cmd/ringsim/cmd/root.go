// Package cmd implements the ringsim CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gobeyondidentity/ringlink/internal/version"
)

var (
	// Global flags
	configPath string
	noColor    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "ringsim",
	Short: "Host/chip ring-transport simulator",
	Long: `ringsim runs a deterministic simulation of the host/chip shared-memory
ring transport: two SPSC rings, published position registers, and a
watermark-driven interrupt latch.

The host and device agents alternate in a scripted cycle loop. The same
seed always reproduces the same run, so traces can be diffed across
changes to the transport core.`,
	Version:      version.String(),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Simulation config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored trace output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the per-event console trace")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
