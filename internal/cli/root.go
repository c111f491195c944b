// Package cli wires the agentpulse commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentpulse",
	Short: "Demo backend for an autonomous-infrastructure dashboard",
	Long:  "Fabricates a deterministic stream of enriched agent decisions and serves it over a read-only JSON API. All telemetry is simulated; nothing here controls real infrastructure.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
