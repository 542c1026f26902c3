package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags.
var (
	buildVersion = "0.1.0-dev"
	buildCommit  = ""
	buildDate    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show binspec build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "binspec %s\n", buildVersion)
		if buildCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", buildCommit)
		}
		if buildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", buildDate)
		}
	},
}
