package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "morph-bench",
		Short: "Benchmark and inspection tool for the morph reconciliation engine",
		Long: `morph-bench drives the morph virtual-DOM engine against its
in-memory HTML backend and reports what the reconciler actually did:
host-tree operation counts, patch throughput, and rendered output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		shuffleCmd(),
		renderCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("morph-bench %s (%s)\n", version, commit)
		},
	}
}
