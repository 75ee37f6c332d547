// Package main is the entry point for the tabset CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	registerQuitHandler()
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tabset",
		Short:        "tabset — accessible tab panels in the terminal",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to tabset.toml (default: search up from the working directory)")

	root.AddCommand(
		viewCmd(),
		inspectCmd(),
		initCmd(),
	)

	return root
}
