// Package main is the entry point for declinedocs, the documentation
// tooling for the embedded Stripe decline-code dataset.
package main

import (
	"fmt"
	"os"

	"github.com/hideokamoto/stripe-decline-codes/config"
	"github.com/hideokamoto/stripe-decline-codes/internal/logger"
	"github.com/spf13/cobra"
)

// Version is overridden at build time.
var Version = "dev"

// cfg seeds the flag defaults, so it must be ready before the init
// functions below register flags.
var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:     "declinedocs",
	Short:   "Generate documentation artifacts for Stripe decline codes",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
