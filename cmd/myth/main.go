// Package main provides the entry point for the myth CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// Global flags. Set values win over the environment and the config file.
var (
	globalBaseURL     string
	globalSnapshotDir string
	globalLogLevel    string
	globalLogJSON     bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "myth",
		Short:         "Browse gods, heroes, monsters and titans from a mythology API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalBaseURL, "base-url", "", "Upstream API root (overrides config and MYTH_API_BASE_URL)")
	flags.StringVar(&globalSnapshotDir, "snapshot", "", "Read <category>.json files from this directory instead of the API")
	flags.StringVar(&globalLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&globalLogJSON, "log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newShowCmd(),
		newSearchCmd(),
		newExportCmd(),
		newAssetsCmd(),
	)

	return rootCmd
}
