package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/mythdex/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long: `Creates a .myth directory with a default config.yaml in the current directory.
Global flags given to init (--base-url, --snapshot, --log-level, --log-json)
are stored in the new file.`,
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("myth already initialized in %s", cwd)
	}

	if err := writeInitialConfig(cwd); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(cwd))
	fmt.Fprintln(out, "Edit upstream.base_url to point at your mythology API.")

	return nil
}

// writeInitialConfig writes the commented template, or the defaults merged
// with the global flags when any were given.
func writeInitialConfig(cwd string) error {
	cfg := config.Default()
	applyFlagOverrides(cfg)

	if *cfg == *config.Default() {
		if err := config.WriteDefault(cwd); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		return nil
	}

	if err := config.Write(cwd, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
