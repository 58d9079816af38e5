package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <category> <query>",
		Short: "Find entities whose name contains a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], args[1])
		},
	}
}

func runSearch(cmd *cobra.Command, categoryArg, query string) error {
	category, err := entities.ParseCategory(categoryArg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(func(d *Deps) error {
		result, err := d.CatalogHandler.HandleSearch(ctx, category, query)
		if err != nil {
			return fmt.Errorf("searching %s: %w", category.Path(), err)
		}

		if result.Total == 0 {
			fmt.Fprintf(out, "No %s matching %q.\n", category.Path(), query)
			return nil
		}

		return displayEntities(out, result.Entities)
	})
}
