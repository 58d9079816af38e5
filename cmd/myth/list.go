package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mythdex/internal/application/handlers"
	"github.com/ersonp/mythdex/internal/domain/entities"
)

func newListCmd() *cobra.Command {
	var olympians bool

	cmd := &cobra.Command{
		Use:   "list <category>",
		Short: "List a catalog",
		Long: `Lists every entity of a category (gods, heroes, monsters, titans)
in the order the API returns them.

Examples:
  myth list gods
  myth list gods --olympians
  myth list heroes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], olympians)
		},
	}

	cmd.Flags().BoolVar(&olympians, "olympians", false, "Only gods whose abode is Olympus")

	return cmd
}

func runList(cmd *cobra.Command, categoryArg string, olympians bool) error {
	category, err := entities.ParseCategory(categoryArg)
	if err != nil {
		return err
	}
	if olympians && category != entities.CategoryGod {
		return fmt.Errorf("--olympians only applies to gods")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(func(d *Deps) error {
		var result *handlers.CatalogListResult
		if olympians {
			result, err = d.CatalogHandler.HandleOlympians(ctx)
		} else {
			result, err = d.CatalogHandler.HandleList(ctx, category)
		}
		if err != nil {
			return fmt.Errorf("listing %s: %w", category.Path(), err)
		}

		if result.Total == 0 {
			fmt.Fprintf(out, "No %s found.\n", category.Path())
			return nil
		}

		fmt.Fprintf(out, "%d %s:\n\n", result.Total, category.Path())
		return displayEntities(out, result.Entities)
	})
}
