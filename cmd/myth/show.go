package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <category> <id-or-name>",
		Short: "Show one entity",
		Long: `Looks an entity up by numeric id or by name. Names match exactly first,
then by prefix, then anywhere in the name, ignoring case. Percent-encoded
identifiers (even double-encoded ones) are accepted.

Examples:
  myth show gods 1
  myth show gods zeus
  myth show heroes "Pallas%20Athena"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], args[1], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the entity as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, categoryArg, param string, asJSON bool) error {
	category, err := entities.ParseCategory(categoryArg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(func(d *Deps) error {
		entity, err := d.CatalogHandler.HandleResolve(ctx, category, param)
		if err != nil {
			return describeLookupError(category, param, err)
		}

		if asJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entity)
		}

		displayEntity(out, *entity)
		return nil
	})
}

// describeLookupError keeps "not found" and upstream failures apart.
func describeLookupError(category entities.Category, param string, err error) error {
	var fetchErr *entities.RemoteFetchError
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return fmt.Errorf("%s %q not found", category, param)
	case errors.As(err, &fetchErr):
		return fmt.Errorf("catalog unavailable: %w", err)
	default:
		return err
	}
}
