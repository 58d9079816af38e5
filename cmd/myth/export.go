package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/mythdex/internal/application/handlers"
	"github.com/ersonp/mythdex/internal/domain/entities"
)

type exportFlags struct {
	format    string
	output    string
	olympians bool
}

type exporter struct {
	handler *handlers.CatalogHandler
	format  string
	output  string
	stdout  io.Writer
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <category>",
		Short: "Export a catalog to file",
		Long:  "Exports the normalized catalog of a category to JSON, CSV, or markdown format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.olympians, "olympians", false, "Only export gods whose abode is Olympus")

	return cmd
}

func runExport(cmd *cobra.Command, categoryArg string, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	category, err := entities.ParseCategory(categoryArg)
	if err != nil {
		return err
	}
	if flags.olympians && category != entities.CategoryGod {
		return fmt.Errorf("--olympians only applies to gods")
	}

	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		e := &exporter{
			handler: d.CatalogHandler,
			format:  flags.format,
			output:  flags.output,
			stdout:  cmd.OutOrStdout(),
		}

		list, err := e.fetchEntities(ctx, category, flags.olympians)
		if err != nil {
			return err
		}

		return e.export(category, list)
	})
}

func (e *exporter) fetchEntities(ctx context.Context, category entities.Category, olympians bool) ([]entities.Entity, error) {
	var result *handlers.CatalogListResult
	var err error

	if olympians {
		result, err = e.handler.HandleOlympians(ctx)
	} else {
		result, err = e.handler.HandleList(ctx, category)
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", category.Path(), err)
	}

	if result.Total == 0 {
		return nil, fmt.Errorf("no %s found to export", category.Path())
	}

	return result.Entities, nil
}

func (e *exporter) export(category entities.Category, list []entities.Entity) (err error) {
	var f *os.File
	w := e.stdout

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := e.formatEntities(w, category, list); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Fprintf(e.stdout, "Exported %d %s to %s\n", len(list), category.Path(), e.output)
	}

	return nil
}

func (e *exporter) formatEntities(w io.Writer, category entities.Category, list []entities.Entity) error {
	switch e.format {
	case "json":
		return formatJSON(w, list)
	case "csv":
		return formatCSV(w, list)
	case "markdown":
		return formatMarkdown(w, category, list)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, list []entities.Entity) error {
	if list == nil {
		list = []entities.Entity{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(list)
}

func formatCSV(w io.Writer, list []entities.Entity) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "name", "category", "description", "origin", "abode", "symbols", "powers", "image"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range list {
		var origin string
		var symbols, powers []string
		if a := e.Attributes; a != nil {
			origin, symbols, powers = a.Origin, a.Symbols, a.Powers
		}
		row := []string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Category,
			e.Description,
			origin,
			e.Abode(),
			strings.Join(symbols, ";"),
			strings.Join(powers, ";"),
			e.Image,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, category entities.Category, list []entities.Entity) error {
	title := strings.ToUpper(category.Path()[:1]) + category.Path()[1:]
	if _, err := fmt.Fprintf(w, "# %s\n\nTotal: %d\n\n", title, len(list)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| ID | Name | Abode | Description |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|----|------|-------|-------------|\n"); err != nil {
		return err
	}

	for _, e := range list {
		description := e.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
			e.ID,
			escapeMarkdown(e.Name),
			escapeMarkdown(e.Abode()),
			escapeMarkdown(description),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
