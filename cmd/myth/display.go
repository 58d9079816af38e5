package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// imageLabel shortens inline data URIs for terminal output.
func imageLabel(image string) string {
	if strings.HasPrefix(image, "data:") {
		return placeholderLabel
	}
	return image
}

func displayEntities(w io.Writer, list []entities.Entity) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tABODE\tIMAGE")
	for _, e := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, e.Abode(), imageLabel(e.Image))
	}
	return tw.Flush()
}

func displayEntity(w io.Writer, e entities.Entity) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (#%d)", e.Name, e.ID)))

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label+":"), value)
		}
	}
	list := func(label string, values []string) {
		field(label, strings.Join(values, ", "))
	}

	field("Category", e.Category)
	field("Description", e.Description)
	if a := e.Attributes; a != nil {
		field("Origin", a.Origin)
		field("Abode", a.Abode)
		list("Symbols", a.Symbols)
		list("Powers", a.Powers)
		if f := a.Family; f != nil {
			list("Parents", f.Parents)
			list("Siblings", f.Siblings)
			list("Spouse", f.Spouse)
		}
		list("Stories", a.Stories)
	}
	field("Image", imageLabel(e.Image))
}
