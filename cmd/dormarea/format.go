package main

import (
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/comparison"
)

var printer = message.NewPrinter(language.English)

func heading(w io.Writer, title string) {
	printer.Fprintln(w, title)
	printer.Fprintln(w, strings.Repeat("=", len(title)))
	printer.Fprintln(w)
}

func printTarget(w io.Writer, target float64, residents int) {
	printer.Fprintf(w, "Target gross area:  %.1f m²\n", target)
	printer.Fprintf(w, "Achievable headcount: %d\n\n", residents)
}

func printProgram(w io.Writer, res calculator.Result) {
	heading(w, printer.Sprintf("Floor-area program (%s, %d residents)", res.Mode, res.Residents))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printer.Fprintln(tw, "Category\tSpace\tUnits\tModule\tArea (m²)\t")
	prev := ""
	for _, s := range res.Spaces {
		category := s.Category
		if category == prev {
			category = ""
		}
		prev = s.Category
		printer.Fprintf(tw, "%s\t%s\t%g\t%s\t%.1f\t\n", category, s.Name, s.Units, s.Module, s.Area)
	}
	_ = tw.Flush()

	printer.Fprintln(w)
	printer.Fprintln(w, "Summary")
	printer.Fprintln(w, "-------")
	printer.Fprintf(w, "  Net area:         %.1f m²\n", res.NetArea)
	printer.Fprintf(w, "  Shared area:      %.1f m² (%.0f%%)\n", res.SharedArea, res.SharedRatio*100)
	printer.Fprintf(w, "  Gross area:       %.1f m²\n", res.GrossArea)
	if perPerson, err := res.AreaPerPerson(); err == nil {
		printer.Fprintf(w, "  Area per person:  %.2f m²\n", perPerson)
	} else {
		printer.Fprintln(w, "  Area per person:  undefined")
	}
}

func printComparison(w io.Writer, res calculator.Result, report comparison.Report) {
	heading(w, printer.Sprintf("Comparison with reference (%s, %d residents)", res.Mode, res.Residents))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printer.Fprintln(tw, "Category\tSpace\tComputed\tReference\tVariance\t")
	for _, row := range report.Rows {
		for i, line := range row.Spaces {
			category := ""
			if i == 0 {
				category = row.Category
			}
			printer.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%+.1f\t\n", category, line.Name, line.Computed, line.Reference, line.Variance)
		}
		printer.Fprintf(tw, "\tSubtotal\t%.1f\t%.1f\t%+.1f\t\n", row.ComputedSubtotal, row.ReferenceSubtotal, row.Variance)
	}
	printer.Fprintf(tw, "Total\t\t%.1f\t%.1f\t%+.1f\t\n", report.GrandComputed, report.GrandReference, report.GrandVariance)
	_ = tw.Flush()
}

func printReference(w io.Writer, summary comparison.Summary) {
	heading(w, "Reference area table")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printer.Fprintln(tw, "Category\tItem\tArea (m²)\t")
	for _, cat := range summary.Categories {
		for i, item := range cat.Items {
			category := ""
			if i == 0 {
				category = cat.Category
			}
			printer.Fprintf(tw, "%s\t%s\t%.1f\t\n", category, item.Name, item.Area)
		}
		printer.Fprintf(tw, "\tSubtotal\t%.1f\t\n", cat.Subtotal)
	}
	printer.Fprintf(tw, "Total\t\t%.1f\t\n", summary.GrandTotal)
	_ = tw.Flush()
}
