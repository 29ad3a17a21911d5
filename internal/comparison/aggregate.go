package comparison

import "github.com/eugenenazirov/dorm-area/internal/calculator"

// Engine groups computed spaces by category and compares them with a reference table.
type Engine struct {
	resolver *Resolver
}

// NewEngine creates an Engine that resolves baselines through resolver.
func NewEngine(resolver *Resolver) *Engine {
	if resolver == nil {
		resolver = NewResolver(DefaultMapping)
	}
	return &Engine{resolver: resolver}
}

// Aggregate groups spaces by category in first-seen order, keeping the order of spaces
// within each category. Grand totals are sums of the category subtotals.
func (e *Engine) Aggregate(spaces []calculator.SpaceAllocation, data []Item) Report {
	index := make(map[string]int)
	rows := make([]Row, 0)

	for _, space := range spaces {
		i, ok := index[space.Category]
		if !ok {
			i = len(rows)
			index[space.Category] = i
			rows = append(rows, Row{Category: space.Category})
		}

		reference := e.resolver.Resolve(space.Category, space.Name, data)
		row := &rows[i]
		row.Spaces = append(row.Spaces, Line{
			Name:      space.Name,
			Computed:  space.Area,
			Reference: reference,
			Variance:  space.Area - reference,
		})
		row.ComputedSubtotal += space.Area
		row.ReferenceSubtotal += reference
	}

	report := Report{Rows: rows}
	for i := range report.Rows {
		row := &report.Rows[i]
		row.Variance = row.ComputedSubtotal - row.ReferenceSubtotal
		report.GrandComputed += row.ComputedSubtotal
		report.GrandReference += row.ReferenceSubtotal
	}
	report.GrandVariance = report.GrandComputed - report.GrandReference

	return report
}

// Summarize groups a reference table by category in first-seen order.
func Summarize(data []Item) Summary {
	index := make(map[string]int)
	summary := Summary{Categories: make([]CategoryTotal, 0)}

	for _, item := range data {
		i, ok := index[item.Category]
		if !ok {
			i = len(summary.Categories)
			index[item.Category] = i
			summary.Categories = append(summary.Categories, CategoryTotal{Category: item.Category})
		}
		cat := &summary.Categories[i]
		cat.Items = append(cat.Items, item)
		cat.Subtotal += item.Area
	}

	for _, cat := range summary.Categories {
		summary.GrandTotal += cat.Subtotal
	}
	return summary
}
