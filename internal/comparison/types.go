package comparison

// Item is one line of a reference area table.
type Item struct {
	Category string  `json:"category" yaml:"category"`
	Name     string  `json:"name" yaml:"name"`
	Area     float64 `json:"area" yaml:"area"`
}

// Mapping maps a computed space name to the reference item names whose areas are summed
// to form its baseline.
type Mapping map[string][]string

// Line compares one computed space with its reference baseline.
type Line struct {
	Name      string  `json:"name"`
	Computed  float64 `json:"computed"`
	Reference float64 `json:"reference"`
	Variance  float64 `json:"variance"`
}

// Row is the per-category subtotal of a comparison. Variance is positive when the
// computed program exceeds the reference.
type Row struct {
	Category          string  `json:"category"`
	Spaces            []Line  `json:"spaces"`
	ComputedSubtotal  float64 `json:"computedSubtotal"`
	ReferenceSubtotal float64 `json:"referenceSubtotal"`
	Variance          float64 `json:"variance"`
}

// Report is the grouped comparison of a program against a reference table.
type Report struct {
	Rows           []Row   `json:"rows"`
	GrandComputed  float64 `json:"grandComputed"`
	GrandReference float64 `json:"grandReference"`
	GrandVariance  float64 `json:"grandVariance"`
}

// CategoryTotal is the subtotal of one category of a reference table.
type CategoryTotal struct {
	Category string  `json:"category"`
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// Summary groups a reference table by category.
type Summary struct {
	Categories []CategoryTotal `json:"categories"`
	GrandTotal float64         `json:"grandTotal"`
}
