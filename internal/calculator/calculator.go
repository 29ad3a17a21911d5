package calculator

import "fmt"

// MaxResidents is the largest headcount the calculator accepts.
const MaxResidents = 1_000_000

type areaCalculator struct{}

// New creates a Calculator backed by the built-in sizing rules.
func New() Calculator {
	return &areaCalculator{}
}

func (c *areaCalculator) CalculateArea(residents int, mode Mode) (Result, error) {
	if residents < 0 || residents > MaxResidents {
		return Result{}, fmt.Errorf("%w: residents must be between 0 and %d, got %d", ErrInvalidInput, MaxResidents, residents)
	}
	if !mode.Valid() {
		return Result{}, fmt.Errorf("%w: unknown calculation mode %q", ErrInvalidInput, mode)
	}
	return program(residents, mode), nil
}

func program(residents int, mode Mode) Result {
	rules := Rules(mode)
	spaces := make([]SpaceAllocation, 0, len(rules))

	var netArea float64
	for _, rule := range rules {
		units := rule.Formula.Units(residents)
		area := units * rule.Module.Area()
		netArea += area
		spaces = append(spaces, SpaceAllocation{
			Category: rule.Category,
			Name:     rule.Name,
			Units:    units,
			Module:   rule.Module,
			Area:     area,
			Formula:  rule.Formula.String(),
		})
	}

	ratio := mode.SharedRatio()
	grossArea := netArea / (1 - ratio)

	return Result{
		Mode:        mode,
		Residents:   residents,
		Spaces:      spaces,
		NetArea:     netArea,
		SharedArea:  grossArea - netArea,
		GrossArea:   grossArea,
		SharedRatio: ratio,
	}
}
