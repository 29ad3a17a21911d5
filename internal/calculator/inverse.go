package calculator

import (
	"fmt"
	"math"
)

// MinimumGrossArea returns the gross area of the fixed spaces alone, i.e. the program for zero residents.
func MinimumGrossArea(mode Mode) (float64, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: unknown calculation mode %q", ErrInvalidInput, mode)
	}
	return program(0, mode).GrossArea, nil
}

// CalculateResidents returns the largest headcount whose gross area does not exceed targetGrossArea.
// Gross area is a non-decreasing step function of residents, so the answer is found by binary search.
func (c *areaCalculator) CalculateResidents(targetGrossArea float64, mode Mode) (int, error) {
	if math.IsNaN(targetGrossArea) || math.IsInf(targetGrossArea, 0) || targetGrossArea < 0 {
		return 0, fmt.Errorf("%w: target gross area must be a finite non-negative number, got %v", ErrInvalidInput, targetGrossArea)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: unknown calculation mode %q", ErrInvalidInput, mode)
	}

	gross := func(residents int) float64 {
		return program(residents, mode).GrossArea
	}

	if minimum := gross(0); minimum > targetGrossArea {
		return 0, fmt.Errorf("%w: %.1f m² needed, %.1f m² requested", ErrTargetUnreachable, minimum, targetGrossArea)
	}

	// Two residents add at least one 26.4 m² room, so gross(hi) > target once hi > target/13.2.
	hi := MaxResidents + 1
	if bound := targetGrossArea / smallestModuleArea; bound < MaxResidents {
		hi = int(bound) + 1
	}
	if hi > MaxResidents {
		if gross(MaxResidents) <= targetGrossArea {
			return 0, fmt.Errorf("%w: more than %d residents fit in %.1f m²", ErrTargetTooLarge, MaxResidents, targetGrossArea)
		}
		hi = MaxResidents
	}

	// Invariant: gross(lo) <= target < gross(hi).
	lo := 0
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if gross(mid) <= targetGrossArea {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}
