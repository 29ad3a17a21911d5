package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the calculation standard.
type Mode string

const (
	ModeRecommended Mode = "Recommended"
	ModeBasic       Mode = "Basic"
)

// ParseMode resolves a mode name case-insensitively. An empty string is rejected.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "recommended":
		return ModeRecommended, nil
	case "basic":
		return ModeBasic, nil
	default:
		return "", fmt.Errorf("%w: unknown calculation mode %q", ErrInvalidInput, raw)
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeRecommended || m == ModeBasic
}

// SharedRatio is the share of gross area taken by circulation and other common space.
func (m Mode) SharedRatio() float64 {
	if m == ModeRecommended {
		return 0.35
	}
	return 0.29
}

// StudyDivisor is the number of residents served by one study lounge unit.
func (m Mode) StudyDivisor() int {
	if m == ModeRecommended {
		return 20
	}
	return 40
}

// FormulaKind tags how a space derives its unit count from the headcount.
type FormulaKind string

const (
	// FormulaLinear yields residents / Divisor without rounding.
	FormulaLinear FormulaKind = "linear"
	// FormulaCeilDivide yields ceil(residents / Divisor).
	FormulaCeilDivide FormulaKind = "ceil_divide"
	// FormulaFixed yields Count regardless of headcount.
	FormulaFixed FormulaKind = "fixed"
)

// Formula is the unit-count function of a single space. Every kind is non-decreasing in residents.
type Formula struct {
	Kind    FormulaKind
	Divisor int
	Count   int
}

// Units evaluates the formula for a non-negative headcount.
func (f Formula) Units(residents int) float64 {
	switch f.Kind {
	case FormulaLinear:
		return float64(residents) / float64(f.Divisor)
	case FormulaCeilDivide:
		return float64((residents + f.Divisor - 1) / f.Divisor)
	default:
		return float64(f.Count)
	}
}

func (f Formula) String() string {
	switch f.Kind {
	case FormulaLinear:
		return "residents / " + strconv.Itoa(f.Divisor)
	case FormulaCeilDivide:
		return "ceil(residents / " + strconv.Itoa(f.Divisor) + ")"
	default:
		return strconv.Itoa(f.Count)
	}
}

// Rule describes how one space of the program is sized.
type Rule struct {
	Category string
	Name     string
	Module   Module
	Formula  Formula
}

// SpaceAllocation is one row of a computed program.
type SpaceAllocation struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Units    float64 `json:"units"`
	Module   Module  `json:"module"`
	Area     float64 `json:"area"`
	Formula  string  `json:"formula,omitempty"`
}

// Result is the complete floor-area program for a headcount.
// GrossArea = NetArea + SharedArea and GrossArea * (1 - SharedRatio) = NetArea.
type Result struct {
	Mode        Mode              `json:"mode"`
	Residents   int               `json:"residents"`
	Spaces      []SpaceAllocation `json:"spaces"`
	NetArea     float64           `json:"netArea"`
	SharedArea  float64           `json:"sharedArea"`
	GrossArea   float64           `json:"grossArea"`
	SharedRatio float64           `json:"sharedRatio"`
}

// AreaPerPerson returns gross area divided by residents, or ErrDivisionByZero for an empty building.
func (r Result) AreaPerPerson() (float64, error) {
	if r.Residents == 0 {
		return 0, ErrDivisionByZero
	}
	return r.GrossArea / float64(r.Residents), nil
}

// Calculator describes the behaviour required from a floor-area calculator.
type Calculator interface {
	CalculateArea(residents int, mode Mode) (Result, error)
	CalculateResidents(targetGrossArea float64, mode Mode) (int, error)
}
