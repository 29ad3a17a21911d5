package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a headcount, target area or mode is outside the accepted domain.
	ErrInvalidInput = errors.New("invalid calculation input")
	// ErrDivisionByZero is returned when a derived figure is undefined, such as area per person for zero residents.
	ErrDivisionByZero = errors.New("value is undefined for zero residents")
	// ErrTargetUnreachable is returned when the fixed spaces alone already exceed the target gross area.
	ErrTargetUnreachable = fmt.Errorf("%w: target gross area is below the fixed-space minimum", ErrDivisionByZero)
	// ErrTargetTooLarge is returned when the target gross area needs more residents than MaxResidents.
	ErrTargetTooLarge = fmt.Errorf("%w: target gross area exceeds the supported headcount range", ErrInvalidInput)
)
