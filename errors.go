package roadgeom

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a constructor or query receives arguments
	// outside its domain. Returned errors wrap it; test with [errors.Is].
	ErrValidation = errors.New("roadgeom: invalid argument")

	// ErrInvalidState is returned when an operation is not possible on the
	// current object, such as the derivative of a single-point Bézier.
	ErrInvalidState = errors.New("roadgeom: invalid state")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func stateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
