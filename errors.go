package spline

import (
	"errors"
	"fmt"
)

// ErrInvalidSpline is matched by every [*InvalidSplineError], for use with
// [errors.Is].
var ErrInvalidSpline = errors.New("invalid spline")

// InvalidSplineError reports a query that a spline cannot answer, either
// because it has too few handles to define any segment or because the queried
// location or segment lies outside of it.
type InvalidSplineError struct {
	Reason string
	// HandleCount is the number of handles of the spline, including margins.
	HandleCount int
	// Location is the offending location or index, if any.
	Location    float64
	HasLocation bool
}

func (e *InvalidSplineError) Error() string {
	if e.HasLocation {
		return fmt.Sprintf("invalid spline: %s (location %g, %d handles)", e.Reason, e.Location, e.HandleCount)
	}
	return fmt.Sprintf("invalid spline: %s (%d handles)", e.Reason, e.HandleCount)
}

func (e *InvalidSplineError) Is(target error) bool {
	return target == ErrInvalidSpline
}

func (s Spline[P, D]) invalidError() error {
	return &InvalidSplineError{
		Reason:      fmt.Sprintf("need at least %d handles including margins", MinHandles),
		HandleCount: len(s.handles),
	}
}

func (s Spline[P, D]) locationError(reason string, loc float64) error {
	return &InvalidSplineError{
		Reason:      reason,
		HandleCount: len(s.handles),
		Location:    loc,
		HasLocation: true,
	}
}
