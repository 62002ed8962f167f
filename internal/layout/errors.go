package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension reports a zero, negative or non-finite image size.
	ErrInvalidDimension = errors.New("invalid image dimension")
	// ErrInvalidResolution reports a zero, negative or non-finite DPI.
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrMarginsTooLarge reports margins that leave no room for the image.
	ErrMarginsTooLarge = errors.New("margins leave no printable area")
)

// PlanError carries the inputs that were rejected while planning a page.
type PlanError struct {
	Width  float64
	Height float64
	DPI    float64
	Err    error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("plan %gx%g px at %g dpi: %v", e.Width, e.Height, e.DPI, e.Err)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}
