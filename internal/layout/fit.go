package layout

import "math"

// Position is the offset of the placed image's top-left corner from the
// page's top-left corner, in page units.
type Position struct {
	X float64
	Y float64
}

// ComputeScale returns the largest uniform factor that fits a width x height
// image inside the page carried by o. The image touches the page on the
// binding axis.
func ComputeScale(width, height float64, o Orientation) (float64, error) {
	if !validLength(width) || !validLength(height) {
		return 0, ErrInvalidDimension
	}
	pw, ph := o.Dimensions()
	return math.Min(pw/width, ph/height), nil
}

// ComputePosition centers a width x height image scaled by scale on the page
// carried by o. scale must come from ComputeScale for the same inputs or the
// image may overflow the page.
func ComputePosition(width, height float64, o Orientation, scale float64) Position {
	pw, ph := o.Dimensions()
	return Position{
		X: (pw - width*scale) / 2,
		Y: (ph - height*scale) / 2,
	}
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
