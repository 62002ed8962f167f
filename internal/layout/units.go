package layout

import (
	"math"
	"strings"
)

// Unit is a physical page-length unit.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitCM   Unit = "cm"
	UnitPt   Unit = "pt"
	UnitInch Unit = "in"
)

// PointsPerInch is the PDF user-space resolution.
const PointsPerInch = 72.0

// PointsPerUnit returns how many points make up one u.
// Unknown units are treated as millimetres.
func (u Unit) PointsPerUnit() float64 {
	switch u {
	case UnitPt:
		return 1
	case UnitInch:
		return PointsPerInch
	case UnitCM:
		return PointsPerInch / 2.54
	default:
		return PointsPerInch / 25.4
	}
}

// ParseUnit maps a user supplied unit name to a Unit.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimetre":
		return UnitMM, true
	case "cm", "centimeter", "centimetre":
		return UnitCM, true
	case "pt", "point", "points":
		return UnitPt, true
	case "in", "inch", "inches":
		return UnitInch, true
	}
	return "", false
}

// PixelsToPageUnits converts a pixel length at the given resolution into
// page units: pixels -> inches -> points -> unit.
func PixelsToPageUnits(pixels, dpi float64, unit Unit) (float64, error) {
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		return 0, ErrInvalidResolution
	}
	pt := pixels / dpi * PointsPerInch
	return pt / unit.PointsPerUnit(), nil
}

// Convert expresses v, given in unit from, in unit to.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return v * from.PointsPerUnit() / to.PointsPerUnit()
}
