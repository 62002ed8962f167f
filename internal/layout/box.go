package layout

// Margins are blank borders around the printable area, in page units.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns equal margins on all four sides.
func UniformMargins(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// Horizontal returns the combined left and right margin.
func (m Margins) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns the combined top and bottom margin.
func (m Margins) Vertical() float64 { return m.Top + m.Bottom }

// Inset returns o with its page area reduced by m. The kind is unchanged.
func (o Orientation) Inset(m Margins) Orientation {
	return Orientation{
		Kind:   o.Kind,
		Width:  o.Width - m.Horizontal(),
		Height: o.Height - m.Vertical(),
	}
}
