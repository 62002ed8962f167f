package layout

// LayoutPlan describes how one image is placed on its own page.
type LayoutPlan struct {
	Orientation Orientation
	Scale       float64
	Position    Position
	DPI         float64
	Unit        Unit

	// Physical size of the unscaled image.
	PhysicalWidth  float64
	PhysicalHeight float64
}

// PageWidth returns the width of the page the plan was made for.
func (p *LayoutPlan) PageWidth() float64 { return p.Orientation.Width }

// PageHeight returns the height of the page the plan was made for.
func (p *LayoutPlan) PageHeight() float64 { return p.Orientation.Height }

// ImageWidth returns the width the image occupies on the page.
func (p *LayoutPlan) ImageWidth() float64 { return p.PhysicalWidth * p.Scale }

// ImageHeight returns the height the image occupies on the page.
func (p *LayoutPlan) ImageHeight() float64 { return p.PhysicalHeight * p.Scale }

// PlanLayout plans an image with the default engine: A4, millimetres, no
// margins.
func PlanLayout(widthPx, heightPx, dpi float64) (*LayoutPlan, error) {
	return defaultEngine.Plan(widthPx, heightPx, dpi)
}

var defaultEngine = NewEngine()
