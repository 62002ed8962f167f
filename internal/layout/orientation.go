package layout

// Kind tags the two orientation variants.
type Kind int

const (
	Portrait Kind = iota
	Landscape
)

func (k Kind) String() string {
	if k == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Code returns the single-letter orientation used by PDF writers.
func (k Kind) Code() string {
	if k == Landscape {
		return "L"
	}
	return "P"
}

// Orientation is one of the two canonical page layouts together with the
// page dimensions that variant carries.
type Orientation struct {
	Kind   Kind
	Width  float64
	Height float64
}

// NewLandscape returns a landscape orientation with the given page size.
func NewLandscape(width, height float64) Orientation {
	return Orientation{Kind: Landscape, Width: width, Height: height}
}

// NewPortrait returns a portrait orientation with the given page size.
func NewPortrait(width, height float64) Orientation {
	return Orientation{Kind: Portrait, Width: width, Height: height}
}

// Dimensions returns the page width and height of the variant.
func (o Orientation) Dimensions() (float64, float64) {
	return o.Width, o.Height
}

// SelectOrientation picks landscape for images wider than tall and portrait
// otherwise. Square images are portrait.
func SelectOrientation(width, height float64, page PageSize, unit Unit) Orientation {
	long, short := page.LongEdge(unit), page.ShortEdge(unit)
	if width-height > 0 {
		return NewLandscape(long, short)
	}
	return NewPortrait(short, long)
}
