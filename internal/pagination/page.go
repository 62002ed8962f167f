package pagination

import (
	"fmt"

	"github.com/gompdf/pdfpackman/internal/imaging"
	"github.com/gompdf/pdfpackman/internal/layout"
)

// Page is one input image and the layout planned for it. Exactly one of
// Plan and Err is meaningful.
type Page struct {
	Index  int
	Source string

	Info  imaging.Info
	Image imaging.Embeddable
	Plan  *layout.LayoutPlan

	Err error
}

// OK reports whether the page can be rendered.
func (p *Page) OK() bool {
	return p.Err == nil && p.Plan != nil
}

// Failure returns the page failure wrapped with the image it belongs to, or nil.
func (p *Page) Failure() error {
	if p.Err == nil {
		return nil
	}
	return &ImageError{Index: p.Index, Source: p.Source, Err: p.Err}
}

// ImageError names the input image a failure belongs to.
type ImageError struct {
	Index  int
	Source string
	Err    error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %d (%s): %v", e.Index+1, e.Source, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}
