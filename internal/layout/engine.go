package layout

import (
	"fmt"
	"math"
)

// Options configures the page-fit engine
type Options struct {
	PageSize PageSize
	Margins  Margins
	Unit     Unit
}

// DefaultOptions returns A4 pages measured in millimetres without margins.
func DefaultOptions() Options {
	return Options{
		PageSize: PageSizeA4,
		Unit:     UnitMM,
	}
}

// Engine turns pixel dimensions into page layouts. It holds no mutable state
// after configuration, so Plan is safe for concurrent use.
type Engine struct {
	options Options
}

// NewEngine creates an engine with default options
func NewEngine() *Engine {
	return &Engine{options: DefaultOptions()}
}

// NewEngineWithOptions creates an engine with the given options.
func NewEngineWithOptions(options Options) *Engine {
	e := &Engine{}
	e.SetOptions(options)
	return e
}

// SetOptions replaces the engine options. Zero or non-finite page sizes fall
// back to defaults, and negative or NaN margins are clamped to zero.
func (e *Engine) SetOptions(options Options) {
	def := DefaultOptions()
	if !validLength(options.PageSize.Width) || !validLength(options.PageSize.Height) {
		options.PageSize = def.PageSize
	}
	if options.Unit == "" {
		options.Unit = def.Unit
	}
	m := &options.Margins
	m.Top, m.Right, m.Bottom, m.Left = clampMargin(m.Top), clampMargin(m.Right), clampMargin(m.Bottom), clampMargin(m.Left)
	e.options = options
}

// Options returns the active options.
func (e *Engine) Options() Options {
	return e.options
}

// Plan converts the pixel size to page units, picks the orientation, and
// computes the scale and centering offset inside the margins.
func (e *Engine) Plan(widthPx, heightPx, dpi float64) (*LayoutPlan, error) {
	fail := func(err error) (*LayoutPlan, error) {
		return nil, &PlanError{Width: widthPx, Height: heightPx, DPI: dpi, Err: err}
	}
	if !validLength(widthPx) || !validLength(heightPx) {
		return fail(ErrInvalidDimension)
	}

	unit := e.options.Unit
	w, err := PixelsToPageUnits(widthPx, dpi, unit)
	if err != nil {
		return fail(err)
	}
	h, err := PixelsToPageUnits(heightPx, dpi, unit)
	if err != nil {
		return fail(err)
	}

	orient := SelectOrientation(w, h, e.options.PageSize, unit)
	content := orient.Inset(e.options.Margins)
	if !validLength(content.Width) || !validLength(content.Height) {
		return fail(fmt.Errorf("%w: %.2fx%.2f%s page", ErrMarginsTooLarge, orient.Width, orient.Height, unit))
	}

	scale, err := ComputeScale(w, h, content)
	if err != nil {
		return fail(err)
	}
	pos := ComputePosition(w, h, content, scale)
	pos.X += e.options.Margins.Left
	pos.Y += e.options.Margins.Top

	return &LayoutPlan{
		Orientation:    orient,
		Scale:          scale,
		Position:       pos,
		DPI:            dpi,
		Unit:           unit,
		PhysicalWidth:  w,
		PhysicalHeight: h,
	}, nil
}

func clampMargin(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
