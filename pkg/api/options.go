package api

import (
	"github.com/gompdf/pdfpackman/internal/layout"
	"github.com/sirupsen/logrus"
)

// Options represents configuration options for the image to PDF converter
type Options struct {
	// Canonical page size; each page is rotated to match its image.
	PageSize PageSize
	// Unit used for margins and the generated document.
	Unit Unit

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// DPI assumed for images when converting pixels to page units
	DPI float64
	// UseEmbeddedDPI prefers the resolution stored in the image file
	UseEmbeddedDPI bool

	// Number of images prepared in parallel, 0 means one per CPU
	Concurrency int
	// ContinueOnError skips images that fail instead of aborting
	ContinueOnError bool

	// Debug enables debug logging
	Debug bool
	// When true, outline each placed image
	DebugDrawBoxes bool
	// Logger receives progress and failure reports. Nil uses a logrus
	// logger writing to stderr.
	Logger logrus.FieldLogger

	// Resource paths searched for images that are not found where they point
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// PageSize is a standard paper size in millimetres, portrait form.
type PageSize = layout.PageSize

// Unit is a physical length unit.
type Unit = layout.Unit

// DefaultDPI is the resolution assumed for images by default.
const DefaultDPI = 300

// Units
const (
	UnitMM   = layout.UnitMM
	UnitCM   = layout.UnitCM
	UnitPt   = layout.UnitPt
	UnitInch = layout.UnitInch
)

// Standard page sizes
var (
	PageSizeA3     = layout.PageSizeA3
	PageSizeA4     = layout.PageSizeA4
	PageSizeA5     = layout.PageSizeA5
	PageSizeLetter = layout.PageSizeLetter
	PageSizeLegal  = layout.PageSizeLegal
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// A4 in millimetres, no margins: images touch the page edge
		PageSize: PageSizeA4,
		Unit:     UnitMM,

		DPI: DefaultDPI,

		ResourcePaths: []string{},
	}
}

// WithPageSize sets the canonical page size
func WithPageSize(size PageSize) Option {
	return func(o *Options) {
		o.PageSize = size
	}
}

// WithPageSizeName sets the page size by preset name; unknown names are
// ignored.
func WithPageSizeName(name string) Option {
	return func(o *Options) {
		if ps, err := layout.PageSizeByName(name); err == nil {
			o.PageSize = ps
		}
	}
}

// WithUnit sets the document unit
func WithUnit(unit Unit) Option {
	return func(o *Options) {
		o.Unit = unit
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithMargin sets the same margin on every side
func WithMargin(m float64) Option {
	return WithMargins(m, m, m, m)
}

// WithDPI sets the DPI
func WithDPI(dpi float64) Option {
	return func(o *Options) {
		o.DPI = dpi
	}
}

// WithEmbeddedDPI makes the converter prefer resolutions stored in images
func WithEmbeddedDPI(use bool) Option {
	return func(o *Options) {
		o.UseEmbeddedDPI = use
	}
}

// WithConcurrency sets the number of images prepared in parallel
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithContinueOnError skips failing images instead of aborting
func WithContinueOnError(cont bool) Option {
	return func(o *Options) {
		o.ContinueOnError = cont
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithResourcePath adds a path to search for images
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}
