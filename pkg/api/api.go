package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gompdf/pdfpackman/internal/layout"
	"github.com/gompdf/pdfpackman/internal/pagination"
	"github.com/gompdf/pdfpackman/internal/render/pdf"
	"github.com/gompdf/pdfpackman/internal/res"
	"github.com/sirupsen/logrus"
)

// LayoutPlan is the page size, scale and position computed for one image.
type LayoutPlan = layout.LayoutPlan

// Converter is the main API for converting images to PDF
type Converter struct {
	options Options
	logger  logrus.FieldLogger
}

// Report lists what happened to every input image, in input order.
type Report struct {
	Rendered []string
	Failed   []Failure
}

// Failure is an input image that did not make it into the document.
type Failure struct {
	Index  int
	Source string
	Err    error
}

// New creates a new image to PDF converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new converter with the specified options
func NewWithOptions(options Options) *Converter {
	return &Converter{
		options: options,
		logger:  newLogger(options),
	}
}

func newLogger(options Options) logrus.FieldLogger {
	if options.Logger != nil {
		return options.Logger
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if options.Debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Options returns a copy of the converter options
func (c *Converter) Options() Options {
	return c.options
}

// WithOptions returns a new converter with the specified options
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new converter with the specified options applied
func (c *Converter) WithOption(opts ...Option) *Converter {
	newOptions := c.options
	newOptions.ResourcePaths = append([]string(nil), c.options.ResourcePaths...)
	for _, opt := range opts {
		opt(&newOptions)
	}
	return NewWithOptions(newOptions)
}

// SetDebug returns a new converter with debug mode set
func (c *Converter) SetDebug(debug bool) *Converter {
	return c.WithOption(WithDebug(debug))
}

// PlanLayout computes the page layout for a widthPx x heightPx image at dpi
// using the converter's page size, margins and unit.
func (c *Converter) PlanLayout(widthPx, heightPx, dpi float64) (*LayoutPlan, error) {
	return layout.NewEngineWithOptions(c.layoutOptions()).Plan(widthPx, heightPx, dpi)
}

// Convert converts the images named by sources (paths, URLs or data URLs)
// into one PDF written to output, one image per page in source order.
func (c *Converter) Convert(ctx context.Context, sources []string, output io.Writer) (*Report, error) {
	pages, err := c.paginate(ctx, sources)
	if err != nil {
		return nil, err
	}

	renderer := c.renderer()
	result, err := renderer.Render(pages, output, c.renderOptions())
	report := c.report(result)
	if err != nil {
		return report, fmt.Errorf("failed to render PDF: %w", err)
	}
	return report, nil
}

// ConvertFiles converts the images and writes the result to outputPath
func (c *Converter) ConvertFiles(ctx context.Context, sources []string, outputPath string) (*Report, error) {
	pages, err := c.paginate(ctx, sources)
	if err != nil {
		return nil, err
	}

	result, err := c.renderer().RenderFile(pages, outputPath, c.renderOptions())
	report := c.report(result)
	if err != nil {
		return report, fmt.Errorf("failed to render PDF: %w", err)
	}
	c.logger.WithFields(logrus.Fields{
		"output": outputPath,
		"pages":  len(report.Rendered),
		"failed": len(report.Failed),
	}).Info("wrote PDF")
	return report, nil
}

// ConvertBytes converts the images and returns the PDF bytes
func (c *Converter) ConvertBytes(ctx context.Context, sources []string) ([]byte, *Report, error) {
	var buf bytes.Buffer
	report, err := c.Convert(ctx, sources, &buf)
	if err != nil {
		return nil, report, err
	}
	return buf.Bytes(), report, nil
}

func (c *Converter) paginate(ctx context.Context, sources []string) ([]*pagination.Page, error) {
	loader := res.NewLoader("")
	for _, path := range c.options.ResourcePaths {
		loader.AddSearchPath(path)
	}

	engine := pagination.NewEngine(loader)
	engine.SetOptions(pagination.Options{
		Layout:          c.layoutOptions(),
		DPI:             c.options.DPI,
		UseEmbeddedDPI:  c.options.UseEmbeddedDPI,
		Concurrency:     c.options.Concurrency,
		ContinueOnError: c.options.ContinueOnError,
		Logger:          c.logger,
	})

	c.logger.WithFields(logrus.Fields{
		"images":    len(sources),
		"page_size": c.options.PageSize,
		"dpi":       c.options.DPI,
	}).Debug("planning pages")

	pages, err := engine.Paginate(ctx, sources)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if err := p.Failure(); err != nil {
			c.logger.WithError(err).WithField("image", p.Source).Warn("skipping image")
		}
	}
	return pages, nil
}

func (c *Converter) layoutOptions() layout.Options {
	return layout.Options{
		PageSize: c.options.PageSize,
		Unit:     c.unit(),
		Margins: layout.Margins{
			Top:    c.options.MarginTop,
			Right:  c.options.MarginRight,
			Bottom: c.options.MarginBottom,
			Left:   c.options.MarginLeft,
		},
	}
}

func (c *Converter) unit() layout.Unit {
	if u, ok := layout.ParseUnit(string(c.options.Unit)); ok {
		return u
	}
	return layout.UnitMM
}

func (c *Converter) renderer() *pdf.Renderer {
	r := pdf.NewRenderer()
	r.Unit = c.unit()
	r.DebugDrawBoxes = c.options.DebugDrawBoxes
	r.Logger = c.logger
	return r
}

func (c *Converter) renderOptions() pdf.RenderOptions {
	return pdf.RenderOptions{
		Title:    c.options.Title,
		Author:   c.options.Author,
		Subject:  c.options.Subject,
		Keywords: c.options.Keywords,
		Creator:  "pdfpackman",
		Producer: "pdfpackman",
	}
}

func (c *Converter) report(result *pdf.Result) *Report {
	report := &Report{}
	if result == nil {
		return report
	}
	for _, p := range result.Rendered {
		report.Rendered = append(report.Rendered, p.Source)
	}
	for _, p := range result.Skipped {
		report.Failed = append(report.Failed, Failure{Index: p.Index, Source: p.Source, Err: p.Err})
	}
	return report
}
