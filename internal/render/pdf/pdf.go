package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/gompdf/pdfpackman/internal/layout"
	"github.com/gompdf/pdfpackman/internal/pagination"
	"github.com/sirupsen/logrus"
)

// ErrNoPages is returned when none of the pages can be rendered.
var ErrNoPages = errors.New("no renderable pages")

// Renderer handles rendering to PDF
type Renderer struct {
	// Unit of the planned pages; must match the layout engine.
	Unit layout.Unit
	// DebugDrawBoxes outlines every placed image and marks the page center
	DebugDrawBoxes bool

	Logger logrus.FieldLogger
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Result tells which pages made it into the document.
type Result struct {
	Rendered []*pagination.Page
	Skipped  []*pagination.Page
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Renderer{
		Unit:   layout.UnitMM,
		Logger: l,
	}
}

// Render writes one page per successfully planned image to w, in page order.
// Failed pages are skipped and listed in the result.
func (r *Renderer) Render(pages []*pagination.Page, w io.Writer, options RenderOptions) (*Result, error) {
	result := &Result{}
	for _, p := range pages {
		if p.OK() {
			result.Rendered = append(result.Rendered, p)
		} else {
			result.Skipped = append(result.Skipped, p)
		}
	}
	if len(result.Rendered) == 0 {
		return result, ErrNoPages
	}

	first := result.Rendered[0].Plan
	orient, size := pageFormat(first)
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orient,
		UnitStr:        string(r.Unit),
		Size:           size,
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)

	for _, p := range result.Rendered {
		r.renderPage(doc, p)
		if err := doc.Error(); err != nil {
			return result, fmt.Errorf("failed to render %s: %w", p.Source, err)
		}
	}

	if err := doc.Output(w); err != nil {
		return result, fmt.Errorf("failed to write PDF: %w", err)
	}
	return result, nil
}

// RenderFile renders to outputPath, creating its directory when needed.
// The file is only written when rendering succeeds.
func (r *Renderer) RenderFile(pages []*pagination.Page, outputPath string, options RenderOptions) (*Result, error) {
	var buf bytes.Buffer
	result, err := r.Render(pages, &buf, options)
	if err != nil {
		return result, err
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return result, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return result, fmt.Errorf("failed to write output file: %w", err)
	}
	return result, nil
}

func (r *Renderer) renderPage(doc *fpdf.Fpdf, p *pagination.Page) {
	plan := p.Plan
	orient, size := pageFormat(plan)
	doc.AddPageFormat(orient, size)

	name := fmt.Sprintf("img%d", p.Index)
	doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: p.Image.Type}, bytes.NewReader(p.Image.Data))

	x, y := plan.Position.X, plan.Position.Y
	w, h := plan.ImageWidth(), plan.ImageHeight()
	doc.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: p.Image.Type}, 0, "")

	if r.DebugDrawBoxes {
		doc.SetDrawColor(200, 0, 0)
		doc.SetLineWidth(layout.Convert(0.5, layout.UnitPt, r.Unit))
		doc.Rect(x, y, w, h, "D")

		cx, cy := plan.PageWidth()/2, plan.PageHeight()/2
		d := layout.Convert(6, layout.UnitPt, r.Unit)
		doc.SetDrawColor(0, 0, 200)
		doc.Line(cx-d, cy, cx+d, cy)
		doc.Line(cx, cy-d, cx, cy+d)
	}

	r.Logger.WithFields(logrus.Fields{
		"image": p.Source,
		"page":  doc.PageNo(),
		"x":     x,
		"y":     y,
		"w":     w,
		"h":     h,
	}).Debug("placed image")
}

// pageFormat returns the fpdf orientation code and the page size in the
// portrait form fpdf expects; fpdf swaps the sides for "L".
func pageFormat(plan *layout.LayoutPlan) (string, fpdf.SizeType) {
	w, h := plan.Orientation.Dimensions()
	kind := plan.Orientation.Kind
	if kind == layout.Landscape {
		return kind.Code(), fpdf.SizeType{Wd: h, Ht: w}
	}
	return kind.Code(), fpdf.SizeType{Wd: w, Ht: h}
}
