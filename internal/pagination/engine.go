package pagination

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/gompdf/pdfpackman/internal/imaging"
	"github.com/gompdf/pdfpackman/internal/layout"
	"github.com/gompdf/pdfpackman/internal/res"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// DefaultDPI is assumed for images when no resolution is configured.
const DefaultDPI = 300

// ErrNoImages is returned when there is nothing to paginate.
var ErrNoImages = errors.New("no input images")

// ErrPanic wraps a panic recovered while preparing a single image.
var ErrPanic = errors.New("panic while preparing image")

// Options represents options for the pagination engine
type Options struct {
	Layout layout.Options

	// DPI used to convert pixels to page units.
	DPI float64
	// UseEmbeddedDPI prefers the resolution stored in the image file.
	UseEmbeddedDPI bool

	// Concurrency is the number of images prepared in parallel.
	// Zero means GOMAXPROCS.
	Concurrency int
	// ContinueOnError keeps failed images in the result instead of
	// aborting the batch.
	ContinueOnError bool

	Logger logrus.FieldLogger
}

// Engine turns a list of image sources into planned pages
type Engine struct {
	options Options
	layout  *layout.Engine
	loader  *res.Loader
}

// NewEngine creates a new pagination engine
func NewEngine(loader *res.Loader) *Engine {
	e := &Engine{loader: loader}
	e.SetOptions(Options{
		Layout: layout.DefaultOptions(),
		DPI:    DefaultDPI,
	})
	return e
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	if options.Concurrency <= 0 {
		options.Concurrency = runtime.GOMAXPROCS(0)
	}
	if options.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		options.Logger = l
	}
	e.options = options
	e.layout = layout.NewEngineWithOptions(options.Layout)
}

// Paginate loads, inspects and plans every source on a worker pool. The
// returned pages are in source order. Unless ContinueOnError is set, the
// first failure in source order is returned as an *ImageError.
func (e *Engine) Paginate(ctx context.Context, sources []string) ([]*Page, error) {
	if len(sources) == 0 {
		return nil, ErrNoImages
	}

	pool, err := ants.NewPool(min(e.options.Concurrency, len(sources)))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	pages := make([]*Page, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			pages[i] = &Page{Index: i, Source: src, Err: err}
			continue
		}
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					pages[i] = &Page{Index: i, Source: src, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
				}
			}()
			pages[i] = e.paginateOne(ctx, i, src)
		})
		if err != nil {
			wg.Done()
			pages[i] = &Page{Index: i, Source: src, Err: err}
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !e.options.ContinueOnError {
		for _, p := range pages {
			if p.Err != nil {
				return nil, p.Failure()
			}
		}
	}
	return pages, nil
}

func (e *Engine) paginateOne(ctx context.Context, i int, src string) *Page {
	page := &Page{Index: i, Source: src}
	log := e.options.Logger.WithField("image", src)

	if err := ctx.Err(); err != nil {
		page.Err = err
		return page
	}

	resource, err := e.loader.LoadImage(ctx, src)
	if err != nil {
		page.Err = fmt.Errorf("load: %w", err)
		return page
	}
	info, err := imaging.Inspect(resource.Data)
	if err != nil {
		page.Err = err
		return page
	}
	page.Info = info

	dpi := e.resolveDPI(info)
	plan, err := e.layout.Plan(float64(info.Width), float64(info.Height), dpi)
	if err != nil {
		page.Err = err
		return page
	}
	page.Plan = plan

	img, err := imaging.Prepare(resource.Data, info.Format)
	if err != nil {
		page.Err = err
		return page
	}
	page.Image = img

	log.WithFields(logrus.Fields{
		"format":      info.Format,
		"pixels":      fmt.Sprintf("%dx%d", info.Width, info.Height),
		"dpi":         dpi,
		"orientation": plan.Orientation.Kind,
		"scale":       plan.Scale,
	}).Debug("planned page")
	return page
}

func (e *Engine) resolveDPI(info imaging.Info) float64 {
	if e.options.UseEmbeddedDPI && info.DPI > 0 {
		return info.DPI
	}
	return e.options.DPI
}
