package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/gompdf/pdfpackman"
	"github.com/gompdf/pdfpackman/internal/config"
	"github.com/gompdf/pdfpackman/internal/layout"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(".env")
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	var (
		outputFile  string
		dpi         float64
		embeddedDPI bool
		pageSize    string
		unit        string
		margin      float64
		title       string
		author      string
		subject     string
		keywords    string
		cont        bool
		jobs        int
		verbose     bool
		debugBoxes  bool
	)

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&outputFile, "o", cfg.Output, "Output PDF file path (shorthand)")
	fs.StringVar(&outputFile, "output", cfg.Output, "Output PDF file path")
	fs.Float64Var(&dpi, "dpi", cfg.DPI, "Resolution assumed for the images")
	fs.BoolVar(&embeddedDPI, "embedded-dpi", false, "Prefer the resolution stored in each image")
	fs.StringVar(&pageSize, "page", cfg.PageSize, "Page size: "+strings.Join(layout.PageSizeNames(), ", "))
	fs.StringVar(&unit, "unit", string(layout.UnitMM), "Unit for margins: mm, cm, pt or in")
	fs.Float64Var(&margin, "margin", cfg.Margin, "Margin on every side of the page")
	fs.StringVar(&title, "title", "", "Document title")
	fs.StringVar(&author, "author", "", "Document author")
	fs.StringVar(&subject, "subject", "", "Document subject")
	fs.StringVar(&keywords, "keywords", "", "Document keywords")
	fs.BoolVar(&cont, "continue", false, "Skip images that cannot be converted")
	fs.IntVar(&jobs, "j", cfg.Concurrency, "Images prepared in parallel (0 = one per CPU)")
	fs.BoolVar(&verbose, "v", false, "Enable verbose logging")
	fs.BoolVar(&debugBoxes, "debug-boxes", false, "Outline placed images")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] FILE...\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	images := fs.Args()
	if len(images) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one input image is required")
		fs.Usage()
		os.Exit(1)
	}

	ps, err := layout.PageSizeByName(pageSize)
	if err != nil {
		log.WithError(err).Fatal("invalid page size")
	}
	u, ok := layout.ParseUnit(unit)
	if !ok {
		log.WithField("unit", unit).Fatal("invalid unit")
	}
	if !validDPI(dpi) {
		log.WithField("dpi", dpi).Fatal("dpi must be positive")
	}

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := pdfpackman.DefaultOptions()
	opts.PageSize = ps
	opts.Unit = u
	opts.MarginTop, opts.MarginRight, opts.MarginBottom, opts.MarginLeft = margin, margin, margin, margin
	opts.DPI = dpi
	opts.UseEmbeddedDPI = embeddedDPI
	opts.Concurrency = jobs
	opts.ContinueOnError = cont
	opts.Debug = verbose
	opts.DebugDrawBoxes = debugBoxes
	opts.Logger = log
	opts.Title = title
	opts.Author = author
	opts.Subject = subject
	opts.Keywords = keywords

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	converter := pdfpackman.NewWithOptions(opts)
	report, err := converter.ConvertFiles(ctx, images, outputFile)
	if err != nil {
		log.WithError(err).Error("conversion failed")
		stop()
		os.Exit(1)
	}

	for _, f := range report.Failed {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", f.Source, f.Err)
	}
	if verbose {
		fmt.Printf("Successfully converted %d image(s) to %s\n", len(report.Rendered), outputFile)
	}
}

// validDPI reports whether dpi is positive and finite.
func validDPI(dpi float64) bool {
	return dpi > 0 && !math.IsInf(dpi, 0)
}
