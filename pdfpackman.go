package pdfpackman

import (
	"github.com/gompdf/pdfpackman/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type Report = api.Report
type Failure = api.Failure
type LayoutPlan = api.LayoutPlan
type PageSize = api.PageSize
type Unit = api.Unit

func New() *Converter                           { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithPageSize        = api.WithPageSize
	WithPageSizeName    = api.WithPageSizeName
	WithUnit            = api.WithUnit
	WithMargins         = api.WithMargins
	WithMargin          = api.WithMargin
	WithDPI             = api.WithDPI
	WithEmbeddedDPI     = api.WithEmbeddedDPI
	WithConcurrency     = api.WithConcurrency
	WithContinueOnError = api.WithContinueOnError
	WithDebug           = api.WithDebug
	WithLogger          = api.WithLogger
	WithResourcePath    = api.WithResourcePath
	WithTitle           = api.WithTitle
	WithAuthor          = api.WithAuthor
	WithSubject         = api.WithSubject
	WithKeywords        = api.WithKeywords
)

var (
	PageSizeA3     = api.PageSizeA3
	PageSizeA4     = api.PageSizeA4
	PageSizeA5     = api.PageSizeA5
	PageSizeLetter = api.PageSizeLetter
	PageSizeLegal  = api.PageSizeLegal
)

const (
	DefaultDPI = api.DefaultDPI

	UnitMM   = api.UnitMM
	UnitCM   = api.UnitCM
	UnitPt   = api.UnitPt
	UnitInch = api.UnitInch
)
