package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const eps = 1e-9

func TestPixelsToPageUnits(t *testing.T) {
	tests := []struct {
		name   string
		pixels float64
		dpi    float64
		unit   Unit
		want   float64
	}{
		{"one inch in mm", 300, 300, UnitMM, 25.4},
		{"one inch in pt", 72, 72, UnitPt, 72},
		{"half inch in in", 150, 300, UnitInch, 0.5},
		{"one inch in cm", 96, 96, UnitCM, 2.54},
		{"100px at 72dpi", 100, 72, UnitMM, 35.27777777777778},
		{"zero pixels", 0, 300, UnitMM, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PixelsToPageUnits(tt.pixels, tt.dpi, tt.unit)
			if err != nil {
				t.Fatalf("PixelsToPageUnits() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("PixelsToPageUnits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelsToPageUnitsInvalidDPI(t *testing.T) {
	for _, dpi := range []float64{0, -72, math.NaN(), math.Inf(1)} {
		if _, err := PixelsToPageUnits(100, dpi, UnitMM); !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("dpi %v: error = %v, want ErrInvalidResolution", dpi, err)
		}
	}
}

func TestSelectOrientation(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want Orientation
	}{
		{"wide", 100, 50, NewLandscape(297, 210)},
		{"barely wide", 100.0001, 100, NewLandscape(297, 210)},
		{"tall", 50, 100, NewPortrait(210, 297)},
		{"square", 50, 50, NewPortrait(210, 297)},
		{"extreme panorama", 10000, 1, NewLandscape(297, 210)},
		{"extreme strip", 1, 10000, NewPortrait(210, 297)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectOrientation(tt.w, tt.h, PageSizeA4, UnitMM)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SelectOrientation() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectOrientationUsesPageSize(t *testing.T) {
	got := SelectOrientation(4, 3, PageSizeLetter, UnitPt)
	w, h := got.Dimensions()
	if got.Kind != Landscape || math.Abs(w-792) > 1e-6 || math.Abs(h-612) > 1e-6 {
		t.Errorf("SelectOrientation() = %+v, want landscape 792x612", got)
	}
}

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		o    Orientation
		want float64
	}{
		{"width bound", 35.27777777777778, 17.63888888888889, NewLandscape(297, 210), 297 / 35.27777777777778},
		{"height bound", 10, 40, NewPortrait(210, 297), 297.0 / 40},
		{"exact fit", 210, 297, NewPortrait(210, 297), 1},
		{"shrink", 420, 594, NewPortrait(210, 297), 0.5},
		{"square on landscape", 50, 50, NewLandscape(200, 100), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeScale(tt.w, tt.h, tt.o)
			if err != nil {
				t.Fatalf("ComputeScale() error = %v", err)
			}
			if math.Abs(got-tt.want) > eps {
				t.Errorf("ComputeScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeScaleInvalid(t *testing.T) {
	o := NewPortrait(210, 297)
	for _, dims := range [][2]float64{{0, 10}, {10, 0}, {-1, 10}, {10, math.NaN()}, {math.Inf(1), 10}} {
		if _, err := ComputeScale(dims[0], dims[1], o); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("ComputeScale(%v, %v) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestComputeScaleFits(t *testing.T) {
	sizes := []float64{1, 3, 17.5, 50, 210, 297, 1000, 12345.6}
	orients := []Orientation{NewPortrait(210, 297), NewLandscape(297, 210), NewLandscape(200, 100)}
	for _, o := range orients {
		pw, ph := o.Dimensions()
		for _, w := range sizes {
			for _, h := range sizes {
				s, err := ComputeScale(w, h, o)
				if err != nil {
					t.Fatalf("ComputeScale(%v, %v) error = %v", w, h, err)
				}
				if s*w > pw+eps || s*h > ph+eps {
					t.Errorf("%vx%v on %+v: scaled %vx%v overflows", w, h, o, s*w, s*h)
				}
				if math.Abs(s*w-pw) > eps && math.Abs(s*h-ph) > eps {
					t.Errorf("%vx%v on %+v: scaled %vx%v touches no edge", w, h, o, s*w, s*h)
				}

				p := ComputePosition(w, h, o, s)
				if p.X < -eps || p.Y < -eps {
					t.Errorf("%vx%v on %+v: negative position %+v", w, h, o, p)
				}
				if p.X+s*w > pw+eps || p.Y+s*h > ph+eps {
					t.Errorf("%vx%v on %+v: position %+v overflows", w, h, o, p)
				}
			}
		}
	}
}

func TestComputePosition(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		o     Orientation
		scale float64
		want  Position
	}{
		{"square on landscape", 50, 50, NewLandscape(200, 100), 2.0, Position{X: 50, Y: 0}},
		{"exact fit", 210, 297, NewPortrait(210, 297), 1, Position{}},
		{"tall on portrait", 10, 40, NewPortrait(210, 297), 297.0 / 40, Position{X: (210 - 74.25) / 2, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePosition(tt.w, tt.h, tt.o, tt.scale)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("ComputePosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlanLayoutWideImage(t *testing.T) {
	plan, err := PlanLayout(100, 50, 72)
	if err != nil {
		t.Fatalf("PlanLayout() error = %v", err)
	}
	if diff := cmp.Diff(NewLandscape(297, 210), plan.Orientation); diff != "" {
		t.Errorf("orientation mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(plan.PhysicalWidth-35.28) > 0.01 || math.Abs(plan.PhysicalHeight-17.64) > 0.01 {
		t.Errorf("physical size = %vx%v, want ~35.28x17.64", plan.PhysicalWidth, plan.PhysicalHeight)
	}
	if math.Abs(plan.Scale-8.42) > 0.01 {
		t.Errorf("Scale = %v, want ~8.42", plan.Scale)
	}
	if math.Abs(plan.Position.X) > 1e-6 {
		t.Errorf("Position.X = %v, want 0", plan.Position.X)
	}
	if plan.Position.Y <= 0 {
		t.Errorf("Position.Y = %v, want > 0", plan.Position.Y)
	}
	if math.Abs(plan.ImageWidth()-297) > 1e-6 {
		t.Errorf("ImageWidth() = %v, want 297", plan.ImageWidth())
	}
	if plan.DPI != 72 || plan.Unit != UnitMM {
		t.Errorf("DPI/Unit = %v/%v, want 72/mm", plan.DPI, plan.Unit)
	}
}

func TestPlanLayoutSquareIsPortrait(t *testing.T) {
	plan, err := PlanLayout(50, 50, 300)
	if err != nil {
		t.Fatalf("PlanLayout() error = %v", err)
	}
	if plan.Orientation.Kind != Portrait {
		t.Errorf("Kind = %v, want portrait", plan.Orientation.Kind)
	}
	if math.Abs(plan.Position.X) > 1e-6 || math.Abs(plan.Position.Y-43.5) > 1e-6 {
		t.Errorf("Position = %+v, want {0 43.5}", plan.Position)
	}
}

func TestPlanLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		dpi  float64
		want error
	}{
		{"zero width", 0, 50, 72, ErrInvalidDimension},
		{"negative height", 50, -1, 72, ErrInvalidDimension},
		{"NaN width", math.NaN(), 50, 72, ErrInvalidDimension},
		{"zero dpi", 50, 50, 0, ErrInvalidResolution},
		{"negative dpi", 50, 50, -300, ErrInvalidResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanLayout(tt.w, tt.h, tt.dpi)
			if plan != nil {
				t.Errorf("PlanLayout() plan = %+v, want nil", plan)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("PlanLayout() error = %v, want %v", err, tt.want)
			}
			var pe *PlanError
			if !errors.As(err, &pe) {
				t.Fatalf("PlanLayout() error %T is not *PlanError", err)
			}
			if pe.DPI != tt.dpi {
				t.Errorf("PlanError.DPI = %v, want %v", pe.DPI, tt.dpi)
			}
		})
	}
}

func TestPlanLayoutIdempotent(t *testing.T) {
	a, err := PlanLayout(1234, 987, 150)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlanLayout(1234, 987, 150)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated plans differ (-first +second):\n%s", diff)
	}
}

func TestEngineMargins(t *testing.T) {
	e := NewEngineWithOptions(Options{
		PageSize: PageSizeA4,
		Margins:  UniformMargins(10),
		Unit:     UnitMM,
	})

	plan, err := e.Plan(300, 300, 300)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	// 190x277 content box, square image bound by width.
	if math.Abs(plan.Scale-190/25.4) > eps {
		t.Errorf("Scale = %v, want %v", plan.Scale, 190/25.4)
	}
	if math.Abs(plan.Position.X-10) > eps || math.Abs(plan.Position.Y-(10+(277-190)/2.0)) > eps {
		t.Errorf("Position = %+v, want {10 53.5}", plan.Position)
	}
	if plan.PageWidth() != 210 || plan.PageHeight() != 297 {
		t.Errorf("page = %vx%v, want 210x297", plan.PageWidth(), plan.PageHeight())
	}
}

func TestEngineMarginsTooLarge(t *testing.T) {
	tests := []struct {
		name    string
		margins Margins
	}{
		{"wider than page", UniformMargins(105)},
		{"infinite", UniformMargins(math.Inf(1))},
		{"infinite left", Margins{Left: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngineWithOptions(Options{Margins: tt.margins})
			if _, err := e.Plan(10, 10, 72); !errors.Is(err, ErrMarginsTooLarge) {
				t.Errorf("Plan() error = %v, want ErrMarginsTooLarge", err)
			}
		})
	}
}

func TestEngineSetOptionsDefaults(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{
			"negative margin clamped",
			Options{Margins: Margins{Top: -5, Left: 3}},
			Options{PageSize: PageSizeA4, Unit: UnitMM, Margins: Margins{Left: 3}},
		},
		{
			"nan margins clamped",
			Options{Margins: UniformMargins(nan)},
			Options{PageSize: PageSizeA4, Unit: UnitMM},
		},
		{
			"infinite page width",
			Options{PageSize: PageSize{Width: inf, Height: 100}},
			Options{PageSize: PageSizeA4, Unit: UnitMM},
		},
		{
			"nan page height",
			Options{PageSize: PageSize{Width: 100, Height: nan}},
			Options{PageSize: PageSizeA4, Unit: UnitMM},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngineWithOptions(tt.in)
			if diff := cmp.Diff(tt.want, e.Options()); diff != "" {
				t.Errorf("Options() mismatch (-want +got):\n%s", diff)
			}
			plan, err := e.Plan(100, 50, 72)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}
			if !validLength(plan.Scale) || math.IsNaN(plan.Position.X) || math.IsInf(plan.Position.X, 0) {
				t.Errorf("Plan() = %+v, want finite scale and position", plan)
			}
		})
	}
}

func TestPageSizeByName(t *testing.T) {
	ps, err := PageSizeByName(" Letter ")
	if err != nil {
		t.Fatalf("PageSizeByName() error = %v", err)
	}
	if ps != PageSizeLetter {
		t.Errorf("PageSizeByName() = %v, want Letter", ps)
	}
	if _, err := PageSizeByName("b5"); err == nil {
		t.Error("PageSizeByName(b5) expected error")
	}
}
