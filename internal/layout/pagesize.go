package layout

import (
	"fmt"
	"sort"
	"strings"
)

// PageSize is a standard paper size, stored in portrait form in millimetres.
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in millimetres
var (
	PageSizeA3     = PageSize{Width: 297, Height: 420, Name: "A3"}
	PageSizeA4     = PageSize{Width: 210, Height: 297, Name: "A4"}
	PageSizeA5     = PageSize{Width: 148, Height: 210, Name: "A5"}
	PageSizeLetter = PageSize{Width: 215.9, Height: 279.4, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 215.9, Height: 355.6, Name: "Legal"}
)

var pageSizes = map[string]PageSize{
	"a3":     PageSizeA3,
	"a4":     PageSizeA4,
	"a5":     PageSizeA5,
	"letter": PageSizeLetter,
	"legal":  PageSizeLegal,
}

// PageSizeByName looks up a preset, ignoring case.
func PageSizeByName(name string) (PageSize, error) {
	ps, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PageSize{}, fmt.Errorf("unknown page size %q (known: %s)", name, strings.Join(PageSizeNames(), ", "))
	}
	return ps, nil
}

// PageSizeNames lists the preset names in sorted order.
func PageSizeNames() []string {
	names := make([]string, 0, len(pageSizes))
	for n := range pageSizes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ShortEdge returns the shorter side in u.
func (p PageSize) ShortEdge(u Unit) float64 {
	return Convert(min(p.Width, p.Height), UnitMM, u)
}

// LongEdge returns the longer side in u.
func (p PageSize) LongEdge(u Unit) float64 {
	return Convert(max(p.Width, p.Height), UnitMM, u)
}

func (p PageSize) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%gx%gmm", p.Width, p.Height)
}
