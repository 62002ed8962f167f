package imaging

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVG user units are CSS pixels.
const svgDPI = 96

func readSVG(data []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return icon, nil
}

func svgPixelSize(icon *oksvg.SvgIcon) (int, int) {
	return int(math.Ceil(icon.ViewBox.W)), int(math.Ceil(icon.ViewBox.H))
}

// rasterizeSVG renders the document at its intrinsic size.
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := readSVG(data)
	if err != nil {
		return nil, err
	}
	if err := checkSize(icon.ViewBox.W, icon.ViewBox.H); err != nil {
		return nil, err
	}
	w, h := svgPixelSize(icon)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has no size (view box %gx%g)", icon.ViewBox.W, icon.ViewBox.H)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}
