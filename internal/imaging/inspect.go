package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrUnsupportedFormat is returned for data no registered decoder accepts.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Info describes a decoded image header.
type Info struct {
	Width  int
	Height int
	Format string
	// DPI embedded in the file, or 0 when the file carries none.
	DPI float64
}

// Inspect reads the pixel size, format and embedded resolution of an image
// without decoding its pixels. SVG documents are sized from their view box.
func Inspect(data []byte) (Info, error) {
	if isSVG(data) {
		icon, err := readSVG(data)
		if err != nil {
			return Info{}, err
		}
		if err := checkSize(icon.ViewBox.W, icon.ViewBox.H); err != nil {
			return Info{}, err
		}
		w, h := svgPixelSize(icon)
		return Info{Width: w, Height: h, Format: FormatSVG, DPI: svgDPI}, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, ErrUnsupportedFormat
		}
		return Info{}, fmt.Errorf("decode image header: %w", err)
	}
	if err := checkSize(float64(cfg.Width), float64(cfg.Height)); err != nil {
		return Info{}, err
	}
	return Info{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		DPI:    detectDPI(data),
	}, nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	s := strings.TrimSpace(strings.ToLower(string(head)))
	return (strings.HasPrefix(s, "<?xml") || strings.HasPrefix(s, "<svg") || strings.HasPrefix(s, "<!--") || strings.HasPrefix(s, "<!doctype svg")) &&
		strings.Contains(s, "<svg")
}
