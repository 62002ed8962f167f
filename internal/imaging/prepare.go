package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// PDF image types understood by the document writer.
const (
	TypeJPEG = "JPG"
	TypePNG  = "PNG"
	TypeGIF  = "GIF"
)

// Embeddable is image data in a form the PDF writer can embed as is.
type Embeddable struct {
	Data []byte
	Type string
}

// Prepare returns data ready for embedding. JPEG, GIF and 8-bit
// non-interlaced PNG pass through; everything else is decoded and
// re-encoded as 8-bit PNG.
func Prepare(data []byte, format string) (Embeddable, error) {
	switch format {
	case FormatJPEG:
		return Embeddable{Data: data, Type: TypeJPEG}, nil
	case FormatGIF:
		return Embeddable{Data: data, Type: TypeGIF}, nil
	case FormatPNG:
		if pngEmbeddable(data) {
			return Embeddable{Data: data, Type: TypePNG}, nil
		}
	case FormatSVG:
		img, err := rasterizeSVG(data)
		if err != nil {
			return Embeddable{}, err
		}
		return encodePNG(img)
	case FormatBMP, FormatTIFF, FormatWebP:
	default:
		return Embeddable{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Embeddable{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := checkSize(float64(cfg.Width), float64(cfg.Height)); err != nil {
		return Embeddable{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Embeddable{}, fmt.Errorf("decode %s: %w", format, err)
	}
	return encodePNG(img)
}

// pngEmbeddable reports whether the PNG header describes an 8-bit (or
// lower), non-interlaced image.
func pngEmbeddable(data []byte) bool {
	// signature(8) + length(4) + "IHDR"(4) + width(4) + height(4) + depth + color + compression + filter + interlace
	if len(data) < 29 || string(data[12:16]) != "IHDR" {
		return false
	}
	depth, interlace := data[24], data[28]
	return depth <= 8 && interlace == 0
}

func encodePNG(img image.Image) (Embeddable, error) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Embeddable{}, fmt.Errorf("encode png: %w", err)
	}
	return Embeddable{Data: buf.Bytes(), Type: TypePNG}, nil
}
