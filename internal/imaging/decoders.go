package imaging

// Register a broad set of image decoders so image.Decode can handle many formats.
// These are blank imports to hook into the init() of respective packages.
import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format names as reported by image.DecodeConfig, plus SVG.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
	FormatSVG  = "svg"
)
