package imaging

import (
	"errors"
	"fmt"
)

const (
	// maxImageDimension caps the width and height an image header may claim.
	maxImageDimension = 32768
	// maxImagePixels keeps decoded RGBA buffers under 256 MB.
	maxImagePixels = 64 * 1024 * 1024
)

// ErrImageTooLarge is returned for images whose claimed size exceeds the
// decoding limits.
var ErrImageTooLarge = errors.New("image too large")

// checkSize rejects sizes that would exhaust memory when decoded, and NaN.
// Sizes are taken as floats so SVG view boxes are checked before conversion
// to int.
func checkSize(width, height float64) error {
	if !(width <= maxImageDimension) || !(height <= maxImageDimension) {
		return fmt.Errorf("%w: %gx%g exceeds %d per side", ErrImageTooLarge, width, height, maxImageDimension)
	}
	if width*height > maxImagePixels {
		return fmt.Errorf("%w: %g pixels exceeds %d", ErrImageTooLarge, width*height, maxImagePixels)
	}
	return nil
}
