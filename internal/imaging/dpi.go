package imaging

import (
	"bytes"
	"encoding/binary"
	"math"
)

// detectDPI extracts the horizontal resolution from image data.
// Supports JPEG (JFIF APP0 density), PNG (pHYs) and TIFF (IFD XResolution).
// Returns 0 if the resolution cannot be determined.
func detectDPI(data []byte) float64 {
	if len(data) < 8 {
		return 0
	}
	switch {
	case data[0] == 0xFF && data[1] == 0xD8:
		return detectJPEGDPI(data)
	case bytes.HasPrefix(data, pngSignature):
		return detectPNGDPI(data)
	case (data[0] == 'I' && data[1] == 'I') || (data[0] == 'M' && data[1] == 'M'):
		return detectTIFFDPI(data)
	}
	return 0
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func detectJPEGDPI(data []byte) float64 {
	i := 2
	for i+4 < len(data) {
		if data[i] != 0xFF {
			break
		}
		marker := data[i+1]
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if marker == 0xDA { // start of scan
			break
		}
		if marker == 0xE0 && segLen >= 14 && i+4+10 <= len(data) {
			seg := data[i+4:]
			if string(seg[0:5]) == "JFIF\x00" {
				units := seg[7]
				xd := float64(binary.BigEndian.Uint16(seg[8:10]))
				switch units {
				case 1: // dots per inch
					return xd
				case 2: // dots per cm
					return xd * 2.54
				}
				return 0
			}
		}
		i += 2 + segLen
	}
	return 0
}

func detectPNGDPI(data []byte) float64 {
	i := len(pngSignature)
	for i+8 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[i : i+4]))
		typ := string(data[i+4 : i+8])
		body := i + 8
		if typ == "IDAT" || typ == "IEND" || body+n > len(data) {
			break
		}
		if typ == "pHYs" && n >= 9 {
			ppu := binary.BigEndian.Uint32(data[body : body+4])
			if data[body+8] == 1 { // pixels per metre
				return math.Round(float64(ppu) * 0.0254)
			}
			return 0
		}
		i = body + n + 4 // skip CRC
	}
	return 0
}

func detectTIFFDPI(data []byte) float64 {
	var bo binary.ByteOrder
	if data[0] == 'I' {
		bo = binary.LittleEndian
	} else {
		bo = binary.BigEndian
	}
	if bo.Uint16(data[2:4]) != 42 {
		return 0
	}
	ifdOff := int(bo.Uint32(data[4:8]))
	if ifdOff+2 > len(data) {
		return 0
	}

	var (
		xres float64
		unit uint16 = 2 // inches
	)
	n := int(bo.Uint16(data[ifdOff : ifdOff+2]))
	for i := 0; i < n; i++ {
		off := ifdOff + 2 + i*12
		if off+12 > len(data) {
			break
		}
		switch bo.Uint16(data[off : off+2]) {
		case 282: // XResolution (RATIONAL)
			valOff := int(bo.Uint32(data[off+8 : off+12]))
			if valOff+8 > len(data) {
				return 0
			}
			num := bo.Uint32(data[valOff : valOff+4])
			den := bo.Uint32(data[valOff+4 : valOff+8])
			if den == 0 {
				return 0
			}
			xres = float64(num) / float64(den)
		case 296: // ResolutionUnit (SHORT)
			unit = bo.Uint16(data[off+8 : off+10])
		}
	}
	switch unit {
	case 2:
		return xres
	case 3: // centimetres
		return xres * 2.54
	}
	return 0
}
