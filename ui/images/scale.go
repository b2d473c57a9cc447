package images

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = imaging.Encode(&buf, img, imaging.PNG)
	return buf.Bytes()
}

// ScaleToFit scales src so it fits within maxW x maxH preserving aspect ratio.
// Smaller sources are scaled up; the result always touches one bound.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return src
	}
	if w == maxW && h <= maxH || h == maxH && w <= maxW {
		return src
	}
	if w > maxW || h > maxH {
		return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
	}
	// upscale: pick the limiting side, let imaging keep the ratio
	if float64(maxW)/float64(w) <= float64(maxH)/float64(h) {
		return imaging.Resize(src, maxW, 0, imaging.Linear)
	}
	return imaging.Resize(src, 0, maxH, imaging.Linear)
}
