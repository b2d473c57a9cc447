package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/soocke/signdetect-go/ui/palette"
)

// PreviewBorder is the gradient frame width around the camera image, in pixels.
const PreviewBorder = 4

// processingDim is the brightness change applied while a detection is running.
const processingDim = -35

// ComposePreview renders the camera panel: a purple-to-blue gradient frame
// with the frame scaled into the inner area. A nil frame renders the dark
// placeholder. While processing the frame is dimmed.
func ComposePreview(frame image.Image, w, h int, processing bool) *image.NRGBA {
	if w < 2*PreviewBorder+1 {
		w = 2*PreviewBorder + 1
	}
	if h < 2*PreviewBorder+1 {
		h = 2*PreviewBorder + 1
	}
	canvas := gradientCanvas(w, h)
	innerW, innerH := w-2*PreviewBorder, h-2*PreviewBorder
	inner := Placeholder(innerW, innerH)
	if frame != nil && !frame.Bounds().Empty() {
		scaled := ScaleToFit(frame, innerW, innerH)
		if processing {
			scaled = imaging.AdjustBrightness(scaled, processingDim)
		}
		inner = imaging.PasteCenter(inner, scaled)
	}
	return imaging.Paste(canvas, inner, image.Pt(PreviewBorder, PreviewBorder))
}

// Placeholder is the background shown when no camera frame is available.
func Placeholder(w, h int) *image.NRGBA {
	return imaging.New(w, h, palette.RGBA(palette.DarkGray))
}

func gradientCanvas(w, h int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	stops := palette.Gradient(palette.DeepPurple, palette.IndependenceBlue, h)
	for y, c := range stops {
		for x := 0; x < w; x++ {
			canvas.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return canvas
}
