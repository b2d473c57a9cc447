package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
)

func TestScaleToFit_Downscale(t *testing.T) {
	src := imaging.New(200, 100, color.White)
	out := ScaleToFit(src, 50, 50)
	if b := out.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Fatalf("expected 50x25, got %v", b)
	}
}

func TestScaleToFit_Upscale(t *testing.T) {
	src := imaging.New(10, 20, color.White)
	out := ScaleToFit(src, 40, 100)
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 80 {
		t.Fatalf("expected 40x80, got %v", b)
	}
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("nil source should return nil")
	}
}

func TestEncodePNG(t *testing.T) {
	data := EncodePNG(imaging.New(3, 2, color.Black))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
}

func TestComposePreview_PlaceholderAndBorder(t *testing.T) {
	out := ComposePreview(nil, 80, 45, false)
	if b := out.Bounds(); b.Dx() != 80 || b.Dy() != 45 {
		t.Fatalf("unexpected size %v", b)
	}
	center := out.NRGBAAt(40, 22)
	ph := Placeholder(1, 1).NRGBAAt(0, 0)
	if center != ph {
		t.Fatalf("center should be placeholder %v, got %v", ph, center)
	}
	top, bottom := out.NRGBAAt(0, 0), out.NRGBAAt(0, 44)
	if top == bottom {
		t.Fatalf("border should be a gradient, got %v at both ends", top)
	}
}

func TestComposePreview_DimsWhileProcessing(t *testing.T) {
	frame := imaging.New(200, 100, color.White)
	idle := ComposePreview(frame, 100, 60, false)
	busy := ComposePreview(frame, 100, 60, true)
	p := image.Pt(50, 30)
	a, b := idle.NRGBAAt(p.X, p.Y), busy.NRGBAAt(p.X, p.Y)
	if a.R < 240 {
		t.Fatalf("idle frame should stay bright, got %v", a)
	}
	if b.R >= a.R {
		t.Fatalf("processing frame should be dimmer: idle=%v busy=%v", a, b)
	}
}
