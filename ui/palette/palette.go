// Package palette holds the semantic colours of the detection screen and the
// colour rules for results. It has no Tk dependency so it can be tested headless.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Core palette.
const (
	DeepPurple       = "#5b2a86"
	IndependenceBlue = "#4c516d"
	LightPurple      = "#c3b1e1"
	SoftGray         = "#f4f4f8"
	DarkGray         = "#2d2d34"
	Surface          = "#ffffff"
	Stop             = "#e53e3e"
	Success          = "#4caf50"
	SuccessText      = "#2e7d32"
	Warning          = "#ff9800"
	WarningText      = "#e65100"
	Disabled         = "#9e9e9e"
)

// HighConfidence is the threshold above which a result is shown as a success.
const HighConfidence = 0.7

// ResultColors describes how a result card is tinted.
type ResultColors struct {
	Background string
	Text       string
	Bar        string
}

// ForConfidence returns the result colours for conf on the light scheme.
func ForConfidence(conf float64) ResultColors {
	return SchemeFor(false).ResultColors(conf)
}

// Scheme is the resolved set of colours for light or dark mode.
type Scheme struct {
	Dark      bool
	AppBg     string
	Surface   string
	Card      string
	Header    string
	Primary   string
	Text      string
	TextMuted string
}

// SchemeFor resolves the light or dark scheme.
func SchemeFor(dark bool) Scheme {
	if dark {
		return Scheme{
			Dark:      true,
			AppBg:     DarkGray,
			Surface:   Tint(DarkGray, IndependenceBlue, 0.3),
			Card:      Tint(DarkGray, IndependenceBlue, 0.15),
			Header:    Tint(DeepPurple, DarkGray, 0.4),
			Primary:   Tint(DeepPurple, LightPurple, 0.3),
			Text:      SoftGray,
			TextMuted: LightPurple,
		}
	}
	return Scheme{
		AppBg:     SoftGray,
		Surface:   Surface,
		Card:      SoftGray,
		Header:    DeepPurple,
		Primary:   DeepPurple,
		Text:      DarkGray,
		TextMuted: IndependenceBlue,
	}
}

// ResultColors returns the result colours for conf: green when above
// HighConfidence, orange otherwise. The card is tinted with the accent. On the
// dark scheme the accent itself is used as text.
func (s Scheme) ResultColors(conf float64) ResultColors {
	accent, text := Warning, WarningText
	if conf > HighConfidence {
		accent, text = Success, SuccessText
	}
	tint := 0.1
	if s.Dark {
		text, tint = accent, 0.2
	}
	return ResultColors{
		Background: Tint(s.Card, accent, tint),
		Text:       text,
		Bar:        accent,
	}
}

// Tint blends over onto base by t in [0,1] and returns the hex colour.
// Unparseable inputs return base unchanged.
func Tint(base, over string, t float64) string {
	b, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	o, err := colorful.Hex(over)
	if err != nil {
		return base
	}
	return b.BlendRgb(o, clamp01(t)).Clamped().Hex()
}

// Gradient returns n colours interpolated in Lab space from one hex colour to another.
func Gradient(from, to string, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		a, b = colorful.Color{}, colorful.Color{}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: bl, A: 0xff}
	}
	return out
}

// RGBA parses a hex colour. Unparseable input yields opaque black.
func RGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
