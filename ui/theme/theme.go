package theme

// Tk styling for the detection screen. Colours come from ui/palette so the
// same values can be used by headless image composition.

import (
	"github.com/soocke/signdetect-go/ui/palette"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Button backgrounds for the camera toggle.
const (
	CameraOffButton = "#000000"
	CameraOnButton  = palette.Stop
)

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() palette.Scheme { return palette.SchemeFor(darkMode) }

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleStateLabel    = "state.TLabel"
	StyleCombobox      = "mode.TCombobox"
	StyleBarSuccess    = "success.Horizontal.TProgressbar"
	StyleBarWarning    = "warning.Horizontal.TProgressbar"
)

var darkMode bool

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles()
	return darkMode
}

// BarStyle maps a result bar colour to its progressbar style.
func BarStyle(bar string) string {
	if bar == palette.Success {
		return StyleBarSuccess
	}
	return StyleBarWarning
}

func applyStyles() {
	p := CurrentPalette()
	_ = ActivateTheme("azure light")
	App.Configure(Background(p.AppBg))
	StyleConfigure("TLabel", Background(p.AppBg), Foreground(p.Text))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(p.Primary),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleCombobox,
		Foreground(p.Text),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleBarSuccess, Background(palette.Success))
	StyleConfigure(StyleBarWarning, Background(palette.Warning))
}
