package view

import (
	"image"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/signdetect-go/ui/palette"
	"github.com/soocke/signdetect-go/ui/presenter"
	"github.com/soocke/signdetect-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view forwards.
type Handlers struct {
	ToggleCamera  func()
	Detect        func()
	ModeChanged   func(name string)
	ApplySettings func(presenter.SettingsForm) error
	Exit          func()
}

// RootView composes the top-level layout and implements the view contracts of
// the presenters.
type RootView struct {
	logger        *slog.Logger
	previewWidth  int
	previewHeight int

	// Subviews
	Session  SessionStats
	Settings SettingsPanel
	Preview  CameraPreview
	Results  ResultsCard

	// Widgets
	StateLabel *TLabelWidget
	ModeSelect *TComboboxWidget
	ModeDesc   *LabelWidget
	cameraBtn  *ButtonWidget
	detectBtn  *ButtonWidget
}

func NewRootView(logger *slog.Logger, previewWidth, previewHeight int) *RootView {
	return &RootView{logger: logger, previewWidth: previewWidth, previewHeight: previewHeight}
}

// Build constructs the layout. modes are the combobox entries, initialMode the
// preselected one and form the initial settings text.
func (rv *RootView) Build(modes []string, initialMode string, form presenter.SettingsForm, h Handlers) {
	if rv == nil {
		return
	}
	p := theme.CurrentPalette()
	header := Label(Txt("Sign Language Detection"), Font("Helvetica", 18, "bold"), Foreground("white"), Background(p.Header), Padx("4m"), Pady("2m"))
	Grid(header, Row(0), Column(0), Columnspan(2), Sticky("we"))

	body := Frame(Background(p.AppBg))
	Grid(body, Row(1), Column(0), Sticky("nwe"), Padx("1m"), Pady("1m"))

	rv.Preview = NewCameraPreview(body, 0, rv.previewWidth, rv.previewHeight, h.ToggleCamera)

	btns := Frame(Background(p.AppBg))
	Grid(btns, In(body), Row(3), Column(0), Columnspan(2), Sticky("we"), Pady("0.6m"))
	rv.cameraBtn = Button(Txt("Start Camera"), Command(h.ToggleCamera), Width(16), Foreground("white"), Background(theme.CameraOffButton))
	Grid(rv.cameraBtn, In(btns), Row(0), Column(0), Sticky("we"), Padx("0.4m"))
	rv.detectBtn = Button(Txt("Detect Sign"), Command(h.Detect), Width(16), Foreground("white"), Background(p.Primary), State("disabled"))
	Grid(rv.detectBtn, In(btns), Row(0), Column(1), Sticky("we"), Padx("0.4m"))

	modeFrame := Frame(Background(p.AppBg))
	Grid(modeFrame, In(body), Row(4), Column(0), Columnspan(2), Sticky("we"), Pady("0.4m"))
	Grid(Label(Txt("Processing Mode"), Font("Helvetica", 11, "bold"), Foreground(p.Text), Background(p.AppBg)), In(modeFrame), Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	rv.ModeSelect = TCombobox(Values(modes), Width(18), State("readonly"), Style(theme.StyleCombobox))
	Grid(rv.ModeSelect, In(modeFrame), Row(0), Column(1), Sticky("w"), Padx("0.4m"))
	rv.ModeDesc = Label(Txt(""), Foreground(p.TextMuted), Background(p.AppBg))
	Grid(rv.ModeDesc, In(modeFrame), Row(0), Column(2), Sticky("w"), Padx("0.4m"))
	for i, m := range modes {
		if m == initialMode {
			rv.ModeSelect.Current(i)
		}
	}
	Bind(rv.ModeSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.ModeSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(modes) {
			if rv.logger != nil {
				rv.logger.Error("mode selection parse error", "error", err)
			}
			return
		}
		if h.ModeChanged != nil {
			h.ModeChanged(modes[idx])
		}
	}))

	rv.Results = NewResultsCard(body, 5)

	// Right column: state, stats, settings, exit
	side := Frame(Background(p.AppBg))
	Grid(side, Row(1), Column(1), Sticky("nwe"), Padx("1m"), Pady("1m"))
	rv.StateLabel = TLabel(Txt("State: <none>"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(side), Row(0), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Session = NewSessionStats(side, 1, 0)

	settings := Frame(Background(p.AppBg))
	Grid(settings, In(side), Row(2), Column(0), Columnspan(3), Sticky("we"), Pady("0.6m"))
	rv.Settings = NewSettingsPanel(rv.logger, h.ApplySettings)
	end := rv.Settings.Build(settings, 0)
	rv.Settings.Fill(form)

	exitBtn := Button(Txt("Exit"), Command(h.Exit))
	Grid(exitBtn, In(settings), Row(end), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.6m"))
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// --- CameraPresenter view contract ---

func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

func (rv *RootView) ConfigEditable(b bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(b)
	}
}

// SetCameraButton switches the camera button between its start and stop looks.
func (rv *RootView) SetCameraButton(on bool) {
	if rv == nil || rv.cameraBtn == nil {
		return
	}
	if on {
		rv.cameraBtn.Configure(Txt("Stop Camera"), Background(theme.CameraOnButton))
		return
	}
	rv.cameraBtn.Configure(Txt("Start Camera"), Background(theme.CameraOffButton))
}

// --- DetectionPresenter view contract ---

func (rv *RootView) SetDetectEnabled(enabled bool) {
	if rv == nil || rv.detectBtn == nil {
		return
	}
	if enabled {
		rv.detectBtn.Configure(State("normal"), Background(theme.CurrentPalette().Primary))
		return
	}
	rv.detectBtn.Configure(State("disabled"), Background(palette.Disabled))
}

func (rv *RootView) ShowStatus(text string, processing bool) {
	if rv != nil && rv.Results != nil {
		rv.Results.ShowStatus(text, processing)
	}
}

func (rv *RootView) ShowResult(card presenter.ResultCard) {
	if rv != nil && rv.Results != nil {
		rv.Results.ShowResult(card)
	}
}

// --- PreviewPresenter view contract ---

func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

func (rv *RootView) SetPreviewCaption(title, subtitle string) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.SetCaption(title, subtitle)
	}
}

// --- ModePresenter / SessionPresenter view contracts ---

func (rv *RootView) SetModeDescription(desc string) {
	if rv != nil && rv.ModeDesc != nil {
		rv.ModeDesc.Configure(Txt(desc))
	}
}

func (rv *RootView) SetSession(session, total time.Duration, detections string) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
	rv.Session.SetDetections(detections)
}

var (
	_ presenter.CameraView    = (*RootView)(nil)
	_ presenter.DetectionView = (*RootView)(nil)
	_ presenter.PreviewView   = (*RootView)(nil)
	_ presenter.StateView     = (*RootView)(nil)
	_ presenter.ModeView      = (*RootView)(nil)
	_ presenter.SessionView   = (*RootView)(nil)
)
