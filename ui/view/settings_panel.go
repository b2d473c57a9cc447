package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/signdetect-go/ui/palette"
	"github.com/soocke/signdetect-go/ui/presenter"
	"github.com/soocke/signdetect-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel is the form for detection settings. Apply hands the raw text
// to a callback that validates and persists it.
type SettingsPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int)
	SetEditable(enabled bool)
	Fill(form presenter.SettingsForm)
}

type settingsPanel struct {
	logger   *slog.Logger
	onApply  func(presenter.SettingsForm) error
	applyBtn *TButtonWidget
	errLabel *LabelWidget
	widgets  map[string]*TextWidget
}

// NewSettingsPanel creates the panel; onApply receives the form on "Apply Changes".
func NewSettingsPanel(logger *slog.Logger, onApply func(presenter.SettingsForm) error) SettingsPanel {
	return &settingsPanel{logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(parent *FrameWidget, startRow int) (row int) {
	row = startRow
	p := theme.CurrentPalette()
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"), Foreground(p.Text), Background(p.AppBg))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(28), Background(p.Surface), Foreground(p.Text))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[id] = w
		row++
	}
	makeRow("delay", "Detection Delay (ms)")
	makeRow("min", "Min Confidence")
	makeRow("max", "Max Confidence")
	makeRow("labels", "Labels (comma separated)")
	v.applyBtn = TButton(Txt("Apply Changes"), Command(v.apply), Style(theme.StylePrimaryButton))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	v.errLabel = Label(Txt(""), Foreground(palette.Stop), Background(p.AppBg), Anchor("w"))
	Grid(v.errLabel, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))
	row++
	return row
}

func (v *settingsPanel) Fill(form presenter.SettingsForm) {
	set := func(id, value string) {
		if w := v.widgets[id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", value)
		}
	}
	set("delay", form.DelayMs)
	set("min", form.MinConfidence)
	set("max", form.MaxConfidence)
	set("labels", form.Labels)
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(id string) string {
	w := v.widgets[id]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (v *settingsPanel) apply() {
	if v.onApply == nil {
		return
	}
	err := v.onApply(presenter.SettingsForm{
		DelayMs:       v.text("delay"),
		MinConfidence: v.text("min"),
		MaxConfidence: v.text("max"),
		Labels:        v.text("labels"),
	})
	msg := ""
	if err != nil {
		msg = err.Error()
		if v.logger != nil {
			v.logger.Warn("settings apply failed", "error", err)
		}
	}
	if v.errLabel != nil {
		v.errLabel.Configure(Txt(msg))
	}
}
