package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/model"
	"github.com/soocke/signdetect-go/ui/palette"
)

// Status texts shown in the results card when there is no result.
const (
	StatusProcessing = "Processing sign detection..."
	StatusReady      = "Ready for sign detection"
	StatusIdle       = "Start camera to begin detection"
)

// ResultCard is everything the view needs to draw a detection result.
type ResultCard struct {
	Label      string
	Percent    string
	Confidence float64
	Colors     palette.ResultColors
}

// DetectionView describes the results card and the detect button.
type DetectionView interface {
	SetDetectEnabled(bool)
	ShowStatus(text string, processing bool)
	ShowResult(card ResultCard)
}

// DetectionPresenter forwards detect clicks to the session and renders the
// session's result, or a status line when there is none.
type DetectionPresenter struct {
	source  detection.SessionSource
	trigger detection.DetectionTrigger
	results *model.ResultModel
	view    DetectionView
	logger  *slog.Logger
	scheme  palette.Scheme

	primed        bool
	lastStatus    string
	detectEnabled bool
}

// NewDetectionPresenter constructs a detection presenter.
func NewDetectionPresenter(source detection.SessionSource, trigger detection.DetectionTrigger, results *model.ResultModel, view DetectionView, logger *slog.Logger) *DetectionPresenter {
	if results == nil {
		results = model.NewResultModel()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DetectionPresenter{source: source, trigger: trigger, results: results, view: view, logger: logger, scheme: palette.SchemeFor(false)}
}

// SetScheme selects the colour scheme used for later result cards.
func (p *DetectionPresenter) SetScheme(s palette.Scheme) {
	if p != nil {
		p.scheme = s
	}
}

// Detect asks the session for a detection. Declined requests are logged only.
func (p *DetectionPresenter) Detect() {
	if p == nil || p.trigger == nil {
		return
	}
	if !p.trigger.RequestDetection() {
		p.logger.Debug("detect click ignored")
	}
}

// Tick reads the session snapshot and pushes changes to the view.
func (p *DetectionPresenter) Tick() {
	if p == nil || p.source == nil || p.view == nil {
		return
	}
	snap := p.source.Snapshot()

	enabled := snap.State == detection.StateActive
	if !p.primed || enabled != p.detectEnabled {
		p.detectEnabled = enabled
		p.view.SetDetectEnabled(enabled)
	}

	prevLabel, _, hadResult := p.results.Shown()
	changed := p.results.Set(snap.Result)
	if changed && hadResult && snap.Result == nil {
		p.logger.Debug("result cleared", "label", prevLabel)
	}
	if snap.Result != nil {
		if changed {
			p.view.ShowResult(newResultCard(p.scheme, snap.Result.Label, snap.Result.Confidence))
			p.lastStatus = ""
		}
		p.primed = true
		return
	}
	status := StatusText(snap)
	if !p.primed || changed || status != p.lastStatus {
		p.lastStatus = status
		p.view.ShowStatus(status, snap.Processing())
	}
	p.primed = true
}

// StatusText picks the placeholder line for a snapshot without a result.
func StatusText(s detection.Snapshot) string {
	switch {
	case s.Processing():
		return StatusProcessing
	case s.CameraActive():
		return StatusReady
	default:
		return StatusIdle
	}
}

// NewResultCard formats a result with the light scheme. The percentage is
// truncated, not rounded.
func NewResultCard(label string, conf float64) ResultCard {
	return newResultCard(palette.SchemeFor(false), label, conf)
}

func newResultCard(s palette.Scheme, label string, conf float64) ResultCard {
	return ResultCard{
		Label:      label,
		Percent:    FormatPercent(conf),
		Confidence: conf,
		Colors:     s.ResultColors(conf),
	}
}

// FormatPercent renders a confidence in [0,1] as a whole percentage.
func FormatPercent(conf float64) string {
	return fmt.Sprintf("%d%%", int(conf*100))
}
