package presenter

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/soocke/signdetect-go/config"
)

// SettingsForm carries the raw text of the editable settings fields.
type SettingsForm struct {
	DelayMs       string
	MinConfidence string
	MaxConfidence string
	Labels        string // comma separated
}

// DelaySetter receives the detection delay.
type DelaySetter interface{ SetDelay(time.Duration) }

// DetectorTuner receives the detector's draw parameters.
type DetectorTuner interface {
	SetConfidenceRange(minConf, maxConf float64)
	SetLabels([]string)
}

// SettingsPresenter applies edits from the settings panel to the running
// session and persists them.
type SettingsPresenter struct {
	cfg      *config.Config
	cfgPath  string
	delay    DelaySetter
	detector DetectorTuner
	logger   *slog.Logger
}

func NewSettingsPresenter(cfg *config.Config, cfgPath string, delay DelaySetter, detector DetectorTuner, logger *slog.Logger) *SettingsPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SettingsPresenter{cfg: cfg, cfgPath: cfgPath, delay: delay, detector: detector, logger: logger}
}

// Form renders the current configuration into form text.
func (p *SettingsPresenter) Form() SettingsForm {
	if p == nil || p.cfg == nil {
		return SettingsForm{}
	}
	return SettingsForm{
		DelayMs:       strconv.Itoa(p.cfg.DetectionDelayMs),
		MinConfidence: strconv.FormatFloat(p.cfg.MinConfidence, 'f', 2, 64),
		MaxConfidence: strconv.FormatFloat(p.cfg.MaxConfidence, 'f', 2, 64),
		Labels:        strings.Join(p.cfg.Labels, ", "),
	}
}

// Apply parses form, validates the result and, when it is usable, pushes it
// to the session and saves it. Unparseable fields keep their current value
// and are reported in the returned error. The config is left untouched when
// validation fails.
func (p *SettingsPresenter) Apply(form SettingsForm) error {
	if p == nil || p.cfg == nil {
		return nil
	}
	cfg := *p.cfg
	cfg.Labels = append([]string(nil), p.cfg.Labels...)
	var errs error
	if v := strings.TrimSpace(form.DelayMs); v != "" {
		if ms, err := strconv.Atoi(v); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "detection delay"))
		} else {
			cfg.DetectionDelayMs = ms
		}
	}
	parseConf := func(name, v string, dst *float64) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, name))
			return
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			errs = multierr.Append(errs, errors.Errorf("%s: %q is not a finite number", name, v))
			return
		}
		*dst = f
	}
	parseConf("min confidence", form.MinConfidence, &cfg.MinConfidence)
	parseConf("max confidence", form.MaxConfidence, &cfg.MaxConfidence)
	if strings.TrimSpace(form.Labels) != "" {
		cfg.Labels = strings.Split(form.Labels, ",")
	}
	if err := cfg.Validate(); err != nil {
		p.logger.Warn("settings rejected", "error", err)
		return multierr.Append(errs, err)
	}
	*p.cfg = cfg
	if p.delay != nil {
		p.delay.SetDelay(cfg.DetectionDelay())
	}
	if p.detector != nil {
		p.detector.SetConfidenceRange(cfg.MinConfidence, cfg.MaxConfidence)
		p.detector.SetLabels(cfg.Labels)
	}
	p.logger.Info("settings applied",
		"delay_ms", cfg.DetectionDelayMs,
		"min_confidence", cfg.MinConfidence,
		"max_confidence", cfg.MaxConfidence,
		"labels", len(cfg.Labels),
	)
	if p.cfgPath != "" {
		if err := p.cfg.Save(p.cfgPath); err != nil {
			p.logger.Error("config save failed", "error", err)
			return multierr.Append(errs, err)
		}
		p.logger.Info("config saved", "path", p.cfgPath)
	}
	return errs
}
