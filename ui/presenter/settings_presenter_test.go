package presenter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soocke/signdetect-go/config"
)

func TestSettingsPresenter_ApplyAndSave(t *testing.T) {
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "cfg.json")
	sess := &mockSession{}
	tuner := &mockTuner{}
	p := NewSettingsPresenter(cfg, path, sess, tuner, nil)

	err := p.Apply(SettingsForm{DelayMs: "750", MinConfidence: "0.5", MaxConfidence: "0.9", Labels: " Yes , No,Yes"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if sess.delay != 750*time.Millisecond {
		t.Fatalf("delay not pushed: %v", sess.delay)
	}
	if tuner.min != 0.5 || tuner.max != 0.9 {
		t.Fatalf("range not pushed: %v %v", tuner.min, tuner.max)
	}
	if len(tuner.labels) != 2 || tuner.labels[0] != "Yes" || tuner.labels[1] != "No" {
		t.Fatalf("labels not cleaned: %v", tuner.labels)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil || loaded.DetectionDelayMs != 750 {
		t.Fatalf("reload: %v %+v", err, loaded)
	}
	if f := p.Form(); f.DelayMs != "750" || f.Labels != "Yes, No" {
		t.Fatalf("form does not reflect config: %+v", f)
	}
}

func TestSettingsPresenter_BadFieldsKeepValues(t *testing.T) {
	cfg := config.DefaultConfig()
	sess := &mockSession{}
	p := NewSettingsPresenter(cfg, "", sess, &mockTuner{}, nil)
	err := p.Apply(SettingsForm{DelayMs: "soon", MinConfidence: "0.6"})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg.DetectionDelayMs != 2000 || cfg.MinConfidence != 0.6 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSettingsPresenter_EmptyLabelsRejected(t *testing.T) {
	cfg := config.DefaultConfig()
	tuner := &mockTuner{}
	p := NewSettingsPresenter(cfg, "", &mockSession{}, tuner, nil)
	if err := p.Apply(SettingsForm{Labels: " , ,"}); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(cfg.Labels) != len(config.DefaultLabels) || tuner.labels != nil {
		t.Fatalf("config should be untouched, got %v", cfg.Labels)
	}
}

func TestSettingsPresenter_NonFiniteConfidenceRejected(t *testing.T) {
	cfg := config.DefaultConfig()
	tuner := &mockTuner{}
	p := NewSettingsPresenter(cfg, "", &mockSession{}, tuner, nil)
	for _, in := range []string{"NaN", "nan", "Inf", "-Inf"} {
		if err := p.Apply(SettingsForm{MinConfidence: in, MaxConfidence: in}); err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if cfg.MinConfidence != 0.70 || cfg.MaxConfidence != 0.95 {
			t.Fatalf("%q leaked into config: [%v, %v)", in, cfg.MinConfidence, cfg.MaxConfidence)
		}
		if tuner.min != 0.70 || tuner.max != 0.95 {
			t.Fatalf("%q leaked into detector: [%v, %v)", in, tuner.min, tuner.max)
		}
	}
}
