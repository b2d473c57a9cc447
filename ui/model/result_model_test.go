package model

import (
	"testing"

	"github.com/google/uuid"

	"github.com/soocke/signdetect-go/domain/detection"
)

func TestResultModel_SetReportsChanges(t *testing.T) {
	m := NewResultModel()
	if m.Set(nil) {
		t.Fatalf("clearing an empty model should not report a change")
	}
	r := &detection.Result{Label: "Hello", Confidence: 0.8, RequestID: uuid.New()}
	if !m.Set(r) {
		t.Fatalf("first result should be a change")
	}
	if m.Set(r) {
		t.Fatalf("same result should not be a change")
	}
	label, conf, ok := m.Shown()
	if !ok || label != "Hello" || conf != 0.8 {
		t.Fatalf("unexpected shown result %q %v %v", label, conf, ok)
	}
	// same label from a new request still redraws
	next := &detection.Result{Label: "Hello", Confidence: 0.8, RequestID: uuid.New()}
	if !m.Set(next) {
		t.Fatalf("new request should be a change")
	}
	if !m.Set(nil) {
		t.Fatalf("clearing should be a change")
	}
	if _, _, ok := m.Shown(); ok {
		t.Fatalf("expected nothing shown after clear")
	}
}

func TestCameraModel(t *testing.T) {
	var m CameraModel
	if m.On() {
		t.Fatalf("zero value should be off")
	}
	if !m.SetOn(true) || m.SetOn(true) {
		t.Fatalf("SetOn should report only real changes")
	}
	if !m.On() {
		t.Fatalf("expected on")
	}
}
