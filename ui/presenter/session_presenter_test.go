package presenter

import (
	"testing"
	"time"

	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/model"
)

func TestSessionPresenter_Tick(t *testing.T) {
	sess := &mockSession{}
	view := &mockSessionView{}
	p := NewSessionPresenter(model.NewSessionModel(), sess, view)
	base := time.Unix(100, 0)

	sess.snap.State = detection.StateActive
	p.Tick(base)
	sess.snap.Completed = 1234
	p.Tick(base.Add(90 * time.Second))
	if view.session != 90*time.Second || view.total != 90*time.Second {
		t.Fatalf("unexpected durations %v %v", view.session, view.total)
	}
	if view.detections != "1,234" {
		t.Fatalf("expected humanized count, got %q", view.detections)
	}
}
