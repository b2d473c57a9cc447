package presenter

import (
	"testing"
	"time"

	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/model"
)

func TestLoop_TicksAllAndSchedules(t *testing.T) {
	sess := &mockSession{snap: detection.Snapshot{State: detection.StateActive}}
	stateView := &mockStateView{}
	detView := &mockDetectionView{}
	sessView := &mockSessionView{}
	scheduled := 0
	l := NewLoop(
		NewSessionPresenter(model.NewSessionModel(), sess, sessView),
		NewStatePresenter(stateView),
		NewDetectionPresenter(sess, sess, nil, detView, nil),
		NewPreviewPresenter(&mockFeed{}, sess, &mockPreviewView{}, 40, 30),
		func() { scheduled++ },
	)
	base := time.Unix(0, 0)
	l.Now = func() time.Time { return base }
	l.Tick()
	if scheduled != 1 || len(stateView.labels) != 1 || len(detView.statuses) != 1 || sessView.detections != "0" {
		t.Fatalf("loop did not tick everything: scheduled=%d labels=%v statuses=%v detections=%q", scheduled, stateView.labels, detView.statuses, sessView.detections)
	}
	var nilLoop *Loop
	nilLoop.Tick()
}
