package presenter

import (
	"testing"

	"github.com/google/uuid"

	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/palette"
)

func TestDetectionPresenter_StatusLines(t *testing.T) {
	sess := &mockSession{}
	view := &mockDetectionView{}
	p := NewDetectionPresenter(sess, sess, nil, view, nil)

	p.Tick()
	if len(view.statuses) != 1 || view.statuses[0] != StatusIdle || view.enabled {
		t.Fatalf("idle tick: statuses=%v enabled=%v", view.statuses, view.enabled)
	}
	p.Tick()
	if len(view.statuses) != 1 || view.enabledCalls != 1 {
		t.Fatalf("unchanged tick should not redraw: statuses=%v enabledCalls=%d", view.statuses, view.enabledCalls)
	}

	sess.snap.State = detection.StateActive
	p.Tick()
	if view.statuses[len(view.statuses)-1] != StatusReady || !view.enabled {
		t.Fatalf("active tick: statuses=%v enabled=%v", view.statuses, view.enabled)
	}

	sess.snap.State = detection.StateDetecting
	p.Tick()
	if view.statuses[len(view.statuses)-1] != StatusProcessing || !view.italic || view.enabled {
		t.Fatalf("detecting tick: statuses=%v italic=%v enabled=%v", view.statuses, view.italic, view.enabled)
	}
}

func TestDetectionPresenter_ResultCard(t *testing.T) {
	sess := &mockSession{}
	view := &mockDetectionView{}
	p := NewDetectionPresenter(sess, sess, nil, view, nil)
	sess.snap = detection.Snapshot{
		State:  detection.StateActive,
		Result: &detection.Result{Label: "Please", Confidence: 0.879, RequestID: uuid.New()},
	}
	p.Tick()
	p.Tick()
	if len(view.cards) != 1 {
		t.Fatalf("expected one result card, got %d", len(view.cards))
	}
	card := view.cards[0]
	if card.Label != "Please" || card.Percent != "87%" || card.Colors.Text != palette.SuccessText {
		t.Fatalf("unexpected card %+v", card)
	}

	// camera off clears back to the idle status
	sess.snap = detection.Snapshot{State: detection.StateIdle}
	p.Tick()
	if view.statuses[len(view.statuses)-1] != StatusIdle {
		t.Fatalf("expected idle status after clear, got %v", view.statuses)
	}
}

func TestDetectionPresenter_Detect(t *testing.T) {
	sess := &mockSession{accept: false}
	p := NewDetectionPresenter(sess, sess, nil, &mockDetectionView{}, nil)
	p.Detect()
	sess.accept = true
	p.Detect()
	if sess.requests != 2 {
		t.Fatalf("expected 2 requests, got %d", sess.requests)
	}
}

func TestFormatPercent_Truncates(t *testing.T) {
	cases := map[float64]string{0.70: "70%", 0.949: "94%", 0.999: "99%", 0: "0%"}
	for in, want := range cases {
		if got := FormatPercent(in); got != want {
			t.Fatalf("FormatPercent(%v)=%s want %s", in, got, want)
		}
	}
	if NewResultCard("x", 0.70).Colors.Text != palette.WarningText {
		t.Fatalf("0.70 is not above the threshold")
	}
}

func TestDetectionPresenter_DarkScheme(t *testing.T) {
	sess := &mockSession{}
	view := &mockDetectionView{}
	p := NewDetectionPresenter(sess, sess, nil, view, nil)
	p.SetScheme(palette.SchemeFor(true))
	sess.snap = detection.Snapshot{
		State:  detection.StateActive,
		Result: &detection.Result{Label: "Hello", Confidence: 0.5, RequestID: uuid.New()},
	}
	p.Tick()
	if len(view.cards) != 1 {
		t.Fatalf("expected one result card, got %d", len(view.cards))
	}
	if want := palette.SchemeFor(true).ResultColors(0.5); view.cards[0].Colors != want {
		t.Fatalf("card colours %+v want %+v", view.cards[0].Colors, want)
	}
}
