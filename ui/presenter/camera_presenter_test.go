package presenter

import "testing"

func TestCameraPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockCameraModel{}
	sess := &mockSession{}
	feed := &mockFeed{}
	view := &mockCameraView{}
	p := NewCameraPresenter(m, sess, feed, view, nil)

	p.Enable()
	if !m.On() || feed.started != 1 || sess.toggles != 1 || view.lastEditable || view.editableCalls != 1 || !view.lastButton {
		t.Fatalf("enable failed: on=%v started=%d toggles=%d editableCalls=%d lastEditable=%v button=%v", m.On(), feed.started, sess.toggles, view.editableCalls, view.lastEditable, view.lastButton)
	}
	p.Enable()
	if feed.started != 1 || sess.toggles != 1 {
		t.Fatalf("enable not idempotent: started=%d toggles=%d", feed.started, sess.toggles)
	}

	p.Disable()
	if m.On() || feed.stopped != 1 || sess.toggles != 2 || view.reset != 1 || !view.lastEditable || view.editableCalls != 2 || view.lastButton {
		t.Fatalf("disable failed: on=%v stopped=%d toggles=%d reset=%d editableCalls=%d lastEditable=%v", m.On(), feed.stopped, sess.toggles, view.reset, view.editableCalls, view.lastEditable)
	}
	p.Disable()
	if feed.stopped != 1 || sess.toggles != 2 || view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d toggles=%d reset=%d", feed.stopped, sess.toggles, view.reset)
	}
}

func TestCameraPresenter_Toggle(t *testing.T) {
	m := &mockCameraModel{}
	sess := &mockSession{}
	feed := &mockFeed{}
	view := &mockCameraView{}
	p := NewCameraPresenter(m, sess, feed, view, nil)
	p.Toggle()
	if !m.On() || feed.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle()
	if m.On() || feed.stopped != 1 || view.reset != 1 {
		t.Fatalf("toggle disable failed")
	}
	if view.buttonCalls != 2 {
		t.Fatalf("expected 2 button updates, got %d", view.buttonCalls)
	}
}

func TestCameraPresenter_NilSafe(t *testing.T) {
	var p *CameraPresenter
	p.Toggle()
	p.Enable()
	p.Disable()
	NewCameraPresenter(nil, nil, nil, nil, nil).Toggle()
}
