package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the sub-presenters and invokes a scheduler callback. The zero
// value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	State    *StatePresenter
	Detect   *DetectionPresenter
	Preview  *PreviewPresenter
	Schedule func()
	Now      func() time.Time
}

func NewLoop(sess *SessionPresenter, state *StatePresenter, detect *DetectionPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, State: state, Detect: detect, Preview: preview, Schedule: schedule, Now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	// State first so the label never lags the results card.
	if l.State != nil {
		l.State.Tick()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Detect != nil {
		l.Detect.Tick()
	}
	if l.Preview != nil {
		l.Preview.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
