package model

import (
	"time"
)

// SessionModel tracks how long the camera has been on in the current and all
// past sessions, plus the number of detections completed. Presenters poll
// Values and Detections and push them to the view. The zero value is ready to use.
type SessionModel struct {
	active      bool
	cameraStart time.Time
	current     time.Duration
	accumulated time.Duration
	detections  uint64
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model with the camera state and completed-detection
// count observed at now.
func (m *SessionModel) OnTick(cameraOn bool, completed uint64, now time.Time) {
	if m == nil {
		return
	}
	if completed > m.detections {
		m.detections = completed
	}
	switch {
	case cameraOn && !m.active:
		m.active = true
		m.cameraStart = now
		m.current = 0
	case cameraOn:
		m.current = now.Sub(m.cameraStart)
	case m.active:
		m.current = now.Sub(m.cameraStart)
		m.accumulated += m.current
		m.active = false
	}
}

// Values returns the current session duration and the total camera-on time.
// The total includes the ongoing session when active.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.current
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}

// Detections returns the number of completed detections seen so far.
func (m *SessionModel) Detections() uint64 {
	if m == nil {
		return 0
	}
	return m.detections
}
