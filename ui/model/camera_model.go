package model

import "sync/atomic"

// CameraModel tracks whether the camera preview is switched on. The zero value
// is off and usable. Button callbacks and presenter ticks may race, hence the atomic.
type CameraModel struct{ on atomic.Bool }

// On reports whether the camera is on.
func (m *CameraModel) On() bool {
	if m == nil {
		return false
	}
	return m.on.Load()
}

// SetOn stores the flag and reports whether it changed.
func (m *CameraModel) SetOn(b bool) bool {
	if m == nil {
		return false
	}
	return m.on.Swap(b) != b
}
