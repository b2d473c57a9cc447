package detection

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// State enumerates the phases of a detection session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateDetecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateDetecting:
		return "detecting"
	default:
		return "unknown"
	}
}

// Mode is the user-chosen processing mode. It is recorded on results but does
// not influence how they are produced.
type Mode int

const (
	ModeCameraOnly Mode = iota
	ModeGloveOnly
	ModeCombined
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeCameraOnly, ModeGloveOnly, ModeCombined}

// ErrUnknownMode is returned for mode values or names outside the enum.
var ErrUnknownMode = errors.New("unknown processing mode")

func (m Mode) String() string {
	switch m {
	case ModeCameraOnly:
		return "Camera Only"
	case ModeGloveOnly:
		return "Glove Only"
	case ModeCombined:
		return "Combined"
	default:
		return "unknown"
	}
}

// Description is the subtitle shown next to the mode name.
func (m Mode) Description() string {
	switch m {
	case ModeCameraOnly:
		return "(MediaPipe + TensorFlow)"
	case ModeGloveOnly:
		return "(Flex + Gyro Sensors)"
	case ModeCombined:
		return "(All Sensors + Vision)"
	default:
		return ""
	}
}

// Valid reports whether m is one of Modes.
func (m Mode) Valid() bool { return m >= ModeCameraOnly && m <= ModeCombined }

// ParseMode resolves a mode by its display name, ignoring case and surrounding space.
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(name)
	for _, m := range Modes {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return ModeCombined, ErrUnknownMode
}

// Result is one completed detection.
type Result struct {
	Label      string
	Confidence float64
	Mode       Mode
	RequestID  uuid.UUID
	DetectedAt time.Time
}

// Snapshot is a consistent copy of the observable session state.
// Result is non-nil only in StateActive, after a detection has completed and
// before the next request or camera-off.
type Snapshot struct {
	State     State
	Mode      Mode
	Result    *Result
	Completed uint64
}

// CameraActive reports whether the simulated camera is on.
func (s Snapshot) CameraActive() bool { return s.State != StateIdle }

// Processing reports whether a detection request is in flight.
func (s Snapshot) Processing() bool { return s.State == StateDetecting }

// DetectedLabel returns the last label, or "" when there is no result.
func (s Snapshot) DetectedLabel() string {
	if s.Result == nil {
		return ""
	}
	return s.Result.Label
}

// Confidence returns the last confidence and whether a result exists.
func (s Snapshot) Confidence() (float64, bool) {
	if s.Result == nil {
		return 0, false
	}
	return s.Result.Confidence, true
}

// Detector produces a result for an accepted detection request.
type Detector interface {
	Detect(ctx context.Context, mode Mode, requestID uuid.UUID) (Result, error)
}

// StateListener is called on each state transition.
type StateListener func(prev, next State)

// Interface slices for consumers (presenters).
type SessionSource interface{ Snapshot() Snapshot }
type CameraControl interface {
	ToggleCamera() bool
}
type DetectionTrigger interface {
	RequestDetection() bool
}
type ModeControl interface {
	SelectMode(Mode) error
}
type SessionLifecycle interface {
	Close()
}

// ControllerContract aggregate for DI.
type ControllerContract interface {
	SessionSource
	CameraControl
	DetectionTrigger
	ModeControl
	SessionLifecycle
	SetDelay(time.Duration)
	AddListener(StateListener)
}
