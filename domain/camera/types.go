package camera

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest generated frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// FeedStats summarises generator behaviour for instrumentation.
type FeedStats struct {
	Frames         uint64
	AvgGenerate    time.Duration
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to generated frames.
// LatestFrame returns the freshest snapshot while Running reports activity.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// Lifecycle exposes start/stop control.
type Lifecycle interface {
	Start()
	Stop()
	Running() bool
}
