package presenter

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/model"
)

// SessionView displays camera-on durations and the detection count.
type SessionView interface {
	SetSession(session, total time.Duration, detections string)
}

// SessionPresenter advances the session model from the controller snapshot and
// pushes the values to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	source detection.SessionSource
	view   SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, source detection.SessionSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, source: source, view: view}
}

func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.source == nil || p.view == nil {
		return
	}
	snap := p.source.Snapshot()
	p.sess.OnTick(snap.CameraActive(), snap.Completed, now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t, humanize.Comma(int64(p.sess.Detections())))
}
