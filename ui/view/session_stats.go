package view

import (
	"fmt"
	"time"

	"github.com/soocke/signdetect-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows camera-on durations and the number of detections.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration)
	SetDetections(n string)
}

type sessionStats struct {
	sessionLbl    *LabelWidget
	totalLbl      *LabelWidget
	detectionsLbl *LabelWidget
}

// NewSessionStats creates the three labels side by side at (row, startCol..startCol+2) of parent.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	p := theme.CurrentPalette()
	s := &sessionStats{
		sessionLbl:    Label(Width(14), Foreground(p.Text), Background(p.AppBg)),
		totalLbl:      Label(Width(14), Foreground(p.Text), Background(p.AppBg)),
		detectionsLbl: Label(Width(16), Foreground(p.Text), Background(p.AppBg)),
	}
	for i, l := range []*LabelWidget{s.sessionLbl, s.totalLbl, s.detectionsLbl} {
		Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.SetSession(0)
	s.SetTotal(0)
	s.SetDetections("0")
	return s
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + mmss(d)))
}

func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt("Total: " + mmss(d)))
}

func (s *sessionStats) SetDetections(n string) {
	if s == nil || s.detectionsLbl == nil {
		return
	}
	s.detectionsLbl.Configure(Txt("Detections: " + n))
}
