package presenter

import (
	"image"
	"time"

	"github.com/soocke/signdetect-go/domain/camera"
	"github.com/soocke/signdetect-go/domain/detection"
)

type mockCameraModel struct{ on bool }

func (m *mockCameraModel) On() bool { return m.on }
func (m *mockCameraModel) SetOn(b bool) bool {
	changed := m.on != b
	m.on = b
	return changed
}

// mockSession is a scripted controller: tests set snap directly.
type mockSession struct {
	snap      detection.Snapshot
	toggles   int
	requests  int
	accept    bool
	selected  []detection.Mode
	selectErr error
	delay     time.Duration
}

func (s *mockSession) Snapshot() detection.Snapshot { return s.snap }
func (s *mockSession) ToggleCamera() bool {
	s.toggles++
	if s.snap.State == detection.StateIdle {
		s.snap.State = detection.StateActive
		return true
	}
	s.snap.State = detection.StateIdle
	s.snap.Result = nil
	return false
}
func (s *mockSession) RequestDetection() bool {
	s.requests++
	return s.accept
}
func (s *mockSession) SelectMode(m detection.Mode) error {
	if s.selectErr != nil {
		return s.selectErr
	}
	s.selected = append(s.selected, m)
	s.snap.Mode = m
	return nil
}
func (s *mockSession) SetDelay(d time.Duration) { s.delay = d }

type mockFeed struct {
	started, stopped int
	frame            camera.FrameSnapshot
}

func (f *mockFeed) Start()                            { f.started++ }
func (f *mockFeed) Stop()                             { f.stopped++ }
func (f *mockFeed) Running() bool                     { return f.started > f.stopped }
func (f *mockFeed) LatestFrame() camera.FrameSnapshot { return f.frame }

type mockCameraView struct {
	reset, editableCalls, buttonCalls int
	lastEditable, lastButton          bool
}

func (v *mockCameraView) PreviewReset()          { v.reset++ }
func (v *mockCameraView) ConfigEditable(b bool)  { v.editableCalls++; v.lastEditable = b }
func (v *mockCameraView) SetCameraButton(b bool) { v.buttonCalls++; v.lastButton = b }

type mockDetectionView struct {
	enabledCalls int
	enabled      bool
	statuses     []string
	italic       bool
	cards        []ResultCard
}

func (v *mockDetectionView) SetDetectEnabled(b bool) { v.enabledCalls++; v.enabled = b }
func (v *mockDetectionView) ShowStatus(text string, processing bool) {
	v.statuses = append(v.statuses, text)
	v.italic = processing
}
func (v *mockDetectionView) ShowResult(card ResultCard) { v.cards = append(v.cards, card) }

type mockPreviewView struct {
	images   []image.Image
	captions [][2]string
}

func (v *mockPreviewView) UpdatePreview(img image.Image) { v.images = append(v.images, img) }
func (v *mockPreviewView) SetPreviewCaption(title, subtitle string) {
	v.captions = append(v.captions, [2]string{title, subtitle})
}

type mockStateView struct{ labels []string }

func (v *mockStateView) SetStateLabel(s string) { v.labels = append(v.labels, s) }

type mockModeView struct{ desc string }

func (v *mockModeView) SetModeDescription(s string) { v.desc = s }

type mockSessionView struct {
	session, total time.Duration
	detections     string
}

func (v *mockSessionView) SetSession(s, t time.Duration, d string) {
	v.session, v.total, v.detections = s, t, d
}

type mockTuner struct {
	min, max float64
	labels   []string
}

func (t *mockTuner) SetConfidenceRange(lo, hi float64) { t.min, t.max = lo, hi }
func (t *mockTuner) SetLabels(l []string)              { t.labels = l }
