package presenter

import (
	"image"

	"github.com/soocke/signdetect-go/domain/camera"
	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/images"
)

// Preview captions.
const (
	CaptionActive     = "Camera Active"
	CaptionInactive   = "Camera Preview"
	CaptionTapToStart = "Tap to start camera"
	CaptionProcessing = "Processing..."
)

// PreviewView receives composed preview images and the caption under them.
type PreviewView interface {
	UpdatePreview(img image.Image)
	SetPreviewCaption(title, subtitle string)
}

// PreviewPresenter pushes new camera frames into the preview, framed and
// dimmed while a detection runs.
type PreviewPresenter struct {
	feed    camera.FrameSource
	session detection.SessionSource
	view    PreviewView
	width   int
	height  int

	lastSeq        uint64
	lastProcessing bool
	lastTitle      string
	lastSubtitle   string
}

func NewPreviewPresenter(feed camera.FrameSource, session detection.SessionSource, view PreviewView, width, height int) *PreviewPresenter {
	return &PreviewPresenter{feed: feed, session: session, view: view, width: width, height: height}
}

// Tick refreshes the caption and, when a new frame or a processing change is
// observed, the preview image.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.feed == nil || p.session == nil || p.view == nil {
		return
	}
	snap := p.session.Snapshot()
	p.caption(snap)
	if !snap.CameraActive() || !p.feed.Running() {
		p.lastSeq = 0
		return
	}
	frame := p.feed.LatestFrame()
	if frame.Image == nil {
		return
	}
	processing := snap.Processing()
	if frame.Sequence == p.lastSeq && processing == p.lastProcessing {
		return
	}
	p.lastSeq, p.lastProcessing = frame.Sequence, processing
	p.view.UpdatePreview(images.ComposePreview(frame.Image, p.width, p.height, processing))
}

func (p *PreviewPresenter) caption(snap detection.Snapshot) {
	title, subtitle := CaptionInactive, CaptionTapToStart
	if snap.CameraActive() {
		title = CaptionActive
		subtitle = snap.Mode.String() + " " + snap.Mode.Description()
		if snap.Processing() {
			subtitle = CaptionProcessing
		}
	}
	if title == p.lastTitle && subtitle == p.lastSubtitle {
		return
	}
	p.lastTitle, p.lastSubtitle = title, subtitle
	p.view.SetPreviewCaption(title, subtitle)
}
