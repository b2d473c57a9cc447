package presenter

import (
	"log/slog"

	"github.com/soocke/signdetect-go/domain/detection"
)

// CameraModel provides the on/off flag the presenter mirrors.
type CameraModel interface {
	On() bool
	SetOn(bool) bool
}

// CameraFeed narrows what the presenter needs from the camera feed.
type CameraFeed interface {
	Start()
	Stop()
}

// CameraView updates UI elements affected by switching the camera.
// State label updates are owned by StatePresenter.
type CameraView interface {
	PreviewReset()
	ConfigEditable(bool)
	SetCameraButton(on bool)
}

// CameraPresenter owns presentation logic for switching the camera on and off.
type CameraPresenter struct {
	model   CameraModel
	control detection.CameraControl
	feed    CameraFeed
	view    CameraView
	logger  *slog.Logger
}

func NewCameraPresenter(model CameraModel, control detection.CameraControl, feed CameraFeed, view CameraView, logger *slog.Logger) *CameraPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CameraPresenter{model: model, control: control, feed: feed, view: view, logger: logger}
}

func (c *CameraPresenter) ready() bool {
	return c != nil && c.model != nil && c.control != nil && c.feed != nil && c.view != nil
}

// Enable switches the camera on. Idempotent.
func (c *CameraPresenter) Enable() {
	if !c.ready() || c.model.On() {
		return
	}
	c.Toggle()
}

// Disable switches the camera off, stopping the feed and resetting the preview. Idempotent.
func (c *CameraPresenter) Disable() {
	if !c.ready() || !c.model.On() {
		return
	}
	c.Toggle()
}

// Toggle flips the session's camera and brings feed and view in line with the
// state the controller reports.
func (c *CameraPresenter) Toggle() {
	if !c.ready() {
		return
	}
	on := c.control.ToggleCamera()
	if !c.model.SetOn(on) {
		return
	}
	c.logger.Debug("camera toggled", "on", on)
	if on {
		c.feed.Start()
		c.view.ConfigEditable(false)
	} else {
		c.feed.Stop()
		c.view.PreviewReset()
		c.view.ConfigEditable(true)
	}
	c.view.SetCameraButton(on)
}
