package app

import (
	"context"
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/soocke/signdetect-go/config"
	"github.com/soocke/signdetect-go/domain/camera"
	"github.com/soocke/signdetect-go/domain/detection"
	"github.com/soocke/signdetect-go/ui/model"
	"github.com/soocke/signdetect-go/ui/palette"
	"github.com/soocke/signdetect-go/ui/presenter"
	"github.com/soocke/signdetect-go/ui/view"
)

// Container assembles models, services, presenters and the root view.
type Container struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Clock      clock.Clock

	Camera   *model.CameraModel
	Session  *model.SessionModel
	Results  *model.ResultModel
	Detector *detection.SimulatedDetector
	Ctrl     *detection.Controller
	Feed     camera.Feed
	RootView *view.RootView

	// Presenters
	CameraPresenter    *presenter.CameraPresenter
	DetectionPresenter *presenter.DetectionPresenter
	PreviewPresenter   *presenter.PreviewPresenter
	StatePresenter     *presenter.StatePresenter
	ModePresenter      *presenter.ModePresenter
	SessionPresenter   *presenter.SessionPresenter
	SettingsPresenter  *presenter.SettingsPresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all components. The controller goroutine starts
// here; everything else is idle until the UI drives it.
func BuildContainer(ctx context.Context, cfg *config.Config, cfgPath string, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, ConfigPath: cfgPath, Logger: logger, Clock: clock.New()}
	c.Camera = &model.CameraModel{}
	c.Session = model.NewSessionModel()
	c.Results = model.NewResultModel()

	mode, err := detection.ParseMode(cfg.DefaultMode)
	if err != nil {
		logger.Warn("unknown default mode, using Combined", "mode", cfg.DefaultMode)
	}
	c.Detector = detection.NewSimulatedDetector(cfg.Labels, cfg.MinConfidence, cfg.MaxConfidence, nil)
	c.Ctrl = detection.NewController(ctx, logger, c.Clock, c.Detector, detection.Options{
		Delay: cfg.DetectionDelay(),
		Mode:  mode,
	})
	c.Feed = camera.NewFeed(logger, c.Clock, cfg.PreviewWidth, cfg.PreviewHeight, cfg.PreviewFPS)

	c.RootView = view.NewRootView(logger, cfg.PreviewWidth, cfg.PreviewHeight)
	c.CameraPresenter = presenter.NewCameraPresenter(c.Camera, c.Ctrl, c.Feed, c.RootView, logger)
	c.DetectionPresenter = presenter.NewDetectionPresenter(c.Ctrl, c.Ctrl, c.Results, c.RootView, logger)
	c.DetectionPresenter.SetScheme(palette.SchemeFor(cfg.DarkMode))
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Feed, c.Ctrl, c.RootView, cfg.PreviewWidth, cfg.PreviewHeight)
	c.StatePresenter = presenter.NewStatePresenter(c.RootView)
	c.Ctrl.AddListener(c.StatePresenter.OnState)
	c.ModePresenter = presenter.NewModePresenter(c.Ctrl, c.RootView, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Ctrl, c.RootView)
	c.SettingsPresenter = presenter.NewSettingsPresenter(cfg, cfgPath, c.Ctrl, c.Detector, logger)
	return c
}

// Shutdown stops the feed and the controller. Safe to call more than once.
func (c *Container) Shutdown() {
	if c == nil {
		return
	}
	if c.Feed != nil {
		c.Feed.Stop()
	}
	if c.Ctrl != nil {
		c.Ctrl.Close()
	}
}
