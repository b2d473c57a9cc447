package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/signdetect-go/config"
	"github.com/soocke/signdetect-go/debug"
	"github.com/soocke/signdetect-go/ui/presenter"
	"github.com/soocke/signdetect-go/ui/theme"
	"github.com/soocke/signdetect-go/ui/view"
)

const tick = 100 * time.Millisecond

// App owns the Tk window and the component container.
type App struct {
	container *Container
	logger    *slog.Logger
	cancel    context.CancelFunc
	afterID   string
}

// NewApp builds the component graph and configures the main window.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{logger: logger, cancel: cancel}
	a.container = BuildContainer(ctx, cfg, cfgPath, logger)

	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, logger)
		debug.StartMemLogger(ctx, 5*time.Second, logger)
	}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	theme.SetDark(cfg.DarkMode)
	return a
}

// Start builds the UI, kicks off the tick loop and blocks in the Tk main loop.
func (a *App) Start() {
	c := a.container
	snap := c.Ctrl.Snapshot()
	c.RootView.Build(presenter.ModeNames(), snap.Mode.String(), c.SettingsPresenter.Form(), viewHandlers(a))
	c.RootView.SetModeDescription(snap.Mode.Description())

	c.Loop = presenter.NewLoop(c.SessionPresenter, c.StatePresenter, c.DetectionPresenter, c.PreviewPresenter, a.scheduleUpdate)
	a.logger.Info("ui started", "mode", snap.Mode.String(), "delay", c.Config.DetectionDelay())
	a.scheduleUpdate()
	App.Wait()
}

func viewHandlers(a *App) view.Handlers {
	c := a.container
	return view.Handlers{
		ToggleCamera: c.CameraPresenter.Toggle,
		Detect:       c.DetectionPresenter.Detect,
		ModeChanged: func(name string) {
			_ = c.ModePresenter.Select(name)
		},
		ApplySettings: c.SettingsPresenter.Apply,
		Exit:          a.exitHandler,
	}
}

func (a *App) scheduleUpdate() {
	// TclAfter keeps presenter ticks on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}

func (a *App) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.container.Shutdown()
	a.cancel()
	a.logger.Info("shutdown complete")
	Destroy(App)
}
