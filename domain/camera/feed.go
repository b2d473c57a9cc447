package camera

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
	"github.com/benbjohnson/clock"
)

const feedStatsLogInterval = 5 * time.Second

// Feed is a simulated camera. While running it produces synthetic frames at a
// fixed rate and exposes the latest one alongside instrumentation data. Use
// NewFeed to construct an instance.
type Feed interface {
	FrameSource
	Lifecycle
	Stats() FeedStats
}

type simulatedFeed struct {
	logger   *slog.Logger
	clock    clock.Clock
	width    int
	height   int
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	running  atomic.Bool
	latest   atomic.Pointer[FrameSnapshot]
	frames   atomic.Uint64
	genNanos atomic.Uint64
	sequence atomic.Uint64
}

// NewFeed constructs a simulated feed producing width x height frames at fps.
func NewFeed(logger *slog.Logger, clk clock.Clock, width, height, fps int) Feed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clk == nil {
		clk = clock.New()
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if fps <= 0 {
		fps = 10
	}
	return &simulatedFeed{logger: logger, clock: clk, width: width, height: height, interval: time.Second / time.Duration(fps)}
}

func (f *simulatedFeed) LatestFrame() FrameSnapshot {
	snap := f.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (f *simulatedFeed) Running() bool { return f.running.Load() }

func (f *simulatedFeed) Stats() FeedStats {
	frames := f.frames.Load()
	total := f.genNanos.Load()
	var avg time.Duration
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
	}
	snapshot := f.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = f.clock.Since(snapshot.CapturedAt)
	}
	return FeedStats{
		Frames:         frames,
		AvgGenerate:    avg,
		LastFrame:      snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

// Start launches the generator. Idempotent.
func (f *simulatedFeed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running.Load() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.done = make(chan struct{})
	f.running.Store(true)
	go func(done chan struct{}) {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				f.logger.Error("camera feed panic", "error", r, "stack", string(debug.Stack()))
			}
		}()
		f.loop(ctx)
	}(f.done)
	f.logger.Debug("camera feed started", "width", f.width, "height", f.height, "interval", f.interval)
}

// Stop halts the generator, waits for it to exit and drops the last frame. Idempotent.
func (f *simulatedFeed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running.Load() {
		return
	}
	f.cancel()
	<-f.done
	f.running.Store(false)
	f.latest.Store(nil)
	f.logger.Debug("camera feed stopped")
}

func (f *simulatedFeed) loop(ctx context.Context) {
	ticker := f.clock.Ticker(f.interval)
	defer ticker.Stop()
	logTicker := f.clock.Ticker(feedStatsLogInterval)
	defer logTicker.Stop()

	f.generate()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.generate()
		case <-logTicker.C:
			f.logStats()
		}
	}
}

func (f *simulatedFeed) generate() {
	start := time.Now()
	img := noise.Generate(f.width, f.height, &noise.Options{Monochrome: true, NoiseFn: noise.Gaussian})
	img = blur.Gaussian(img, 1.5)
	f.genNanos.Add(uint64(time.Since(start).Nanoseconds()))
	f.frames.Add(1)
	seq := f.sequence.Add(1)
	f.latest.Store(&FrameSnapshot{Image: img, CapturedAt: f.clock.Now(), Sequence: seq})
}

func (f *simulatedFeed) logStats() {
	stats := f.Stats()
	f.logger.Debug("camera.stats",
		"frames", stats.Frames,
		"avg_generate", stats.AvgGenerate,
		"age", stats.LatestFrameAge,
	)
}
