package detection

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// DefaultDelay is the simulated processing time of one detection.
const DefaultDelay = 2 * time.Second

// Options configure a Controller.
type Options struct {
	Delay time.Duration
	Mode  Mode
}

// Controller owns one detection session: camera on/off, the in-flight request
// and the last result. All state is mutated by a single loop goroutine; command
// methods block until the loop has applied them.
type Controller struct {
	logger   *slog.Logger
	clock    clock.Clock
	detector Detector

	ctx       context.Context
	cancel    context.CancelFunc
	events    chan interface{}
	done      chan struct{}
	closeOnce sync.Once

	// loop-owned
	state     State
	mode      Mode
	result    *Result
	completed uint64
	delay     time.Duration
	pending   *pendingRequest
	listeners []StateListener

	mu   sync.RWMutex
	snap Snapshot
}

// pendingRequest is the single detection currently in flight.
type pendingRequest struct {
	id    uuid.UUID
	mode  Mode
	timer *clock.Timer
}

// events
type (
	evtToggleCamera     struct{ reply chan bool }
	evtRequestDetection struct{ reply chan bool }
	evtSelectMode       struct {
		mode  Mode
		reply chan error
	}
	evtSetDelay struct {
		d     time.Duration
		reply chan struct{}
	}
	evtAddListener struct {
		l     StateListener
		reply chan struct{}
	}
	evtDetectionDue struct{ id uuid.UUID }
)

// NewController constructs the session and starts its event loop. The session
// ends when ctx is cancelled or Close is called.
func NewController(ctx context.Context, logger *slog.Logger, clk clock.Clock, detector Detector, opts Options) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clk == nil {
		clk = clock.New()
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if !opts.Mode.Valid() {
		opts.Mode = ModeCombined
	}
	cctx, cancel := context.WithCancel(ctx)
	c := &Controller{
		logger:   logger,
		clock:    clk,
		detector: detector,
		ctx:      cctx,
		cancel:   cancel,
		events:   make(chan interface{}, 64),
		done:     make(chan struct{}),
		state:    StateIdle,
		mode:     opts.Mode,
		delay:    opts.Delay,
	}
	c.publish()
	go func() {
		defer close(c.done)
		defer recoverLog(logger, "detection loop panic")
		c.loop()
	}()
	return c
}

func (c *Controller) loop() {
	for {
		select {
		case <-c.ctx.Done():
			c.cancelPending("session closed")
			return
		case ev := <-c.events:
			c.handle(ev)
		}
	}
}

func (c *Controller) handle(ev interface{}) {
	switch e := ev.(type) {
	case evtToggleCamera:
		if c.state == StateIdle {
			c.transition(StateActive)
		} else {
			c.cancelPending("camera off")
			c.result = nil
			c.transition(StateIdle)
		}
		e.reply <- c.state != StateIdle
	case evtRequestDetection:
		e.reply <- c.startDetection()
	case evtSelectMode:
		if !e.mode.Valid() {
			e.reply <- ErrUnknownMode
			return
		}
		if c.mode != e.mode {
			c.mode = e.mode
			c.publish()
			c.logger.Info("processing mode selected", "mode", e.mode.String())
		}
		e.reply <- nil
	case evtSetDelay:
		if e.d > 0 {
			c.delay = e.d
		}
		e.reply <- struct{}{}
	case evtAddListener:
		c.listeners = append(c.listeners, e.l)
		e.reply <- struct{}{}
	case evtDetectionDue:
		c.completeDetection(e.id)
	}
}

func (c *Controller) startDetection() bool {
	switch c.state {
	case StateIdle:
		c.logger.Debug("detection declined", "reason", "camera off")
		return false
	case StateDetecting:
		c.logger.Debug("detection declined", "reason", "already detecting", "request_id", c.pending.id)
		return false
	}
	id := uuid.New()
	c.pending = &pendingRequest{
		id:   id,
		mode: c.mode,
		timer: c.clock.AfterFunc(c.delay, func() {
			defer recoverLog(c.logger, "detection timer panic")
			c.post(evtDetectionDue{id: id})
		}),
	}
	c.result = nil
	c.transition(StateDetecting)
	c.logger.Info("detection requested", "request_id", id, "mode", c.mode.String(), "delay", c.delay)
	return true
}

func (c *Controller) completeDetection(id uuid.UUID) {
	if c.pending == nil || c.pending.id != id {
		c.logger.Debug("stale detection completion discarded", "request_id", id)
		return
	}
	req := c.pending
	c.pending = nil
	res, err := c.detector.Detect(c.ctx, req.mode, req.id)
	if err != nil {
		c.logger.Error("detection failed", "request_id", req.id, "error", err)
		c.transition(StateActive)
		return
	}
	res.RequestID = req.id
	res.Mode = req.mode
	if res.DetectedAt.IsZero() {
		res.DetectedAt = c.clock.Now()
	}
	c.result = &res
	c.completed++
	c.transition(StateActive)
	c.logger.Info("sign detected", "request_id", req.id, "label", res.Label, "confidence", res.Confidence)
}

func (c *Controller) cancelPending(reason string) {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.logger.Debug("detection cancelled", "request_id", c.pending.id, "reason", reason)
	c.pending = nil
}

func (c *Controller) transition(next State) {
	prev := c.state
	c.state = next
	c.publish()
	if prev == next {
		return
	}
	c.logger.Debug("detection state transition", "from", prev.String(), "to", next.String())
	for _, l := range c.listeners {
		l(prev, next)
	}
}

func (c *Controller) publish() {
	snap := Snapshot{State: c.state, Mode: c.mode, Completed: c.completed}
	if c.result != nil {
		r := *c.result
		snap.Result = &r
	}
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// post enqueues ev unless the session has ended.
func (c *Controller) post(ev interface{}) bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
	}
	select {
	case c.events <- ev:
		return true
	case <-c.ctx.Done():
		return false
	}
}

// Public API implements contracts

// Snapshot returns the current observable state. Safe from any goroutine.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// ToggleCamera flips the camera and returns the new camera state. Switching the
// camera off clears the result and cancels any in-flight detection.
func (c *Controller) ToggleCamera() bool {
	reply := make(chan bool, 1)
	if !c.post(evtToggleCamera{reply: reply}) {
		return c.Snapshot().CameraActive()
	}
	select {
	case on := <-reply:
		return on
	case <-c.done:
		return c.Snapshot().CameraActive()
	}
}

// RequestDetection starts a detection and reports whether it was accepted. It is
// declined while the camera is off or while another detection is in flight.
func (c *Controller) RequestDetection() bool {
	reply := make(chan bool, 1)
	if !c.post(evtRequestDetection{reply: reply}) {
		return false
	}
	select {
	case ok := <-reply:
		return ok
	case <-c.done:
		return false
	}
}

// SelectMode stores the processing mode.
func (c *Controller) SelectMode(m Mode) error {
	reply := make(chan error, 1)
	if !c.post(evtSelectMode{mode: m, reply: reply}) {
		return context.Canceled
	}
	select {
	case err := <-reply:
		return err
	case <-c.done:
		return context.Canceled
	}
}

// SetDelay changes the delay applied to later detection requests.
func (c *Controller) SetDelay(d time.Duration) {
	c.call(func(reply chan struct{}) interface{} { return evtSetDelay{d: d, reply: reply} })
}

// AddListener registers l for state transitions. Listeners run on the loop
// goroutine and must not call back into the controller synchronously.
func (c *Controller) AddListener(l StateListener) {
	c.call(func(reply chan struct{}) interface{} { return evtAddListener{l: l, reply: reply} })
}

func (c *Controller) call(mk func(chan struct{}) interface{}) {
	reply := make(chan struct{}, 1)
	if !c.post(mk(reply)) {
		return
	}
	select {
	case <-reply:
	case <-c.done:
	}
}

// Close ends the session, cancelling any pending detection, and waits for the
// loop to exit. Safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		<-c.done
	})
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}

// Ensure contract satisfaction
var _ ControllerContract = (*Controller)(nil)
