// Package game provides the fixed-timestep run loop that drives the
// active Scene and handles Scene transitions.
package game

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/younwookim/shooter/internal/application/input"
	"github.com/younwookim/shooter/internal/application/scene"
)

// DefaultFramerate is the target number of frames per second.
const DefaultFramerate = 60

// Loop runs the active scene at a fixed rate.
//
// It is single-threaded: the goroutine calling Tick, Advance or Run owns the
// context, the input snapshot and the scene.
type Loop struct {
	current scene.Scene
	ctx     *scene.Context
	source  input.Source
	clock   Clock
	logger  *slog.Logger

	interval time.Duration
	dt       float64

	// before is the timestamp of the last accepted frame.
	before time.Duration

	// Frame rate accounting
	lastSecond  time.Duration
	frameCount  int
	fps         int
	totalFrames int
	maxFrames   int

	done bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithFramerate sets the target frames per second.
func WithFramerate(fps int) Option {
	return func(l *Loop) {
		if fps <= 0 {
			panic("game: framerate must be positive")
		}
		l.interval = time.Second / time.Duration(fps)
		l.dt = 1.0 / float64(fps)
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithMaxFrames stops the loop after n accepted frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(l *Loop) { l.maxFrames = n }
}

// New creates a loop running initial. Input is polled from src once per
// accepted frame.
func New(initial scene.Scene, ctx *scene.Context, src input.Source, opts ...Option) *Loop {
	if initial == nil {
		panic("game: nil initial scene")
	}
	l := &Loop{
		current: initial,
		ctx:     ctx,
		source:  src,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	WithFramerate(DefaultFramerate)(l)
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = SystemClock()
	}

	l.before = l.clock.Now()
	l.lastSecond = l.before
	return l
}

// Tick runs one frame if the frame interval has passed since the previous
// accepted frame. It never blocks. It reports whether a frame was rendered.
func (l *Loop) Tick() bool {
	if l.done {
		return false
	}

	now := l.clock.Now()
	elapsed := now - l.before
	if elapsed < l.interval {
		return false
	}
	// Advance by the measured time, not by the interval.
	l.before += elapsed
	l.countFrame(now)

	l.ctx.Events().Pump(l.source)
	action := l.current.Render(l.ctx, l.dt)
	l.apply(action)

	if l.maxFrames > 0 && l.totalFrames >= l.maxFrames && !l.done {
		l.logger.Debug("frame limit reached", "frames", l.totalFrames)
		l.stop()
	}
	return true
}

// Advance blocks until the next frame is rendered. It returns false once
// the loop has stopped.
func (l *Loop) Advance() bool {
	for !l.done {
		if l.Tick() {
			return true
		}
		l.clock.Sleep(l.Deadline() - l.clock.Now())
	}
	return false
}

// Run renders frames until a scene quits or ctx is cancelled. Cancellation
// is only observed between frames.
func (l *Loop) Run(ctx context.Context) error {
	for !l.done {
		if err := ctx.Err(); err != nil {
			l.stop()
			return err
		}
		l.Advance()
	}
	return nil
}

func (l *Loop) apply(action scene.Action) {
	switch action.Kind() {
	case scene.ActionContinue:
		l.ctx.Renderer().Present()
	case scene.ActionQuit:
		l.logger.Debug("scene requested quit", "frames", l.totalFrames)
		l.stop()
	case scene.ActionChangeScreen:
		next := action.Next()
		l.logger.Debug("changing scene", "frame", l.totalFrames)
		if d, ok := l.current.(scene.Disposer); ok {
			d.Dispose()
		}
		l.current = next
	}
}

func (l *Loop) stop() {
	if l.done {
		return
	}
	l.done = true
	if d, ok := l.current.(scene.Disposer); ok {
		d.Dispose()
	}
}

func (l *Loop) countFrame(now time.Duration) {
	l.totalFrames++
	l.frameCount++
	if now-l.lastSecond > time.Second {
		l.fps = l.frameCount
		l.logger.Debug("frame rate", "fps", l.fps)
		l.lastSecond = now
		l.frameCount = 0
	}
}

// Deadline returns when the next frame becomes due.
func (l *Loop) Deadline() time.Duration {
	return l.before + l.interval
}

// Before returns the timestamp of the last accepted frame.
func (l *Loop) Before() time.Duration {
	return l.before
}

// Interval returns the target frame interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Current returns the active scene.
func (l *Loop) Current() scene.Scene {
	return l.current
}

// Context returns the frame context.
func (l *Loop) Context() *scene.Context {
	return l.ctx
}

// FPS returns the frame count of the last completed one-second window.
func (l *Loop) FPS() int {
	return l.fps
}

// Frames returns the number of rendered frames.
func (l *Loop) Frames() int {
	return l.totalFrames
}

// Done reports whether the loop has stopped.
func (l *Loop) Done() bool {
	return l.done
}
