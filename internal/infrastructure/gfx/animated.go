package gfx

import (
	"math"

	"github.com/younwookim/shooter/internal/domain/geom"
)

// AnimatedSprite cycles through frames as time is added.
// The current frame is derived from the elapsed time on every render.
type AnimatedSprite struct {
	frames     []*Sprite
	frameDelay float64
	elapsed    float64
}

// NewAnimatedSprite creates an animation showing each frame for frameDelay seconds.
// It panics if frames is empty or frameDelay is zero.
func NewAnimatedSprite(frames []*Sprite, frameDelay float64) *AnimatedSprite {
	if len(frames) == 0 {
		panic("gfx: animated sprite needs at least one frame")
	}
	a := &AnimatedSprite{frames: frames}
	a.SetFrameDelay(frameDelay)
	return a
}

// AnimatedSpriteWithFPS creates an animation playing fps frames per second.
// It panics if fps is zero.
func AnimatedSpriteWithFPS(frames []*Sprite, fps float64) *AnimatedSprite {
	if fps == 0 {
		panic("gfx: animated sprite fps must not be zero")
	}
	return NewAnimatedSprite(frames, 1/fps)
}

// SetFPS sets the playback speed in frames per second.
func (a *AnimatedSprite) SetFPS(fps float64) {
	if fps == 0 {
		panic("gfx: animated sprite fps must not be zero")
	}
	a.frameDelay = 1 / fps
}

// SetFrameDelay sets how long each frame is shown. A negative delay plays
// the animation backwards.
func (a *AnimatedSprite) SetFrameDelay(delay float64) {
	if delay == 0 {
		panic("gfx: animated sprite frame delay must not be zero")
	}
	a.frameDelay = delay
}

// FrameDelay returns the time each frame is shown.
func (a *AnimatedSprite) FrameDelay() float64 {
	return a.frameDelay
}

// Elapsed returns the accumulated animation time.
func (a *AnimatedSprite) Elapsed() float64 {
	return a.elapsed
}

// Len returns the number of frames.
func (a *AnimatedSprite) Len() int {
	return len(a.frames)
}

// Frame returns the i-th frame.
func (a *AnimatedSprite) Frame(i int) *Sprite {
	return a.frames[i]
}

// AddTime advances the animation by dt seconds. If the accumulated time
// becomes negative it is reset to the start of the last frame.
func (a *AnimatedSprite) AddTime(dt float64) {
	a.elapsed += dt

	if a.elapsed < 0 {
		a.elapsed = float64(len(a.frames)-1) * a.frameDelay
	}
}

// CurrentFrame returns the index of the frame shown at the current time.
func (a *AnimatedSprite) CurrentFrame() int {
	n := len(a.frames)
	idx := int(math.Floor(a.elapsed/a.frameDelay)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Size returns the dimensions of the current frame.
func (a *AnimatedSprite) Size() (w, h float64) {
	return a.frames[a.CurrentFrame()].Size()
}

// Render draws the current frame into dest.
func (a *AnimatedSprite) Render(r Renderer, dest geom.Rectangle) {
	a.frames[a.CurrentFrame()].Render(r, dest)
}

// Release releases every frame.
func (a *AnimatedSprite) Release() {
	for _, f := range a.frames {
		f.Release()
	}
}
