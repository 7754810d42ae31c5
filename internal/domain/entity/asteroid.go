package entity

import (
	"math/rand"

	"github.com/younwookim/shooter/internal/domain/geom"
)

// Asteroid drifts from the right edge of the screen to the left
type Asteroid struct {
	Rect geom.Rectangle
	Vel  float64 // Pixels per second, leftwards
	FPS  float64 // Animation speed
}

// AsteroidRanges bounds the random values picked on reset
type AsteroidRanges struct {
	Side               float64
	MinFPS, MaxFPS     float64
	MinSpeed, MaxSpeed float64
}

// Reset places the asteroid just past the right edge of a w×h screen with
// a random height, speed and animation rate.
func (a *Asteroid) Reset(rng *rand.Rand, w, h float64, r AsteroidRanges) {
	a.FPS = r.MinFPS + rng.Float64()*(r.MaxFPS-r.MinFPS)
	a.Rect = geom.New(w, rng.Float64()*(h-r.Side), r.Side, r.Side)
	a.Vel = r.MinSpeed + rng.Float64()*(r.MaxSpeed-r.MinSpeed)
}

// Update moves the asteroid. It returns true once the asteroid has fully
// left the screen.
func (a *Asteroid) Update(dt float64) bool {
	a.Rect.X -= dt * a.Vel
	return a.Rect.X <= -a.Rect.W
}
