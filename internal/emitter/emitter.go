// Package emitter drives the particle pool once per frame: it turns elapsed
// wall-clock time into spawns, picks spawn origins and ages the pool.
package emitter

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/heart-particles/internal/particle"
)

// Pointer is the last known mouse or touch position.
type Pointer struct {
	X, Y   float64
	Active bool
}

// Frame is everything a tick needs from the host besides the clock.
type Frame struct {
	Width   float64
	Height  float64
	Pointer Pointer
	Style   particle.Style
}

// Emitter is a two-state machine, running or paused. While running every Tick
// integrates the spawn rate over the elapsed time.
type Emitter struct {
	pool     *particle.Pool
	rng      *rand.Rand
	velocity float64
	rate     float64 // particles per second

	carry  float64
	last   time.Time
	paused bool
}

// New returns a running emitter feeding pool. velocity is the initial speed of
// every particle in pixels per second.
func New(pool *particle.Pool, velocity float64, rng *rand.Rand) *Emitter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(3, 5))
	}
	return &Emitter{
		pool:     pool,
		rng:      rng,
		velocity: velocity,
		rate:     SpawnRate(pool.Len(), pool.Duration()),
	}
}

// SpawnRate keeps a pool of the given length roughly full over one lifetime.
func SpawnRate(length int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(length) / duration
}

func (e *Emitter) Rate() float64 { return e.rate }

func (e *Emitter) Paused() bool { return e.paused }

func (e *Emitter) Pool() *particle.Pool { return e.pool }

// Pause stops ticking. Nothing is in flight, so no work is cancelled.
func (e *Emitter) Pause() {
	e.paused = true
}

// Resume restarts ticking with now as the delta baseline, so the time spent
// paused does not arrive as one huge catch-up delta.
func (e *Emitter) Resume(now time.Time) {
	e.paused = false
	e.last = now
	e.carry = 0
}

// Reset empties the pool and restarts the clock.
func (e *Emitter) Reset(now time.Time) {
	e.pool.Reset()
	e.Resume(now)
}

// Tick advances one frame and returns the elapsed seconds and the number of
// particles spawned. A paused emitter does nothing.
func (e *Emitter) Tick(now time.Time, f Frame) (dt float64, spawned int) {
	if e.paused {
		return 0, 0
	}
	if !e.last.IsZero() {
		dt = now.Sub(e.last).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	e.last = now

	// The fractional part carries over so short frames still add up to rate.
	due := e.rate*dt + e.carry
	spawned = int(math.Floor(due))
	e.carry = due - float64(spawned)

	for i := 0; i < spawned; i++ {
		x, y, dx, dy := e.origin(f)
		e.pool.Spawn(x, y, dx, dy, f.Style.Palette)
	}

	e.pool.Update(dt, f.Style)
	return dt, spawned
}

func (e *Emitter) origin(f Frame) (x, y, dx, dy float64) {
	if f.Pointer.Active {
		angle := e.rng.Float64() * math.Pi * 2
		return f.Pointer.X, f.Pointer.Y, math.Cos(angle) * e.velocity, math.Sin(angle) * e.velocity
	}

	pos := HeartPoint(math.Pi - 2*math.Pi*e.rng.Float64())
	dir := pos.ScaledTo(e.velocity)
	return f.Width/2 + pos.X, f.Height/2 - pos.Y, dir.X, -dir.Y
}
