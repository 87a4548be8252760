package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// GlowRadius is the blur radius in pixels of a particle with full glow intensity.
const GlowRadius = 20.0

// Style carries the user-controlled modes that shape how particles move and look.
type Style struct {
	Palette []color.RGBA
	Speed   float64 // position integration multiplier
	Size    float64 // draw size multiplier
	Glow    float64 // glow radius multiplier, 1 is neutral
}

// Glyph describes the sprite drawn for every particle. Size is the full-grown
// width in pixels before per-particle scale and the style multiplier.
type Glyph struct {
	Size float64
}

// Particle is a single animated heart. Slots are owned by a Pool and are
// reinitialized on every spawn instead of being reallocated.
type Particle struct {
	Position     Point
	Velocity     Point
	Acceleration Point

	Age float64

	Color         color.RGBA
	Rotation      float64
	RotationSpeed float64
	Scale         float64
	GlowIntensity float64
}

func newParticle(palette []color.RGBA, rng *rand.Rand) Particle {
	p := Particle{GlowIntensity: rng.Float64()}
	p.randomizeLook(palette, rng)
	return p
}

// Initialize resets the particle to a fresh spawn at (x, y) moving with (dx, dy).
// The acceleration is the velocity scaled by effect, so a negative effect slows
// the particle along its initial direction.
func (p *Particle) Initialize(x, y, dx, dy, effect float64, palette []color.RGBA, rng *rand.Rand) {
	p.Position = Point{X: x, Y: y}
	p.Velocity = Point{X: dx, Y: dy}
	p.Acceleration = p.Velocity.Scale(effect)
	p.Age = 0
	p.randomizeLook(palette, rng)
}

func (p *Particle) randomizeLook(palette []color.RGBA, rng *rand.Rand) {
	if len(palette) > 0 {
		p.Color = palette[rng.IntN(len(palette))]
	}
	p.Rotation = rng.Float64() * math.Pi * 2
	p.RotationSpeed = (rng.Float64() - 0.5) * 0.1
	p.Scale = 0.5 + rng.Float64()*0.5
}

// Update advances the particle by dt seconds.
func (p *Particle) Update(dt, speed float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt * speed))
	p.Velocity = p.Velocity.Add(p.Acceleration.Scale(dt))
	p.Age += dt
	p.Rotation += p.RotationSpeed
}

// Ease is an ease-out cubic: fast growth that settles at 1.
func Ease(t float64) float64 {
	t--
	return t*t*t + 1
}

// Appearance returns the draw size and opacity for the particle's current age.
// Progress is not clamped, so the size keeps easing past 1 for the frame before
// retirement while alpha is held at 0.
func (p *Particle) Appearance(duration float64, glyph Glyph, sizeMul float64) (size, alpha float64) {
	progress := p.Age / duration
	size = glyph.Size * Ease(progress) * p.Scale * sizeMul
	alpha = clamp01(1 - progress)
	return size, alpha
}

// Render draws the particle as a heart onto s.
func (p *Particle) Render(s Surface, glyph Glyph, duration float64, style Style) {
	size, alpha := p.Appearance(duration, glyph, style.Size)
	s.FillShape(HeartOutline(size), Stamp{
		Position: p.Position,
		Rotation: p.Rotation,
		Size:     size,
		Alpha:    alpha,
		Glow:     GlowRadius * p.GlowIntensity * style.Glow,
		Color:    p.Color,
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
