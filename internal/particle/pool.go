package particle

import (
	"image/color"
	"math/rand/v2"
)

// DefaultLength is used when a pool is requested with no slots.
const DefaultLength = 300

// Pool is a fixed-size ring buffer of particles. The live particles occupy the
// circular index range [firstActive, firstFree).
//
// firstActive == firstFree always means the pool is empty: a spawn that makes
// firstFree catch up with firstActive pushes firstActive forward too, evicting
// the oldest particle. The pool therefore holds at most Len()-1 live particles.
type Pool struct {
	particles   []Particle
	firstActive int
	firstFree   int
	duration    float64
	effect      float64
	rng         *rand.Rand
}

// NewPool preallocates length particle slots. duration is the lifetime in
// seconds and effect the acceleration coefficient applied on spawn.
func NewPool(length int, duration, effect float64, rng *rand.Rand) *Pool {
	if length <= 0 {
		length = DefaultLength
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	p := &Pool{
		particles: make([]Particle, length),
		duration:  duration,
		effect:    effect,
		rng:       rng,
	}
	for i := range p.particles {
		p.particles[i] = newParticle(nil, rng)
	}
	return p
}

func (p *Pool) Len() int { return len(p.particles) }

// Capacity is the largest number of particles that can be alive at once.
func (p *Pool) Capacity() int { return len(p.particles) - 1 }

func (p *Pool) Duration() float64 { return p.duration }

// Spawn reinitializes the next free slot. When the pool is full the oldest
// particle is overwritten without notice.
func (p *Pool) Spawn(x, y, dx, dy float64, palette []color.RGBA) {
	p.particles[p.firstFree].Initialize(x, y, dx, dy, p.effect, palette, p.rng)
	p.firstFree = p.next(p.firstFree)
	if p.firstActive == p.firstFree {
		p.firstActive = p.next(p.firstActive)
	}
}

// Update ages every live particle by dt and retires expired ones from the head.
// Slots are only reclaimed when the next spawn overwrites them.
func (p *Pool) Update(dt float64, style Style) {
	p.each(func(pt *Particle) {
		pt.Update(dt, style.Speed)
	})
	for p.firstActive != p.firstFree && p.particles[p.firstActive].Age >= p.duration {
		p.firstActive = p.next(p.firstActive)
	}
}

// Render draws every live particle onto s, oldest first.
func (p *Pool) Render(s Surface, glyph Glyph, style Style) {
	p.each(func(pt *Particle) {
		pt.Render(s, glyph, p.duration, style)
	})
}

// ActiveCount returns the number of live particles.
func (p *Pool) ActiveCount() int {
	if p.firstActive <= p.firstFree {
		return p.firstFree - p.firstActive
	}
	return len(p.particles) - p.firstActive + p.firstFree
}

// Reset drops every live particle. Slots are kept for reuse.
func (p *Pool) Reset() {
	p.firstActive = 0
	p.firstFree = 0
}

func (p *Pool) next(i int) int {
	i++
	if i == len(p.particles) {
		return 0
	}
	return i
}

func (p *Pool) each(fn func(*Particle)) {
	switch {
	case p.firstActive < p.firstFree:
		for i := p.firstActive; i < p.firstFree; i++ {
			fn(&p.particles[i])
		}
	case p.firstFree < p.firstActive:
		for i := p.firstActive; i < len(p.particles); i++ {
			fn(&p.particles[i])
		}
		for i := 0; i < p.firstFree; i++ {
			fn(&p.particles[i])
		}
	}
}
