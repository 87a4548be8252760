package game

import (
	"image"

	"github.com/iburimskiy/heart-particles/internal/emitter"
)

// pointerInput is one frame's worth of raw mouse and touch state.
type pointerInput struct {
	mouse   image.Point
	touches []image.Point
	bounds  image.Rectangle
	focused bool
	blocked bool // cursor is over the control bar
}

// pointerTracker turns polled input into the move/leave semantics the emitter
// expects: the pointer becomes active when it moves over the canvas and stays
// active until it leaves, or until every touch is lifted.
type pointerTracker struct {
	pos      image.Point
	last     image.Point
	active   bool
	touching bool
	started  bool
}

func (p *pointerTracker) observe(in pointerInput) {
	if len(in.touches) > 0 {
		p.pos = in.touches[0]
		p.active = true
		p.touching = true
		return
	}
	if p.touching {
		p.touching = false
		p.active = false
		p.last = in.mouse
		return
	}

	moved := p.started && in.mouse != p.last
	p.last = in.mouse
	p.started = true

	if !in.focused || in.blocked || !in.mouse.In(in.bounds) {
		p.active = false
		return
	}
	if moved {
		p.pos = in.mouse
		p.active = true
	}
}

func (p *pointerTracker) state() emitter.Pointer {
	return emitter.Pointer{
		X:      float64(p.pos.X),
		Y:      float64(p.pos.Y),
		Active: p.active,
	}
}

func (p *pointerTracker) reset() {
	*p = pointerTracker{}
}
