package game

import (
	"image/color"
	"strings"
)

// step is one position of a cycling multiplier button.
type step struct {
	value float64
	label string
}

var (
	speedSteps = []step{{value: 1, label: "Speed"}, {value: 2, label: "Fast"}, {value: 0.5, label: "Slow"}}
	sizeSteps  = []step{{value: 1, label: "Size"}, {value: 1.5, label: "Large"}, {value: 0.7, label: "Small"}}
)

type palette struct {
	name   string
	colors []color.RGBA
}

// modes is the user-selected state the control bar mutates between frames.
type modes struct {
	palette int
	speed   int
	size    int
	paused  bool
}

func (m *modes) cycleColor(count int) {
	if count == 0 {
		return
	}
	m.palette = (m.palette + 1) % count
}

func (m *modes) cycleSpeed() { m.speed = (m.speed + 1) % len(speedSteps) }

func (m *modes) cycleSize() { m.size = (m.size + 1) % len(sizeSteps) }

func (m *modes) speedValue() float64 { return speedSteps[m.speed].value }

func (m *modes) sizeValue() float64 { return sizeSteps[m.size].value }

func (m *modes) reset() { *m = modes{} }

// title capitalizes a palette name for display.
func title(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
