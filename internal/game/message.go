package game

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// messageBoard cycles through the display messages and fades the current one in.
type messageBoard struct {
	messages []string
	index    int
	visible  bool
	revealAt time.Time

	spring   harmonica.Spring
	opacity  float64
	velocity float64
}

func newMessageBoard(messages []string) *messageBoard {
	return &messageBoard{
		messages: messages,
		index:    0,
		visible:  len(messages) > 0,
		spring:   harmonica.NewSpring(harmonica.FPS(60), 4.0, 1.0),
	}
}

// next shows the following message, wrapping at the end, and restarts the fade.
func (b *messageBoard) next() {
	if len(b.messages) == 0 {
		return
	}
	b.index = (b.index + 1) % len(b.messages)
	b.visible = true
	b.revealAt = time.Time{}
	b.opacity = 0
	b.velocity = 0
}

// hide removes the message and schedules a reveal check.
func (b *messageBoard) hide(now time.Time) {
	b.visible = false
	b.revealAt = now.Add(time.Duration(config.MessageRevealDelay * float64(time.Second)))
}

func (b *messageBoard) reset() {
	b.index = -1
	b.visible = false
	b.revealAt = time.Time{}
	b.opacity = 0
	b.velocity = 0
}

// update advances the fade and reveals a hidden message once the delay has
// passed, but only while the message control is the active one.
func (b *messageBoard) update(now time.Time, messageActive bool) {
	if !b.visible && !b.revealAt.IsZero() && !now.Before(b.revealAt) {
		b.revealAt = time.Time{}
		if messageActive && b.index >= 0 {
			b.visible = true
		}
	}

	target := 0.0
	if b.visible {
		target = 1
	}
	b.opacity, b.velocity = b.spring.Update(b.opacity, b.velocity, target)
}

func (b *messageBoard) current() string {
	if b.index < 0 || b.index >= len(b.messages) {
		return ""
	}
	return b.messages[b.index]
}

// alpha is the opacity to draw the message with.
func (b *messageBoard) alpha() float64 {
	return clamp01(b.opacity)
}
