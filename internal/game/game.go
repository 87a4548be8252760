// Package game hosts the heart particle effect in an ebiten window: it owns the
// control bar, pointer tracking, the message board and the trail canvas.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/heart-particles/internal/config"
	"github.com/iburimskiy/heart-particles/internal/emitter"
	"github.com/iburimskiy/heart-particles/internal/particle"
)

type Game struct {
	settings *config.Settings
	palettes []palette
	glyph    particle.Glyph
	emitter  *emitter.Emitter

	modes   modes
	active  buttonID
	hovered buttonID
	pressed buttonID

	board   *messageBoard
	pointer pointerTracker
	stats   frameStats
	music   *soundtrack

	width, height int
	canvas        *ebiten.Image
	surface       *canvasSurface
	fade          *ebiten.Image
	messageFace   *text.GoTextFace
	ticked        bool
	colorPhase    float64

	touchIDs []ebiten.TouchID
	lastErr  error
	now      func() time.Time
}

// New builds the effect from validated settings.
func New(s *config.Settings) (*Game, error) {
	palettes := make([]palette, 0, len(s.Palettes))
	for _, p := range s.Palettes {
		colors, err := p.RGBA()
		if err != nil {
			return nil, fmt.Errorf("failed to build palettes: %w", err)
		}
		palettes = append(palettes, palette{name: p.Name, colors: colors})
	}

	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	face, err := newMessageFace(messageFontSize)
	if err != nil {
		return nil, err
	}

	pool := particle.NewPool(s.Particles.Length, s.Particles.Duration, s.Particles.Effect, rng)

	return &Game{
		settings:    s,
		palettes:    palettes,
		glyph:       particle.Glyph{Size: s.Particles.Size},
		emitter:     emitter.New(pool, s.Particles.Velocity, rng),
		active:      buttonColor,
		hovered:     buttonNone,
		pressed:     buttonNone,
		board:       newMessageBoard(s.Messages),
		stats:       newFrameStats(time.Duration(config.StatsInterval * float64(time.Second))),
		music:       newSoundtrack(),
		width:       s.Window.Width,
		height:      s.Window.Height,
		messageFace: face,
		now:         time.Now,
	}, nil
}

// Close stops the soundtrack.
func (g *Game) Close() {
	g.music.close()
}

func (g *Game) style() particle.Style {
	return particle.Style{
		Palette: g.palettes[g.modes.palette].colors,
		Speed:   g.modes.speedValue(),
		Size:    g.modes.sizeValue(),
		Glow:    1 + 2*g.music.level(),
	}
}

func (g *Game) frame() emitter.Frame {
	return emitter.Frame{
		Width:   float64(g.width),
		Height:  float64(g.height),
		Pointer: g.pointer.state(),
		Style:   g.style(),
	}
}

func (g *Game) Update() error {
	now := g.now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys(now)
	g.handleMouse(now)
	g.handleTouch(now)
	g.pointer.observe(g.pointerInput())

	g.music.update()
	g.board.update(now, g.active == buttonMessage)
	g.colorPhase += config.ColorShiftSpeed

	if g.emitter.Paused() {
		return nil
	}
	g.emitter.Tick(now, g.frame())
	g.ticked = true
	return nil
}

func (g *Game) handleKeys(now time.Time) {
	keys := []struct {
		key ebiten.Key
		id  buttonID
	}{
		{ebiten.KeyC, buttonColor},
		{ebiten.KeyS, buttonSpeed},
		{ebiten.KeyZ, buttonSize},
		{ebiten.KeySpace, buttonPause},
		{ebiten.KeyR, buttonReset},
		{ebiten.KeyM, buttonMessage},
		{ebiten.KeyO, buttonMusic},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.press(k.id, now)
		}
	}
}

func (g *Game) handleMouse(now time.Time) {
	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = buttonAt(mouseX, mouseY, g.height)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed != buttonNone && g.pressed == g.hovered {
			g.press(g.pressed, now)
		}
		g.pressed = buttonNone
	}
}

func (g *Game) handleTouch(now time.Time) {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if b := buttonAt(x, y, g.height); b != buttonNone {
			g.press(b, now)
		}
	}
}

func (g *Game) pointerInput() pointerInput {
	mouseX, mouseY := ebiten.CursorPosition()
	in := pointerInput{
		mouse:   image.Pt(mouseX, mouseY),
		bounds:  image.Rect(0, 0, g.width, g.height),
		focused: ebiten.IsFocused(),
		blocked: overControls(mouseX, mouseY, g.height),
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, image.Pt(x, y))
	}
	return in
}

// press applies a control. Every control except Message and Reset also hides
// the message for a while.
func (g *Game) press(id buttonID, now time.Time) {
	switch id {
	case buttonColor:
		g.modes.cycleColor(len(g.palettes))
	case buttonSpeed:
		g.modes.cycleSpeed()
	case buttonSize:
		g.modes.cycleSize()
	case buttonPause:
		g.setPaused(!g.modes.paused, now)
	case buttonReset:
		g.reset(now)
		return
	case buttonMessage:
		g.active = buttonMessage
		g.board.next()
		return
	case buttonMusic:
		if err := g.music.openDialog(); err != nil {
			log.Printf("music: %v", err)
			g.lastErr = err
		} else {
			g.lastErr = nil
			g.music.setPaused(g.modes.paused)
		}
	default:
		return
	}
	g.active = id
	g.board.hide(now)
}

func (g *Game) setPaused(paused bool, now time.Time) {
	g.modes.paused = paused
	if paused {
		g.emitter.Pause()
	} else {
		g.emitter.Resume(now)
	}
	g.music.setPaused(paused)
}

// reset restores every mode to its default and restarts the effect.
func (g *Game) reset(now time.Time) {
	g.modes.reset()
	g.emitter.Reset(now)
	g.music.setPaused(false)
	g.board.reset()
	g.pointer.reset()
	g.active = buttonColor
	g.lastErr = nil
	if g.canvas != nil {
		g.canvas.Clear()
	}
}

func (g *Game) ensureCanvas() {
	if g.surface == nil {
		g.surface = newCanvasSurface()
	}
	if g.fade == nil {
		g.fade = ebiten.NewImage(1, 1)
		g.fade.Fill(color.Black)
	}
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.surface.dst = g.canvas
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureCanvas()

	if g.ticked {
		// Translucent black instead of a clear leaves fading trails.
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.width), float64(g.height))
		op.ColorScale.ScaleAlpha(config.TrailAlpha)
		g.canvas.DrawImage(g.fade, op)
		g.emitter.Pool().Render(g.surface, g.glyph, g.style())
		g.ticked = false
	}
	screen.DrawImage(g.canvas, nil)

	if !g.emitter.Paused() {
		g.stats.record(g.now(), g.emitter.Pool().ActiveCount())
	}

	g.drawMessage(screen)
	g.drawButtons(screen)
	g.drawStatus(screen)
}

func (g *Game) drawMessage(screen *ebiten.Image) {
	msg := g.board.current()
	alpha := g.board.alpha()
	if msg == "" || alpha < 0.01 {
		return
	}
	x, y := g.messageOrigin(msg)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, msg, g.messageFace, op)
}

// messageOrigin returns the top-left corner that centres msg horizontally in
// the upper part of the window.
func (g *Game) messageOrigin(msg string) (x, y float64) {
	width, _ := text.Measure(msg, g.messageFace, 0)
	return (float64(g.width) - width) / 2, float64(g.height) / 6
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("FPS: %d  Particles: %d  Mode: %s",
		g.stats.fps, g.stats.particles, title(g.palettes[g.modes.palette].name))
	if g.modes.paused {
		status += "  [paused]"
	}
	if s := g.music.status(); s != "" {
		status += "  Music: " + s
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = max(outsideWidth, 1)
	g.height = max(outsideHeight, 1)
	return g.width, g.height
}
