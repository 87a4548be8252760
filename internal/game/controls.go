package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-particles/internal/config"
)

type buttonID int

const (
	buttonNone buttonID = iota - 1
	buttonColor
	buttonSpeed
	buttonSize
	buttonPause
	buttonReset
	buttonMessage
	buttonMusic
	buttonCount
)

// buttonRect returns the bounds of a control button for a screen of the given height.
// Buttons sit in a row along the bottom edge.
func buttonRect(id buttonID, screenHeight int) (x, y, w, h int) {
	x = config.ButtonX + int(id)*(config.ButtonWidth+config.ButtonSpacing)
	y = screenHeight - config.ButtonHeight - config.ButtonMarginY
	return x, y, config.ButtonWidth, config.ButtonHeight
}

// buttonAt returns the button under (px, py), or buttonNone.
func buttonAt(px, py, screenHeight int) buttonID {
	for id := buttonColor; id < buttonCount; id++ {
		x, y, w, h := buttonRect(id, screenHeight)
		if px >= x && px <= x+w && py >= y && py <= y+h {
			return id
		}
	}
	return buttonNone
}

// overControls reports whether (px, py) is inside the control bar strip.
func overControls(px, py, screenHeight int) bool {
	_, y, _, _ := buttonRect(buttonColor, screenHeight)
	last, _, w, _ := buttonRect(buttonCount-1, screenHeight)
	return py >= y-config.ButtonSpacing && px <= last+w+config.ButtonSpacing
}

func (g *Game) buttonLabel(id buttonID) string {
	switch id {
	case buttonColor:
		return "Color Mode"
	case buttonSpeed:
		return speedSteps[g.modes.speed].label
	case buttonSize:
		return sizeSteps[g.modes.size].label
	case buttonPause:
		if g.modes.paused {
			return "Play"
		}
		return "Pause"
	case buttonReset:
		return "Reset"
	case buttonMessage:
		return "Message"
	case buttonMusic:
		return "Music"
	}
	return ""
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	for id := buttonColor; id < buttonCount; id++ {
		x, y, w, h := buttonRect(id, g.height)

		var bgColor color.Color
		switch {
		case g.pressed == id:
			bgColor = color.RGBA{R: 60, G: 40, B: 70, A: 220}
		case g.hovered == id:
			bgColor = color.RGBA{R: 80, G: 60, B: 95, A: 220}
		default:
			bgColor = color.RGBA{R: 30, G: 20, B: 40, A: 200}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)

		borderColor := color.Color(color.RGBA{R: 150, G: 130, B: 170, A: 255})
		borderWidth := float32(1)
		if g.active == id {
			borderColor = accentColor(g.colorPhase)
			borderWidth = 2
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), borderWidth, borderColor, false)

		label := g.buttonLabel(id)
		textWidth := len(label) * 6
		ebitenutil.DebugPrintAt(screen, label, x+(w-textWidth)/2, y+(h-16)/2)
	}
}
