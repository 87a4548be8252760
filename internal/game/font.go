package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const messageFontSize = 28

// newMessageFace loads the bundled Go Regular font, which covers Latin text
// and the WGL4 symbols such as the heart suit.
func newMessageFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load message font: %w", err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   size,
	}, nil
}
