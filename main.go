package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-particles/internal/config"
	"github.com/iburimskiy/heart-particles/internal/game"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	settings, err := config.FromEnv()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	g, err := game.New(settings)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting with %d particles over %.1fs", settings.Particles.Length, settings.Particles.Duration)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
