package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the full runtime configuration. Everything has a default, a YAML
// file only needs to list the values it changes.
type Settings struct {
	Window    WindowSettings   `yaml:"window"`
	Particles ParticleSettings `yaml:"particles"`
	Palettes  []Palette        `yaml:"palettes"`
	Messages  []string         `yaml:"messages"`
	Seed      uint64           `yaml:"seed"` // 0 picks a random seed
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ParticleSettings struct {
	Length   int     `yaml:"length"`   // pool slots
	Duration float64 `yaml:"duration"` // lifetime in seconds
	Velocity float64 `yaml:"velocity"` // initial speed in px/s
	Effect   float64 `yaml:"effect"`   // acceleration as a multiple of velocity
	Size     float64 `yaml:"size"`     // glyph size in px
}

// Palette is a named set of particle colors written as hex strings.
type Palette struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Heart Particles - C: color, S: speed, Z: size, Space: pause, M: message, Esc/Q: quit",
		},
		Particles: ParticleSettings{
			Length:   DefaultParticleLength,
			Duration: DefaultParticleDuration,
			Velocity: DefaultParticleVelocity,
			Effect:   DefaultParticleEffect,
			Size:     DefaultParticleSize,
		},
		Palettes: []Palette{
			{Name: "colorful", Colors: []string{"#ff6b6b", "#ffd93d", "#6bcf7f", "#4d9de0", "#9b59b6", "#ff8a65"}},
			{Name: "romantic", Colors: []string{"#ff1744", "#e91e63", "#ff4081", "#f8bbd9", "#ffcdd2"}},
			{Name: "sunset", Colors: []string{"#ff7043", "#ff5722", "#ffab40", "#ffc107", "#ff8f00"}},
			{Name: "ocean", Colors: []string{"#00bcd4", "#0097a7", "#26c6da", "#4fc3f7", "#29b6f6"}},
			{Name: "galaxy", Colors: []string{"#673ab7", "#9c27b0", "#e91e63", "#3f51b5", "#8bc34a"}},
		},
		Messages: []string{
			"Halo, Zahla! ♥",
			"Senang bisa mengenalmu",
			"Pesonamu selalu memukau",
			"Semoga harimu secerah senyummu",
			"Ada kebaikan di setiap langkahmu",
			"Selalu kagum denganmu",
			"Semangat ya, untuk semua impianmu",
			"Terima kasih sudah menjadi inspirasi",
			"Semoga sukses selalu",
			"Senyummu mencerahkan hari",
			"Kamu istimewa",
		},
	}
}

// Load reads a YAML settings file on top of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings on top of the defaults and validates the result.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the settings can drive the effect.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	p := s.Particles
	if p.Length < 2 {
		return fmt.Errorf("%w: particles.length must be at least 2, got %d", ErrInvalidSettings, p.Length)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: particles.duration must be positive, got %v", ErrInvalidSettings, p.Duration)
	}
	if p.Velocity < 0 {
		return fmt.Errorf("%w: particles.velocity cannot be negative, got %v", ErrInvalidSettings, p.Velocity)
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: particles.size must be positive, got %v", ErrInvalidSettings, p.Size)
	}
	if len(s.Palettes) == 0 {
		return fmt.Errorf("%w: palettes cannot be empty", ErrInvalidSettings)
	}
	for _, pal := range s.Palettes {
		if pal.Name == "" {
			return fmt.Errorf("%w: palette name cannot be empty", ErrInvalidSettings)
		}
		if _, err := pal.RGBA(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	if len(s.Messages) == 0 {
		return fmt.Errorf("%w: messages cannot be empty", ErrInvalidSettings)
	}
	return nil
}

// RGBA parses the palette's hex colors.
func (p Palette) RGBA() ([]color.RGBA, error) {
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", p.Name)
	}
	out := make([]color.RGBA, 0, len(p.Colors))
	for _, hex := range p.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", p.Name, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return out, nil
}
