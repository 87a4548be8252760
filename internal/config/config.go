package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Control bar
	ButtonWidth   = 104
	ButtonHeight  = 32
	ButtonSpacing = 8
	ButtonX       = 12
	ButtonMarginY = 16

	// Trail fade applied to the canvas every frame
	TrailAlpha = 0.05

	// Seconds a hidden message waits before it may reappear
	MessageRevealDelay = 5.0

	// Diagnostics refresh interval in seconds
	StatsInterval = 1.0

	ColorShiftSpeed = 0.01
)

// Defaults for the particle effect.
const (
	DefaultParticleLength   = 300
	DefaultParticleDuration = 2.5
	DefaultParticleVelocity = 100
	DefaultParticleEffect   = -0.6
	DefaultParticleSize     = 28
)
