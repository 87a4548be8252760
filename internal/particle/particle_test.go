package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

var testPalette = []color.RGBA{
	{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	{R: 0x4d, G: 0x9d, B: 0xe0, A: 0xff},
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestEaseEndpoints(t *testing.T) {
	if got := Ease(0); got != 0 {
		t.Errorf("Ease(0) = %v, want 0", got)
	}
	if got := Ease(1); got != 1 {
		t.Errorf("Ease(1) = %v, want 1", got)
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := Ease(0)
	for i := 1; i <= 1000; i++ {
		v := Ease(float64(i) / 1000)
		if v < prev {
			t.Fatalf("Ease not monotonic at t=%v: %v < %v", float64(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestParticleInitialize(t *testing.T) {
	var p Particle
	p.Age = 3
	p.Initialize(10, 20, 100, -50, -0.6, testPalette, newTestRand())

	if p.Position != (Point{X: 10, Y: 20}) {
		t.Errorf("Position = %+v, want {10 20}", p.Position)
	}
	if p.Velocity != (Point{X: 100, Y: -50}) {
		t.Errorf("Velocity = %+v, want {100 -50}", p.Velocity)
	}
	if math.Abs(p.Acceleration.X+60) > 1e-9 || math.Abs(p.Acceleration.Y-30) > 1e-9 {
		t.Errorf("Acceleration = %+v, want {-60 30}", p.Acceleration)
	}
	if p.Age != 0 {
		t.Errorf("Age = %v, want 0", p.Age)
	}
	if p.Color != testPalette[0] && p.Color != testPalette[1] {
		t.Errorf("Color %v not drawn from palette", p.Color)
	}
	if p.Scale < 0.5 || p.Scale >= 1 {
		t.Errorf("Scale = %v, want [0.5, 1)", p.Scale)
	}
	if p.RotationSpeed < -0.05 || p.RotationSpeed >= 0.05 {
		t.Errorf("RotationSpeed = %v, want [-0.05, 0.05)", p.RotationSpeed)
	}
	if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
		t.Errorf("Rotation = %v, want [0, 2pi)", p.Rotation)
	}
}

func TestParticleUpdate(t *testing.T) {
	p := Particle{
		Velocity:      Point{X: 10, Y: 0},
		Acceleration:  Point{X: -2, Y: 4},
		RotationSpeed: 0.01,
	}

	p.Update(0.5, 2)

	// Position uses the velocity from before this step.
	if p.Position != (Point{X: 10, Y: 0}) {
		t.Errorf("Position = %+v, want {10 0}", p.Position)
	}
	if p.Velocity != (Point{X: 9, Y: 2}) {
		t.Errorf("Velocity = %+v, want {9 2}", p.Velocity)
	}
	if p.Age != 0.5 {
		t.Errorf("Age = %v, want 0.5", p.Age)
	}
	if p.Rotation != 0.01 {
		t.Errorf("Rotation = %v, want 0.01", p.Rotation)
	}
}

func TestParticleAppearance(t *testing.T) {
	glyph := Glyph{Size: 28}
	tests := []struct {
		name      string
		age       float64
		wantSize  float64
		wantAlpha float64
	}{
		{name: "just spawned", age: 0, wantSize: 0, wantAlpha: 1},
		{name: "end of life", age: 2.5, wantSize: 28, wantAlpha: 0},
		{name: "past end of life", age: 3, wantSize: 28 * Ease(1.2), wantAlpha: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Age: tt.age, Scale: 1}
			size, alpha := p.Appearance(2.5, glyph, 1)
			if math.Abs(size-tt.wantSize) > 1e-9 {
				t.Errorf("size = %v, want %v", size, tt.wantSize)
			}
			if alpha != tt.wantAlpha {
				t.Errorf("alpha = %v, want %v", alpha, tt.wantAlpha)
			}
		})
	}
}

func TestParticleRenderAtSpawn(t *testing.T) {
	var p Particle
	p.Initialize(5, 6, 1, 1, -0.6, testPalette, newTestRand())
	p.GlowIntensity = 0.5

	var s recordingSurface
	p.Render(&s, Glyph{Size: 28}, 2.5, Style{Size: 1, Glow: 1})

	if len(s.stamps) != 1 {
		t.Fatalf("got %d draws, want 1", len(s.stamps))
	}
	st := s.stamps[0]
	if st.Size != 0 {
		t.Errorf("Size = %v, want 0", st.Size)
	}
	if st.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", st.Alpha)
	}
	if st.Glow != GlowRadius*0.5 {
		t.Errorf("Glow = %v, want %v", st.Glow, GlowRadius*0.5)
	}
	if st.Position != (Point{X: 5, Y: 6}) {
		t.Errorf("Position = %+v, want {5 6}", st.Position)
	}
}

func TestHeartOutline(t *testing.T) {
	shape := HeartOutline(100)
	if shape.Start != (Point{X: 0, Y: -30}) {
		t.Errorf("Start = %+v, want {0 -30}", shape.Start)
	}
	if len(shape.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(shape.Curves))
	}
	if shape.Curves[0].End != (Point{X: 0, Y: 30}) {
		t.Errorf("tip = %+v, want {0 30}", shape.Curves[0].End)
	}
	if shape.Curves[1].End != shape.Start {
		t.Errorf("outline not closed: end %+v, start %+v", shape.Curves[1].End, shape.Start)
	}

	half := HeartOutline(50)
	if half.Curves[0].C2 != (Point{X: -45, Y: -5}) {
		t.Errorf("HeartOutline(50) C2 = %+v, want {-45 -5}", half.Curves[0].C2)
	}
}

func TestStampTransform(t *testing.T) {
	st := Stamp{Position: Point{X: 100, Y: 50}, Rotation: math.Pi}
	got := st.Transform(Point{X: 10, Y: 0})
	if math.Abs(got.X-90) > 1e-9 || math.Abs(got.Y-50) > 1e-9 {
		t.Errorf("Transform = %+v, want {90 50}", got)
	}
}

type recordingSurface struct {
	stamps []Stamp
}

func (s *recordingSurface) FillShape(_ Shape, st Stamp) {
	s.stamps = append(s.stamps, st)
}
