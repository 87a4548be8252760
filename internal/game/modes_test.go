package game

import "testing"

func TestModesCycleWraps(t *testing.T) {
	var m modes

	wantSpeeds := []float64{2, 0.5, 1, 2}
	for i, want := range wantSpeeds {
		m.cycleSpeed()
		if got := m.speedValue(); got != want {
			t.Errorf("speed cycle %d = %v, want %v", i, got, want)
		}
	}

	wantSizes := []float64{1.5, 0.7, 1}
	for i, want := range wantSizes {
		m.cycleSize()
		if got := m.sizeValue(); got != want {
			t.Errorf("size cycle %d = %v, want %v", i, got, want)
		}
	}

	for i := 0; i < 5; i++ {
		m.cycleColor(5)
	}
	if m.palette != 0 {
		t.Errorf("palette after a full cycle = %d, want 0", m.palette)
	}

	m.cycleColor(0)
	if m.palette != 0 {
		t.Errorf("cycleColor(0) moved palette to %d", m.palette)
	}
}

func TestModesReset(t *testing.T) {
	m := modes{palette: 3, speed: 1, size: 2, paused: true}
	m.reset()
	if m != (modes{}) {
		t.Errorf("reset() = %+v, want zero modes", m)
	}
	if m.speedValue() != 1 || m.sizeValue() != 1 {
		t.Errorf("default multipliers = %v/%v, want 1/1", m.speedValue(), m.sizeValue())
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"colorful": "Colorful",
		"ocean":    "Ocean",
		"":         "",
	}
	for in, want := range tests {
		if got := title(in); got != want {
			t.Errorf("title(%q) = %q, want %q", in, got, want)
		}
	}
}
