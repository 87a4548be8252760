package particle

import "testing"

var testStyle = Style{Palette: testPalette, Speed: 1, Size: 1, Glow: 1}

func spawnN(p *Pool, n int) {
	for i := 0; i < n; i++ {
		p.Spawn(float64(i), 0, 1, 0, testPalette)
	}
}

func TestNewPool(t *testing.T) {
	p := NewPool(4, 1, -0.6, newTestRand())
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
	if p.Capacity() != 3 {
		t.Errorf("Capacity() = %d, want 3", p.Capacity())
	}
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, want 0", p.ActiveCount())
	}

	if got := NewPool(0, 1, 0, nil).Len(); got != DefaultLength {
		t.Errorf("NewPool(0).Len() = %d, want %d", got, DefaultLength)
	}
}

func TestPoolActiveCountGrows(t *testing.T) {
	p := NewPool(8, 1, 0, newTestRand())
	for i := 1; i <= 7; i++ {
		p.Spawn(0, 0, 1, 0, testPalette)
		if got := p.ActiveCount(); got != i {
			t.Fatalf("after %d spawns ActiveCount() = %d, want %d", i, got, i)
		}
	}
}

func TestPoolSpawnIntoFullPoolEvictsOldest(t *testing.T) {
	p := NewPool(4, 1, 0, newTestRand())
	spawnN(p, 3)
	if p.ActiveCount() != p.Capacity() {
		t.Fatalf("ActiveCount() = %d, want full %d", p.ActiveCount(), p.Capacity())
	}

	for i := 0; i < 10; i++ {
		active, free := p.firstActive, p.firstFree
		p.Spawn(100, 0, 1, 0, testPalette)

		if p.firstActive != (active+1)%p.Len() {
			t.Fatalf("spawn %d: firstActive = %d, want %d", i, p.firstActive, (active+1)%p.Len())
		}
		if p.firstFree != (free+1)%p.Len() {
			t.Fatalf("spawn %d: firstFree = %d, want %d", i, p.firstFree, (free+1)%p.Len())
		}
		if p.ActiveCount() != p.Capacity() {
			t.Fatalf("spawn %d: ActiveCount() = %d, want %d", i, p.ActiveCount(), p.Capacity())
		}
	}
}

func TestPoolActiveCountBounds(t *testing.T) {
	p := NewPool(5, 1, 0, newTestRand())
	steps := []struct {
		spawn int
		dt    float64
	}{
		{spawn: 2, dt: 0.3},
		{spawn: 6, dt: 0.3},
		{spawn: 1, dt: 0.5},
		{spawn: 0, dt: 0.4},
		{spawn: 9, dt: 0.1},
		{spawn: 0, dt: 2},
	}

	for i, step := range steps {
		spawnN(p, step.spawn)
		p.Update(step.dt, testStyle)
		if got := p.ActiveCount(); got < 0 || got > p.Len() {
			t.Fatalf("step %d: ActiveCount() = %d out of [0, %d]", i, got, p.Len())
		}
	}
	if got := p.ActiveCount(); got != 0 {
		t.Errorf("after a full lifetime ActiveCount() = %d, want 0", got)
	}
}

func TestPoolUpdateRetiresExpired(t *testing.T) {
	p := NewPool(4, 1.0, 0, newTestRand())
	spawnN(p, 4)

	p.Update(1.5, testStyle)

	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d, want 0", got)
	}
}

func TestPoolUpdateWrappedRange(t *testing.T) {
	p := NewPool(4, 1.0, 0, newTestRand())
	spawnN(p, 3)
	p.Update(0.6, testStyle)
	spawnN(p, 2) // wraps: evicts the oldest, active range crosses the buffer end

	if !(p.firstFree < p.firstActive) {
		t.Fatalf("expected wrapped range, got active=%d free=%d", p.firstActive, p.firstFree)
	}

	p.Update(0.5, testStyle)

	// The survivor of the first batch is now 1.1s old and retired, the new two stay.
	if got := p.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}
	p.each(func(pt *Particle) {
		if pt.Age != 0.5 {
			t.Errorf("live particle age = %v, want 0.5", pt.Age)
		}
	})
}

func TestPoolUpdateKeepsYoungParticles(t *testing.T) {
	p := NewPool(10, 2.5, -0.6, newTestRand())
	spawnN(p, 5)

	p.Update(1, testStyle)
	if got := p.ActiveCount(); got != 5 {
		t.Errorf("ActiveCount() = %d, want 5", got)
	}

	spawnN(p, 2)
	p.Update(1.5, testStyle)
	if got := p.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}
}

func TestPoolRenderDrawsActiveOnly(t *testing.T) {
	p := NewPool(6, 1, 0, newTestRand())
	spawnN(p, 8)

	var s recordingSurface
	p.Render(&s, Glyph{Size: 28}, testStyle)

	if len(s.stamps) != p.ActiveCount() {
		t.Fatalf("Render drew %d particles, want %d", len(s.stamps), p.ActiveCount())
	}
	// Oldest first: spawns 3..7 survive.
	for i, st := range s.stamps {
		if want := float64(i + 3); st.Position.X != want {
			t.Errorf("draw %d at x=%v, want %v", i, st.Position.X, want)
		}
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool(6, 1, 0, newTestRand())
	spawnN(p, 4)
	p.Reset()
	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() after Reset = %d, want 0", got)
	}

	var s recordingSurface
	p.Render(&s, Glyph{Size: 28}, testStyle)
	if len(s.stamps) != 0 {
		t.Errorf("Render after Reset drew %d particles", len(s.stamps))
	}
}
