package game

import "time"

// frameStats counts drawn frames and publishes FPS and the live particle
// count at most once per interval.
type frameStats struct {
	interval  time.Duration
	frames    int
	last      time.Time
	fps       int
	particles int
}

func newFrameStats(interval time.Duration) frameStats {
	return frameStats{interval: interval}
}

// record counts one drawn frame.
func (s *frameStats) record(now time.Time, active int) {
	s.frames++
	if !s.last.IsZero() && now.Sub(s.last) <= s.interval {
		return
	}
	s.fps = s.frames
	s.particles = active
	s.frames = 0
	s.last = now
}
