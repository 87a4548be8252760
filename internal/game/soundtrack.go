package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-particles/internal/config"
)

// ErrUnsupportedFormat is returned for audio files that cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// soundtrack plays an optional music file. Its loudness feeds the particle glow.
type soundtrack struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *visualTap
	name        string

	initDone bool
	finished atomic.Bool // set from the speaker goroutine
	smoothed float64
}

func newSoundtrack() *soundtrack {
	return &soundtrack{}
}

func (s *soundtrack) playing() bool { return s.ctrl != nil }

// openDialog asks the user for a file and starts playing it. Cancelling the
// dialog is not an error.
func (s *soundtrack) openDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return s.load(filename)
}

func supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".wav", ".mp3", ".flac":
		return true
	}
	return false
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

func (s *soundtrack) load(path string) error {
	ext := filepath.Ext(path)
	if !supported(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open music: %w", err)
	}
	streamer, format, err := decode(f, ext)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> tap -> ctrl
	t := newVisualTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !s.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		s.initDone = true
	case s.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	s.release()

	s.currentFile = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.tap = t
	s.name = filepath.Base(path)
	s.finished.Store(false)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		s.finished.Store(true)
	})))
	log.Printf("Playing %s", s.name)
	return nil
}

// release closes the previous track. The speaker must no longer reference it.
func (s *soundtrack) release() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
	s.ctrl = nil
	s.tap = nil
	s.name = ""
	s.smoothed = 0
}

func (s *soundtrack) setPaused(paused bool) {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

// update runs once per frame: it tidies up a finished track and smooths the level.
func (s *soundtrack) update() {
	if s.finished.Load() {
		log.Printf("Finished %s", s.name)
		s.finished.Store(false)
		s.release()
		return
	}
	if s.tap == nil {
		return
	}
	// Compress so quiet passages still move the glow.
	mag := math.Pow(s.tap.level(2048), 0.3)
	s.smoothed = config.SmoothingFactor*s.smoothed + (1-config.SmoothingFactor)*mag
}

// level is the smoothed loudness in [0, 1].
func (s *soundtrack) level() float64 {
	return clamp01(s.smoothed)
}

func (s *soundtrack) status() string {
	if s.streamer == nil {
		return ""
	}
	speaker.Lock()
	pos := s.format.SampleRate.D(s.streamer.Position())
	total := s.format.SampleRate.D(s.streamer.Len())
	speaker.Unlock()
	return fmt.Sprintf("%s %s/%s", s.name, formatDuration(pos), formatDuration(total))
}

func (s *soundtrack) close() {
	if s.initDone {
		speaker.Clear()
	}
	s.release()
}
