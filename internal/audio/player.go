// Package audio plays the game's sound cues through the system speaker.
// Without an audio device the player stays silent instead of failing.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Player turns cues into sounds. A nil *Player is valid and silent.
type Player struct {
	mu      sync.Mutex
	cfg     Config
	logger  *log.Logger
	mixer   *beep.Mixer
	playing map[core.Cue]*beep.Ctrl
	ready   bool
}

// NewPlayer creates a player. Call Init before playing anything.
func NewPlayer(cfg Config, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		cfg:     cfg,
		logger:  logger,
		mixer:   &beep.Mixer{},
		playing: make(map[core.Cue]*beep.Ctrl),
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for the caller to log.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready || !p.cfg.Enabled {
		return nil
	}
	if err := p.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "sample_rate", p.cfg.SampleRate, "volume", p.cfg.Volume)
	return nil
}

// Enabled reports whether cues are actually audible.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play starts the sound for c. A cue that is still playing restarts from
// the beginning.
func (p *Player) Play(c core.Cue) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	s := soundFor(c, p.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	if prev, ok := p.playing[c]; ok {
		prev.Streamer = nil // Drained by the mixer on its next pass
	}
	ctrl := &beep.Ctrl{Streamer: s}
	p.playing[c] = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// PlayAll plays every cue raised by one step.
func (p *Player) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		p.Play(c)
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.playing = make(map[core.Cue]*beep.Ctrl)
	p.ready = false
}
