// Package audio plays the stroke feedback tone.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/Faultbox/deformo/internal/deform"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Config holds the tone settings.
type Config struct {
	Volume     float64 // 0.0 to 1.0
	PushToneHz float64
	PullToneHz float64
}

// Manager plays a continuous tone while a stroke is active. Push and pull
// strokes use different pitches.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	config       Config
	masterVolume float64

	// Current tone
	tone       *beep.Ctrl
	toneVolume *effects.Volume
	toneDir    deform.Direction

	// Mixer all tones play through
	mixer *beep.Mixer
}

// New creates a new audio manager.
func New(cfg Config) *Manager {
	return &Manager{
		config:       cfg,
		masterVolume: clamp(cfg.Volume, 0, 1),
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopToneInternal()
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateToneVolume()
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// Direction returns the direction of the tone currently requested.
func (m *Manager) Direction() deform.Direction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.toneDir
}

// SetStroke starts, switches or stops the tone to match dir. Neutral stops
// it. Without an initialized speaker only the requested direction is
// recorded.
func (m *Manager) SetStroke(dir deform.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dir == m.toneDir {
		return nil
	}
	m.toneDir = dir
	if !m.initialized {
		return nil
	}

	m.stopToneInternal()

	hz, ok := toneFor(dir, m.config)
	if !ok {
		return nil
	}
	sine, err := generators.SineTone(m.sampleRate, hz)
	if err != nil {
		return fmt.Errorf("stroke tone: %w", err)
	}

	m.tone = &beep.Ctrl{Streamer: sine}
	m.toneVolume = &effects.Volume{
		Streamer: m.tone,
		Base:     2,
	}
	m.updateToneVolume()

	speaker.Lock()
	m.mixer.Add(m.toneVolume)
	speaker.Unlock()
	return nil
}

// stopToneInternal drains the current tone; the mixer drops it on its next
// pass.
func (m *Manager) stopToneInternal() {
	if m.tone == nil {
		return
	}
	speaker.Lock()
	m.tone.Streamer = nil
	speaker.Unlock()
	m.tone = nil
	m.toneVolume = nil
}

func (m *Manager) updateToneVolume() {
	if m.toneVolume == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if m.masterVolume <= 0 {
		m.toneVolume.Silent = true
		return
	}
	m.toneVolume.Silent = false
	m.toneVolume.Volume = volumeToExponent(m.masterVolume)
}

// toneFor returns the tone frequency for a stroke direction.
func toneFor(dir deform.Direction, cfg Config) (float64, bool) {
	var hz float64
	switch dir {
	case deform.Push:
		hz = cfg.PushToneHz
	case deform.Pull:
		hz = cfg.PullToneHz
	}
	if hz <= 0 {
		return 0, false
	}
	return hz, true
}

// volumeToExponent converts a 0-1 volume to the base-2 exponent used by
// effects.Volume, so that vol=1 plays at full gain and vol=0.5 at half.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return gomath.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
