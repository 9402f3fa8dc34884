package audio

import (
	"testing"

	"github.com/Faultbox/deformo/internal/deform"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0.0, -100},
	}

	for _, tt := range tests {
		if got := volumeToExponent(tt.vol); got != tt.want {
			t.Errorf("volumeToExponent(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestToneFor(t *testing.T) {
	cfg := Config{PushToneHz: 220, PullToneHz: 165}

	tests := []struct {
		dir    deform.Direction
		wantHz float64
		wantOK bool
	}{
		{deform.Push, 220, true},
		{deform.Pull, 165, true},
		{deform.Neutral, 0, false},
	}

	for _, tt := range tests {
		hz, ok := toneFor(tt.dir, cfg)
		if hz != tt.wantHz || ok != tt.wantOK {
			t.Errorf("toneFor(%v) = (%v, %v), want (%v, %v)", tt.dir, hz, ok, tt.wantHz, tt.wantOK)
		}
	}

	if _, ok := toneFor(deform.Push, Config{}); ok {
		t.Error("zero frequency should disable the tone")
	}
}

func TestNewManager(t *testing.T) {
	m := New(Config{Volume: 1.5})
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want clamped 1.0", m.GetMasterVolume())
	}
	if m.IsInitialized() {
		t.Error("should not be initialized before Init()")
	}
}

func TestSetStrokeWithoutSpeaker(t *testing.T) {
	m := New(Config{Volume: 0.5, PushToneHz: 220, PullToneHz: 165})

	if err := m.SetStroke(deform.Push); err != nil {
		t.Fatalf("SetStroke: %v", err)
	}
	if m.Direction() != deform.Push {
		t.Errorf("direction = %v, want push", m.Direction())
	}
	if err := m.SetStroke(deform.Neutral); err != nil {
		t.Fatalf("SetStroke: %v", err)
	}
	if m.Direction() != deform.Neutral {
		t.Errorf("direction = %v, want neutral", m.Direction())
	}

	// Close before Init must not touch the speaker.
	m.Close()
}

func TestSetMasterVolume(t *testing.T) {
	m := New(Config{})
	m.SetMasterVolume(0.3)
	if m.GetMasterVolume() != 0.3 {
		t.Errorf("master volume = %f, want 0.3", m.GetMasterVolume())
	}
	m.SetMasterVolume(-1)
	if m.GetMasterVolume() != 0 {
		t.Errorf("master volume = %f, want 0", m.GetMasterVolume())
	}
}
