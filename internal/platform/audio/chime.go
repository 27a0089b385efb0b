// Package audio plays the eat chime through the system speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 60 * time.Millisecond
)

// notes are the chime pitches in Hz, one per food reward (C major pentatonic).
var notes = [...]float64{523.25, 587.33, 659.25, 783.99, 880.00}

// Chime plays a short sine tone whose pitch rises with the food reward.
type Chime struct {
	volume float64 // gain in beep's exponential units, 0 = unchanged
}

// NewChime initializes the speaker. Callers should treat an error as
// "run without sound".
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return &Chime{volume: -1}, nil
}

// Play queues the tone for a reward. It never blocks the game loop.
func (c *Chime) Play(reward int) {
	if c == nil {
		return
	}
	s, err := Tone(reward, c.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}

// Note returns the pitch used for a reward; out-of-range rewards are clamped.
func Note(reward int) float64 {
	i := min(max(reward, 1), len(notes)) - 1
	return notes[i]
}

// Tone builds the chime streamer for a reward.
func Tone(reward int, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, Note(reward))
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneDuration), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}
