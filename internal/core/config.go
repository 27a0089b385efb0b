package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	BoardW       int           // Board width in cells (0 = fit to screen)
	BoardH       int           // Board height in cells (0 = fit to screen)
	Speed        int           // Initial speed level 1-9
	BaseInterval time.Duration // Step period at speed level 1
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		Seed:         0, // 0 means use current time in platform layer
		BoardW:       40,
		BoardH:       20,
		Speed:        1,
		BaseInterval: 150 * time.Millisecond,
	}
}

// FrameInterval returns the duration of one platform frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a Step.
type EventKind int

const (
	EventAte EventKind = iota + 1
	EventDied
	EventSpeedChanged
)

// Event is emitted by Game.Step so shells can react (sound, logging)
// without inspecting game internals.
type Event struct {
	Kind  EventKind
	Value int // Reward for EventAte, new level for EventSpeedChanged
}

// StepResult is returned by Game.Step() after each platform frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
