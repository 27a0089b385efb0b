// Package config provides YAML-based configuration loading and difficulty
// presets for the eel game.
package config

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// EelConfig contains all configuration for the eel game.
type EelConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Colors ColorConfig  `yaml:"colors"`
}

// BoardConfig defines the playing field. A zero dimension fits the terminal.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines step pacing.
type TimingConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"` // Step period at speed 1
	Speed          int `yaml:"speed"`            // Initial speed level 1-9
	FPS            int `yaml:"fps"`              // Platform frame rate
}

// FoodConfig selects the rule variant.
type FoodConfig struct {
	Variant string `yaml:"variant"` // "basic" or "extended"
}

// ColorConfig defines the starting body gradient as hex colors.
type ColorConfig struct {
	Head string `yaml:"head"`
	Tail string `yaml:"tail"`
}

// Limits enforced by Validate.
const (
	MinBoard  = 3
	MinSpeed  = 1
	MaxSpeed  = 9
	MinFPS    = 10
	MaxFPS    = 240
	minBaseMS = 10
)

// Validate checks the config for values the game cannot run with.
func (c EelConfig) Validate() error {
	if c.Board.Width != 0 && c.Board.Width < MinBoard {
		return fmt.Errorf("config: board.width %d: must be 0 or at least %d", c.Board.Width, MinBoard)
	}
	if c.Board.Height != 0 && c.Board.Height < MinBoard {
		return fmt.Errorf("config: board.height %d: must be 0 or at least %d", c.Board.Height, MinBoard)
	}
	if c.Timing.Speed < MinSpeed || c.Timing.Speed > MaxSpeed {
		return fmt.Errorf("config: timing.speed %d: must be %d-%d", c.Timing.Speed, MinSpeed, MaxSpeed)
	}
	if c.Timing.BaseIntervalMS < minBaseMS {
		return fmt.Errorf("config: timing.base_interval_ms %d: must be at least %d", c.Timing.BaseIntervalMS, minBaseMS)
	}
	if c.Timing.FPS < MinFPS || c.Timing.FPS > MaxFPS {
		return fmt.Errorf("config: timing.fps %d: must be %d-%d", c.Timing.FPS, MinFPS, MaxFPS)
	}
	switch c.Food.Variant {
	case "basic", "classic", "extended":
	default:
		return fmt.Errorf("config: food.variant %q: must be basic or extended", c.Food.Variant)
	}
	if _, err := ParseHex(c.Colors.Head); err != nil {
		return fmt.Errorf("config: colors.head: %w", err)
	}
	if _, err := ParseHex(c.Colors.Tail); err != nil {
		return fmt.Errorf("config: colors.tail: %w", err)
	}
	return nil
}

// BaseInterval returns the step period at speed 1.
func (c EelConfig) BaseInterval() time.Duration {
	return time.Duration(c.Timing.BaseIntervalMS) * time.Millisecond
}

// ToRuntime builds the runtime config handed to Game.Reset.
func (c EelConfig) ToRuntime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		TickRate:     c.Timing.FPS,
		Seed:         seed,
		BoardW:       c.Board.Width,
		BoardH:       c.Board.Height,
		Speed:        c.Timing.Speed,
		BaseInterval: c.BaseInterval(),
	}
}

// Palette returns the configured head and tail colors.
func (c EelConfig) Palette() (head, tail core.RGB, err error) {
	if head, err = ParseHex(c.Colors.Head); err != nil {
		return head, tail, err
	}
	tail, err = ParseHex(c.Colors.Tail)
	return head, tail, err
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (core.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}
