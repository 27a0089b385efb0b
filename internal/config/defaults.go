package config

import (
	_ "embed"
)

//go:embed defaults/eel.yaml
var defaultEelYAML []byte

// DefaultEelConfig returns the default eel configuration.
func DefaultEelConfig() EelConfig {
	return EelConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseIntervalMS: 150,
			Speed:          1,
			FPS:            60,
		},
		Food: FoodConfig{
			Variant: "extended",
		},
		Colors: ColorConfig{
			Head: "#2ecc71",
			Tail: "#11543c",
		},
	}
}
