package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedForPreset returns the starting speed level for a preset, or 0 when
// the preset keeps the configured speed.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 9
	default:
		return 0
	}
}

// ApplyEelPreset modifies the config based on a difficulty preset.
func ApplyEelPreset(cfg *EelConfig, preset DifficultyPreset) {
	if speed := SpeedForPreset(preset); speed > 0 {
		cfg.Timing.Speed = speed
	}
}
