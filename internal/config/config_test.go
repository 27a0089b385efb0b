package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-eel/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eel.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadEel("")
	if err != nil {
		t.Fatalf("LoadEel() error = %v", err)
	}
	if cfg != DefaultEelConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultEelConfig())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, "timing:\n  speed: 7\nfood:\n  variant: basic\n")

	cfg, err := LoadEel(path)
	if err != nil {
		t.Fatalf("LoadEel() error = %v", err)
	}
	if cfg.Timing.Speed != 7 {
		t.Errorf("Speed = %d, expected 7", cfg.Timing.Speed)
	}
	if cfg.Food.Variant != "basic" {
		t.Errorf("Variant = %q, expected basic", cfg.Food.Variant)
	}
	// Unset keys keep their defaults.
	if cfg.Board != DefaultEelConfig().Board {
		t.Errorf("Board = %+v, expected defaults", cfg.Board)
	}
	if cfg.BaseInterval() != 150*time.Millisecond {
		t.Errorf("BaseInterval() = %v, expected 150ms", cfg.BaseInterval())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".eel", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "eel.yaml"), []byte("board:\n  width: 12\n  height: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEel("")
	if err != nil {
		t.Fatalf("LoadEel() error = %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 9 {
		t.Errorf("Board = %+v, expected 12x9", cfg.Board)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "timing: [1, 2\n"},
		{"speed too high", "timing:\n  speed: 10\n"},
		{"tiny board", "board:\n  width: 2\n"},
		{"unknown variant", "food:\n  variant: rainbow\n"},
		{"bad color", "colors:\n  head: green\n"},
		{"fps", "timing:\n  fps: 1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadEel(writeConfig(t, tc.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadEel(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 5},
		{DifficultyHard, 9},
		{DifficultyFixed, 3},
	}

	for _, tc := range tests {
		cfg := DefaultEelConfig()
		cfg.Timing.Speed = 3
		ApplyEelPreset(&cfg, tc.preset)
		if cfg.Timing.Speed != tc.expected {
			t.Errorf("%s: Speed = %d, expected %d", tc.preset, cfg.Timing.Speed, tc.expected)
		}
	}

	if p, err := ParsePreset(""); err != nil || p != DifficultyFixed {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestToRuntime(t *testing.T) {
	cfg := DefaultEelConfig()
	rc := cfg.ToRuntime(100, 30, 42)

	if rc.ScreenW != 100 || rc.ScreenH != 30 || rc.Seed != 42 {
		t.Errorf("screen/seed = %dx%d/%d", rc.ScreenW, rc.ScreenH, rc.Seed)
	}
	if rc.BoardW != 40 || rc.BoardH != 20 {
		t.Errorf("board = %dx%d, expected 40x20", rc.BoardW, rc.BoardH)
	}
	if rc.BaseInterval != 150*time.Millisecond || rc.Speed != 1 || rc.TickRate != 60 {
		t.Errorf("timing = %v/%d/%d", rc.BaseInterval, rc.Speed, rc.TickRate)
	}
}

func TestPalette(t *testing.T) {
	head, tail, err := DefaultEelConfig().Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if head != (core.RGB{R: 46, G: 204, B: 113}) {
		t.Errorf("head = %v", head)
	}
	if tail != (core.RGB{R: 17, G: 84, B: 60}) {
		t.Errorf("tail = %v", tail)
	}
	if head.Hex() != DefaultEelConfig().Colors.Head {
		t.Errorf("Hex() = %s, expected %s", head.Hex(), DefaultEelConfig().Colors.Head)
	}
}

func TestMarshal(t *testing.T) {
	data, err := DefaultEelConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{"base_interval_ms: 150", "variant: extended", "width: 40"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshal() output missing %q:\n%s", key, data)
		}
	}
}
