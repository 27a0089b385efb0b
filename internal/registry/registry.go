// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the shells
// (terminal, framebuffer, window) to instantiate them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-eel/internal/core"
)

// Game is the interface every playable variant implements.
// Games contain pure logic with no UI dependencies; the shells handle
// input mapping, frame timing and drawing.
type Game interface {
	// ID returns a unique identifier (e.g., "eel", "eel_classic").
	// Used for CLI arguments and log fields.
	ID() string

	// Title returns a human-readable name for display (e.g., "Eel (Classic)").
	Title() string

	// Reset starts a new session from the runtime config: screen size,
	// board size, seed and starting speed.
	Reset(cfg core.RuntimeConfig)

	// Step handles one platform frame. Input carries the abstract actions
	// and the wall-clock time elapsed since the previous frame; the game
	// decides how many simulation steps that time buys.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// variantNamer is implemented by games that play a named rule variant.
type variantNamer interface {
	VariantName() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Variant string // empty when the game does not name its rules
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. A sample instance is created once
// to read its title and variant. Panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if v, ok := g.(variantNamer); ok {
		info.Variant = v.VariantName()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered game IDs, sorted.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// ForVariant returns the first game, by ID, that plays the named variant.
func ForVariant(variant string) (GameInfo, bool) {
	for _, info := range List() {
		if info.Variant == variant {
			return info, true
		}
	}
	return GameInfo{}, false
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
