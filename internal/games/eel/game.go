package eel

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// Screen layout around the board.
const (
	hudHeight = 2 // HUD line + separator
	border    = 1 // frame drawn around the board
)

// Game adapts the simulation to the platform's registry.Game interface.
// It owns the State and the Scheduler, maps input actions to commands and
// replaces the State wholesale on restart.
type Game struct {
	variant Variant
	palette Gradient
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	state   *State
	sched   *Scheduler

	// Resolved board size; cfg keeps the requested one, where 0 means fit.
	boardW int
	boardH int

	frames   uint64
	games    int
	paused   bool
	tooSmall bool
	initErr  error

	// Board placement on the screen
	offsetX int
	offsetY int
}

// NewGame creates an extended-variant game (five food kinds, body gradient).
func NewGame() *Game {
	return &Game{variant: VariantExtended}
}

// NewClassic creates a basic-variant game (plain food worth one cell).
func NewClassic() *Game {
	return &Game{variant: VariantBasic}
}

func init() {
	registry.Register("eel", func() registry.Game {
		return NewGame()
	})
	registry.Register("eel_classic", func() registry.Game {
		return NewClassic()
	})
}

// SetPalette sets the starting body gradient used by the next Reset or restart.
func (g *Game) SetPalette(p Gradient) {
	g.palette = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantBasic {
		return "eel_classic"
	}
	return "eel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantBasic {
		return "Eel (Classic)"
	}
	return "Eel"
}

// Reset starts a new game from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frames = 0
	g.games = 0
	g.paused = false
	g.sched = NewScheduler(cfg.BaseInterval, cfg.Speed)
	g.state = nil
	g.layout()
	g.newState()
}

// layout resolves the board size and its placement on the screen.
// A running board keeps its size. Otherwise a zero requested dimension
// fills the available screen space, re-fitted on every call.
func (g *Game) layout() {
	availW := g.cfg.ScreenW - 2*border
	availH := g.cfg.ScreenH - hudHeight - 2*border

	g.boardW, g.boardH = g.cfg.BoardW, g.cfg.BoardH
	if g.state != nil {
		g.boardW, g.boardH = g.state.Width(), g.state.Height()
	}
	if g.boardW <= 0 {
		g.boardW = availW
	}
	if g.boardH <= 0 {
		g.boardH = availH
	}

	g.tooSmall = g.boardW > availW || g.boardH > availH
	g.offsetX = (g.cfg.ScreenW - g.boardW) / 2
	g.offsetY = hudHeight + border
}

// newState replaces the simulation with a fresh one.
func (g *Game) newState() {
	state, err := New(Options{
		Width:   g.boardW,
		Height:  g.boardH,
		Variant: g.variant,
		Palette: g.palette,
	}, g.rng)
	g.initErr = err
	if err != nil {
		g.tooSmall = true
		g.state = nil
		return
	}
	g.state = state
	g.games++
	g.sched.Reset()
}

// Step handles one platform frame: commands first, then as many simulation
// steps as the scheduler grants for the elapsed time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++
	var events []core.Event

	if input.Has(core.ActionRestart) && g.state != nil && g.state.Terminal() {
		g.newState()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if lvl := input.SpeedLevel(); lvl > 0 && lvl != g.sched.Speed() {
		g.sched.SetSpeed(lvl)
		events = append(events, core.Event{Kind: core.EventSpeedChanged, Value: g.sched.Speed()})
	}

	if g.tooSmall || g.paused || g.state == nil || g.state.Terminal() {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.processInput(input)

	dt := input.Elapsed
	if dt <= 0 {
		dt = g.cfg.FrameInterval()
	}

	steps := g.sched.Advance(dt, input.Has(core.ActionFast))
	for range steps {
		switch g.state.Step() {
		case OutcomeAte:
			events = append(events, core.Event{Kind: core.EventAte, Value: g.state.LastEaten().Reward()})
		case OutcomeDied:
			events = append(events, core.Event{Kind: core.EventDied, Value: g.state.Len()})
		case OutcomeFilled:
			events = append(events,
				core.Event{Kind: core.EventAte, Value: g.state.LastEaten().Reward()},
				core.Event{Kind: core.EventDied, Value: g.state.Len()})
		}
		if g.state.Terminal() {
			break
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput passes the frame's last direction request to SetDirection.
func (g *Game) processInput(input core.InputFrame) {
	switch input.Direction() {
	case core.ActionUp:
		g.state.SetDirection(DirUp)
	case core.ActionDown:
		g.state.SetDirection(DirDown)
	case core.ActionLeft:
		g.state.SetDirection(DirLeft)
	case core.ActionRight:
		g.state.SetDirection(DirRight)
	}
}

// State returns the current game state. The score is the body length.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.state.Len(),
		GameOver: g.state.Terminal(),
		Paused:   g.paused,
	}
}

// Sim returns the running simulation, or nil if the board could not be built.
func (g *Game) Sim() *State {
	return g.state
}

// Speed returns the current speed level.
func (g *Game) Speed() int {
	if g.sched == nil {
		return ClampSpeed(g.cfg.Speed)
	}
	return g.sched.Speed()
}

// StepInterval returns the current step period.
func (g *Game) StepInterval() time.Duration {
	if g.sched == nil {
		return Interval(g.cfg.BaseInterval, g.cfg.Speed)
	}
	return g.sched.Interval()
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Err returns the error that prevented the board from being built, if any.
func (g *Game) Err() error {
	return g.initErr
}

// Variant returns the rule variant of this game.
func (g *Game) Variant() Variant {
	return g.variant
}

// VariantName reports the variant to the registry.
func (g *Game) VariantName() string {
	return string(g.variant)
}

// LogFields returns key/value pairs describing the run for structured logs.
func (g *Game) LogFields() []any {
	snap := g.Snapshot()
	return []any{
		"variant", string(snap.Variant),
		"length", snap.Len,
		"eaten", snap.Eaten,
		"steps", snap.Steps,
		"speed", snap.Speed,
	}
}

// Resize adapts the screen layout without touching a running simulation.
// The board keeps its size; a screen that can no longer hold it pauses the
// game until it grows again. When no board could be built yet, the first
// size that fits one starts the game.
func (g *Game) Resize(screenW, screenH int) {
	g.cfg.ScreenW = screenW
	g.cfg.ScreenH = screenH
	if g.sched == nil {
		return
	}
	g.layout()
	if g.state == nil && !g.tooSmall {
		g.newState()
	}
}
