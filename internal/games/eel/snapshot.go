package eel

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Frames     uint64
	Steps      uint64
	Games      int
	Variant    Variant
	Speed      int
	Len        int
	Head       Cell
	Dir        Direction
	Food       Food
	GrowthDebt int
	Eaten      int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:  g.frames,
		Games:   g.games,
		Variant: g.variant,
		Speed:   g.Speed(),
		State:   StatePlaying,
	}

	switch {
	case g.tooSmall || g.state == nil:
		snap.State = StatePausedSmall
	case g.state.Terminal():
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	}

	if s := g.state; s != nil {
		snap.Steps = s.Steps()
		snap.Len = s.Len()
		snap.Head = s.Head()
		snap.Dir = s.Heading()
		snap.Food = s.Food()
		snap.GrowthDebt = s.GrowthDebt()
		snap.Eaten = s.Eaten()
	}
	return snap
}
