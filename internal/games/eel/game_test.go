package eel

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// stepFor runs one frame with the given elapsed time and actions.
func stepFor(g *Game, dt time.Duration, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	input.Elapsed = dt
	return g.Step(input)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig(12345)

	g1 := NewGame()
	g1.Reset(cfg)

	g2 := NewGame()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 40:
			input.Set(core.ActionDown)
		case 120:
			input.Set(core.ActionLeft)
		case 300:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Steps == 0 {
		t.Error("expected the simulation to advance over 600 frames")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(42))

	heading := g.Sim().Heading()
	head := g.Sim().Head()

	stepFor(g, BaseInterval, directionAction(heading.Opposite()))

	if g.Sim().Heading() != heading {
		t.Errorf("Heading() = %v after reversal request, expected %v", g.Sim().Heading(), heading)
	}
	if g.Sim().Terminal() {
		t.Fatal("reversal request must not kill the eel")
	}

	dx, dy := heading.Delta()
	expected := Cell{core.Wrap(head.X+dx, g.Sim().Width()), core.Wrap(head.Y+dy, g.Sim().Height())}
	if g.Sim().Head() != expected {
		t.Errorf("Head() = %v, expected %v", g.Sim().Head(), expected)
	}
}

func directionAction(d Direction) core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}

func TestTurn(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(3))

	turn := DirUp
	if h := g.Sim().Heading(); h == DirUp || h == DirDown {
		turn = DirLeft
	}

	stepFor(g, BaseInterval, directionAction(turn))
	if g.Sim().Heading() != turn {
		t.Errorf("Heading() = %v, expected %v", g.Sim().Heading(), turn)
	}
}

func TestLastDirectionInFrameWins(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		g := NewGame()
		g.Reset(testConfig(3))

		// Two turns off the current axis; neither is a reversal.
		first, second := DirLeft, DirRight
		if h := g.Sim().Heading(); h == DirLeft || h == DirRight {
			first, second = DirUp, DirDown
		}
		if reversed {
			first, second = second, first
		}

		stepFor(g, 0, directionAction(first), directionAction(second))
		if g.Sim().Heading() != second {
			t.Errorf("%v then %v: Heading() = %v, expected %v", first, second, g.Sim().Heading(), second)
		}
	}
}

func TestFoodNeverOnBody(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(99))

	actions := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
	for i := 0; i < 2000; i++ {
		res := stepFor(g, BaseInterval, actions[(i/7)%len(actions)])
		if res.State.GameOver {
			stepFor(g, 0, core.ActionRestart)
			continue
		}
		s := g.Sim()
		if s.Occupied(s.Food().Cell) {
			t.Fatalf("frame %d: food at %v overlaps the body", i, s.Food().Cell)
		}
	}
}

func TestEatEvent(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(8))

	s := g.Sim()
	dx, dy := s.Heading().Delta()
	next := Cell{core.Wrap(s.Head().X+dx, s.Width()), core.Wrap(s.Head().Y+dy, s.Height())}
	s.food = Food{Cell: next, Kind: FoodBlue, Typed: true}

	res := stepFor(g, BaseInterval)

	if !res.Has(core.EventAte) {
		t.Fatal("expected an EventAte")
	}
	for _, e := range res.Events {
		if e.Kind == core.EventAte && e.Value != FoodBlue.Reward() {
			t.Errorf("EventAte.Value = %d, expected %d", e.Value, FoodBlue.Reward())
		}
	}
	if res.State.Score != InitialLength+1 {
		t.Errorf("Score = %d, expected %d", res.State.Score, InitialLength+1)
	}
	if g.Sim().GrowthDebt() != FoodBlue.Reward()-1 {
		t.Errorf("GrowthDebt() = %d, expected %d", g.Sim().GrowthDebt(), FoodBlue.Reward()-1)
	}
}

func TestRestartReplacesState(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(1))

	// Restart is ignored while playing.
	before := g.Sim()
	stepFor(g, 0, core.ActionRestart)
	if g.Sim() != before {
		t.Fatal("restart while playing should keep the running simulation")
	}

	g.Sim().terminal = true
	stepFor(g, 0, core.ActionRestart)

	if g.Sim() == before {
		t.Error("restart should replace the simulation")
	}
	if g.Sim().Terminal() {
		t.Error("new simulation should not be terminal")
	}
	if snap := g.Snapshot(); snap.Games != 2 || snap.State != StatePlaying {
		t.Errorf("Snapshot Games = %d, State = %s; expected 2, playing", snap.Games, snap.State)
	}
	if g.Sim().Len() != InitialLength {
		t.Errorf("Len() = %d, expected %d", g.Sim().Len(), InitialLength)
	}
}

func TestTerminalIgnoresFrames(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(1))
	g.Sim().terminal = true
	steps := g.Sim().Steps()

	res := stepFor(g, time.Second, core.ActionUp, core.ActionFast)
	if !res.State.GameOver {
		t.Error("expected GameOver")
	}
	if g.Sim().Steps() != steps {
		t.Errorf("Steps() = %d, expected %d", g.Sim().Steps(), steps)
	}
}

func TestPause(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(5))

	stepFor(g, 0, core.ActionPause)
	if !g.Paused() {
		t.Fatal("expected game to be paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot State = %s, expected paused", g.Snapshot().State)
	}

	steps := g.Sim().Steps()
	stepFor(g, time.Second)
	if g.Sim().Steps() != steps {
		t.Error("paused game should not advance")
	}

	stepFor(g, 0, core.ActionPause)
	if g.Paused() {
		t.Error("expected game to resume")
	}
	stepFor(g, BaseInterval)
	if g.Sim().Steps() != steps+1 {
		t.Errorf("Steps() = %d, expected %d", g.Sim().Steps(), steps+1)
	}
}

func TestSpeedChange(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(5))

	res := stepFor(g, 0, core.SpeedAction(5))
	if !res.Has(core.EventSpeedChanged) {
		t.Error("expected EventSpeedChanged")
	}
	if g.Speed() != 5 {
		t.Errorf("Speed() = %d, expected 5", g.Speed())
	}
	if g.StepInterval() != 100*time.Millisecond {
		t.Errorf("StepInterval() = %v, expected 100ms", g.StepInterval())
	}

	// Selecting the current level again is not a change.
	if res := stepFor(g, 0, core.SpeedAction(5)); res.Has(core.EventSpeedChanged) {
		t.Error("unexpected EventSpeedChanged for the same level")
	}
}

func TestFastDoubleStep(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(21))

	stepFor(g, BaseInterval, core.ActionFast)
	if g.Sim().Steps() != 2 && !g.Sim().Terminal() {
		t.Errorf("Steps() = %d with fast modifier, expected 2", g.Sim().Steps())
	}

	steps := g.Sim().Steps()
	stepFor(g, BaseInterval)
	if g.Sim().Steps() != steps+1 && !g.Sim().Terminal() {
		t.Errorf("Steps() = %d without fast modifier, expected %d", g.Sim().Steps(), steps+1)
	}
}

func TestFixedTickFallback(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(2))

	// 60 fps frames at speed 1: nine frames fall just short of 150ms, the tenth fires.
	for i := 0; i < 8; i++ {
		stepFor(g, 0)
	}
	if g.Sim().Steps() != 0 {
		t.Fatalf("Steps() = %d after 8 frames, expected 0", g.Sim().Steps())
	}
	stepFor(g, 0)
	stepFor(g, 0)
	if g.Sim().Steps() != 1 {
		t.Errorf("Steps() = %d after 10 frames, expected 1", g.Sim().Steps())
	}
}

func TestBoardFitsScreen(t *testing.T) {
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 30, 12
	cfg.BoardW, cfg.BoardH = 0, 0

	g := NewGame()
	g.Reset(cfg)

	if g.Sim() == nil {
		t.Fatalf("expected a board, got error %v", g.Err())
	}
	if g.Sim().Width() != 28 || g.Sim().Height() != 8 {
		t.Errorf("board = %dx%d, expected 28x8", g.Sim().Width(), g.Sim().Height())
	}
}

func TestScreenTooSmall(t *testing.T) {
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 20, 10

	g := NewGame()
	g.Reset(cfg)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	// Frames are harmless while the window is too small.
	stepFor(g, time.Second, core.ActionUp)

	scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", scr.String())
	}
}

func TestBoardTooSmallError(t *testing.T) {
	cfg := testConfig(1)
	cfg.BoardW, cfg.BoardH = 2, 10

	g := NewGame()
	g.Reset(cfg)

	if g.Sim() != nil {
		t.Error("expected no simulation for a 2-wide board")
	}
	if g.Err() == nil {
		t.Error("expected Err() to report the invalid board")
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig(77)
	g := NewGame()
	g.Reset(cfg)

	scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(scr)

	s := g.Sim()
	head := s.Head()
	if r := scr.Get(g.offsetX+head.X, g.offsetY+head.Y); r != glyphHead {
		t.Errorf("head cell = %q, expected %q", r, glyphHead)
	}
	for i := 1; i < s.Len(); i++ {
		c := s.Segment(i)
		if r := scr.Get(g.offsetX+c.X, g.offsetY+c.Y); r != glyphBody {
			t.Errorf("segment %d = %q, expected %q", i, r, glyphBody)
		}
	}

	food := s.Food().Cell
	cell := scr.GetCell(g.offsetX+food.X, g.offsetY+food.Y)
	if cell.Rune != glyphFood {
		t.Errorf("food cell = %q, expected %q", cell.Rune, glyphFood)
	}
	if !cell.HasRGB || cell.Fg != s.Food().Kind.Color() {
		t.Errorf("food color = %v, expected %v", cell.Fg, s.Food().Kind.Color())
	}

	if !strings.Contains(scr.Row(0), "Length: 3") {
		t.Errorf("HUD = %q, expected it to show the length", scr.Row(0))
	}
}

func TestRenderClassicColors(t *testing.T) {
	cfg := testConfig(77)
	g := NewClassic()
	g.Reset(cfg)

	scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(scr)

	head := g.Sim().Head()
	if c := scr.GetCell(g.offsetX+head.X, g.offsetY+head.Y); c.HasRGB || c.Color != core.ColorBrightGreen {
		t.Errorf("classic head cell = %+v, expected bright green palette color", c)
	}
	if g.ID() != "eel_classic" || g.Title() != "Eel (Classic)" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestRenderGameOver(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(4))
	g.Sim().terminal = true

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Game Over") {
		t.Errorf("expected Game Over overlay, got:\n%s", scr.String())
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := NewGame()
	g.Reset(testConfig(6))
	stepFor(g, BaseInterval)
	sim := g.Sim()

	g.Resize(20, 10)
	if g.Sim() != sim {
		t.Fatal("Resize should keep the running simulation")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s after shrinking, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	steps := sim.Steps()
	stepFor(g, time.Second)
	if sim.Steps() != steps {
		t.Error("game should not advance while the window is too small")
	}

	g.Resize(100, 40)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s after growing, expected playing", g.Snapshot().State)
	}
	if g.offsetX != (100-sim.Width())/2 {
		t.Errorf("offsetX = %d, expected %d", g.offsetX, (100-sim.Width())/2)
	}
}

func TestResizeRecoversFromTooSmall(t *testing.T) {
	cfg := testConfig(6)
	cfg.ScreenW, cfg.ScreenH = 4, 6
	cfg.BoardW, cfg.BoardH = 0, 0

	g := NewGame()
	g.Reset(cfg)
	if g.Sim() != nil || g.Err() == nil {
		t.Fatalf("expected no board on a 4x6 screen, got sim=%v err=%v", g.Sim() != nil, g.Err())
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(80, 24)
	if g.Sim() == nil {
		t.Fatalf("Resize(80, 24) should start a game, Err() = %v", g.Err())
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v after recovering, expected nil", g.Err())
	}
	if g.Sim().Width() != 78 || g.Sim().Height() != 20 {
		t.Errorf("board = %dx%d, expected 78x20", g.Sim().Width(), g.Sim().Height())
	}
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s, expected playing", g.Snapshot().State)
	}

	stepFor(g, BaseInterval)
	if g.Sim().Steps() != 1 {
		t.Errorf("Steps() = %d after one interval, expected 1", g.Sim().Steps())
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		variant Variant
		id      string
	}{
		{VariantBasic, "eel_classic"},
		{VariantExtended, "eel"},
	}

	for _, tc := range tests {
		info, ok := registry.ForVariant(string(tc.variant))
		if !ok {
			t.Errorf("no registered game plays %s", tc.variant)
			continue
		}
		if info.ID != tc.id {
			t.Errorf("ForVariant(%s).ID = %q, expected %q", tc.variant, info.ID, tc.id)
		}
	}
}

func TestLogFields(t *testing.T) {
	g := NewClassic()
	g.Reset(testConfig(6))

	fields := g.LogFields()
	if len(fields)%2 != 0 {
		t.Fatalf("LogFields() has odd length %d", len(fields))
	}
	got := map[string]any{}
	for i := 0; i < len(fields); i += 2 {
		got[fields[i].(string)] = fields[i+1]
	}
	if got["variant"] != "basic" || got["length"] != InitialLength {
		t.Errorf("LogFields() = %v", got)
	}
}
