package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/games/eel"
	"github.com/vovakirdan/tui-eel/internal/platform"
)

var (
	flagSimSeed   int64
	flagSimSteps  int
	flagSimRender bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a seeded game without a display",
	Long: `Replays one game headless and prints the final state.

Steering comes from a seeded input generator: a stream of random direction
presses, filtered so a press never points straight into the body when a free
direction exists. It does not plan or play for score; it only feeds the
simulation reproducible input. The same seed and flags always give the same
result.

Examples:
  eel simulate
  eel simulate --seed 42 --steps 2000
  eel simulate eel_classic --width 10 --height 10 --render
  eel simulate -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&flagSimSeed, "seed", 1, "RNG seed")
	simulateCmd.Flags().IntVar(&flagSimSteps, "steps", 1000, "Maximum simulation steps")
	simulateCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final screen")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if err := simulate(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate(cmd *cobra.Command, args []string) error {
	eelCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagSimSteps <= 0 {
		return fmt.Errorf("--steps must be positive")
	}

	gameID, err := variantID(eelCfg)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		gameID = args[0]
	}
	g, err := newGame(gameID, eelCfg)
	if err != nil {
		return err
	}
	game, ok := g.(*eel.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be simulated", gameID)
	}

	// Size the screen around the board so it always fits.
	def := core.DefaultConfig()
	if eelCfg.Board.Width == 0 {
		eelCfg.Board.Width = def.BoardW
	}
	if eelCfg.Board.Height == 0 {
		eelCfg.Board.Height = def.BoardH
	}
	cfg := eelCfg.ToRuntime(eelCfg.Board.Width+2, eelCfg.Board.Height+4, flagSimSeed)

	logger := platform.NewLogger(os.Stderr, "eel")
	setLevel(logger)
	session := platform.NewSession(game, logger, nil)
	session.Start(cfg)
	if err := game.Err(); err != nil {
		return err
	}

	presses := rand.New(rand.NewSource(flagSimSeed))
	for range flagSimSteps {
		if game.Sim().Terminal() {
			break
		}
		frame := core.NewInputFrame()
		frame.Elapsed = game.StepInterval()
		frame.Set(steer(game.Sim(), presses))
		session.Observe(game.Step(frame))
	}
	session.Finish()

	printSnapshot(game.Snapshot(), flagSimSeed)
	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
	return nil
}

var directionActions = map[eel.Direction]core.Action{
	eel.DirUp:    core.ActionUp,
	eel.DirDown:  core.ActionDown,
	eel.DirLeft:  core.ActionLeft,
	eel.DirRight: core.ActionRight,
}

// steer generates the next input: usually no press, otherwise a random
// direction whose next cell is free. Returns ActionNone for no press.
func steer(s *eel.State, rng *rand.Rand) core.Action {
	ahead := s.Heading()
	if rng.Intn(5) != 0 && !s.Occupied(next(s, ahead)) {
		return core.ActionNone
	}

	var free []eel.Direction
	for _, d := range eel.Directions {
		if d != ahead.Opposite() && !s.Occupied(next(s, d)) {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		return core.ActionNone
	}
	return directionActions[free[rng.Intn(len(free))]]
}

// next returns the cell one step from the head in direction d.
func next(s *eel.State, d eel.Direction) eel.Cell {
	dx, dy := d.Delta()
	head := s.Head()
	return eel.Cell{
		X: (head.X + dx + s.Width()) % s.Width(),
		Y: (head.Y + dy + s.Height()) % s.Height(),
	}
}

func printSnapshot(snap eel.Snapshot, seed int64) {
	fmt.Printf("Variant:  %s\n", snap.Variant)
	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Speed:    %d\n", snap.Speed)
	fmt.Printf("Steps:    %d\n", snap.Steps)
	fmt.Printf("Length:   %d\n", snap.Len)
	fmt.Printf("Eaten:    %d\n", snap.Eaten)
	fmt.Printf("Head:     (%d, %d) heading %s\n", snap.Head.X, snap.Head.Y, snap.Dir)
	fmt.Printf("State:    %s\n", snap.State)
}
