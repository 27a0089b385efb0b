package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-eel/internal/config"
	"github.com/vovakirdan/tui-eel/internal/core"
	"github.com/vovakirdan/tui-eel/internal/games/eel"
	"github.com/vovakirdan/tui-eel/internal/platform"
	"github.com/vovakirdan/tui-eel/internal/platform/audio"
	"github.com/vovakirdan/tui-eel/internal/platform/fb"
	"github.com/vovakirdan/tui-eel/internal/platform/gui"
	"github.com/vovakirdan/tui-eel/internal/platform/tui"
	"github.com/vovakirdan/tui-eel/internal/registry"
)

// Window size in cells when the board fits the window.
const (
	guiCols = 60
	guiRows = 30
)

var (
	flagDifficulty string
	flagVariant    string
	flagSpeed      int
	flagWidth      int
	flagHeight     int
	flagFPS        int
	flagSeed       int64

	flagBackend string
	flagSound   bool
	flagMenu    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a game. The variant comes from the argument, --variant or the config.

Controls:
  I/J/K/L, WASD, Arrows  - Steer
  Shift+direction        - Fast: one extra step per tick
  1-9                    - Speed level
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Ctrl+S                 - Screenshot
  Q/Ctrl+C               - Quit

Difficulty options:
  easy    - Start at speed 1
  normal  - Start at speed 5
  hard    - Start at speed 9
  fixed   - Use timing.speed from the config

Backends:
  tui  - Bubble Tea in the terminal (default)
  fb   - raw tcell screen
  gui  - desktop window

Examples:
  eel play
  eel play eel_classic
  eel play --difficulty hard --sound
  eel play --width 30 --height 15 --seed 7
  eel play --backend gui
  eel play --menu`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend: tui, fb, gui")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime when food is eaten")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the variant and speed from a menu (tui only)")

	addGameFlags(simulateCmd)
	addGameFlags(configCmd)
}

// addGameFlags registers the flags that override config values.
func addGameFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagVariant, "variant", "", "Rule variant: basic or extended")
	f.IntVar(&flagSpeed, "speed", 0, "Starting speed level 1-9")
	f.IntVar(&flagWidth, "width", 0, "Board width in cells (0 = fit the screen)")
	f.IntVar(&flagHeight, "height", 0, "Board height in cells (0 = fit the screen)")
	f.IntVar(&flagFPS, "fps", 0, "Frame rate")
}

// loadConfig loads the config file, then applies the preset and any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.EelConfig, error) {
	cfg, err := config.LoadEel(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyEelPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Timing.Speed = flagSpeed
	}
	if flags.Changed("variant") {
		cfg.Food.Variant = flagVariant
	}
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}

	return cfg, cfg.Validate()
}

// variantID maps the configured variant to its registry ID.
func variantID(cfg config.EelConfig) (string, error) {
	v, _ := eel.ParseVariant(cfg.Food.Variant)
	info, ok := registry.ForVariant(string(v))
	if !ok {
		return "", fmt.Errorf("no game plays the %q variant", v)
	}
	return info.ID, nil
}

// newGame creates a registered game and applies the configured colors.
func newGame(id string, cfg config.EelConfig) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}

	head, tail, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*eel.Game); ok {
		g.SetPalette(eel.Gradient{Head: head, Tail: tail})
	}
	return game, nil
}

// openLogger returns the event logger for interactive play. Without
// --log-file events are discarded: stderr is hidden by the alt screen.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return platform.NewLogger(nil, "eel"), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := platform.NewLogger(f, "eel")
	setLevel(logger)
	return logger, func() { f.Close() }, nil
}

func setLevel(logger *log.Logger) {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command, args []string) error {
	eelCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gameID, err := variantID(eelCfg)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (want one of %s)", gameID, strings.Join(registry.IDs(), ", "))
	}

	var run func(registry.Game, *platform.Session, core.RuntimeConfig) error
	width, height := 80, 24 // Defaults
	switch flagBackend {
	case "tui":
		run = tui.Run
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
	case "fb":
		run = fb.Run // Size comes from the tcell screen
	case "gui":
		run = gui.Run
		width, height = guiCols, guiRows
		if eelCfg.Board.Width > 0 {
			width = eelCfg.Board.Width + 2
		}
		if eelCfg.Board.Height > 0 {
			height = eelCfg.Board.Height + 4
		}
	default:
		return fmt.Errorf("unknown backend %q (want tui, fb or gui)", flagBackend)
	}
	if flagMenu && flagBackend != "tui" {
		return fmt.Errorf("--menu needs the tui backend")
	}

	cfg := eelCfg.ToRuntime(width, height, flagSeed)

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	var chime platform.Chime
	if flagSound {
		c, err := audio.NewChime()
		if err != nil {
			// Continue without sound - the game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open audio: %v\n", err)
		} else {
			defer c.Close()
			chime = c
		}
	}

	if !flagMenu {
		game, err := newGame(gameID, eelCfg)
		if err != nil {
			return err
		}
		return run(game, platform.NewSession(game, logger, chime), cfg)
	}

	// Menu loop: play the chosen variant, then return to the menu.
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		game, err := newGame(result.GameID, eelCfg)
		if err != nil {
			return err
		}
		if err := run(game, platform.NewSession(game, logger, chime), cfg); err != nil {
			return err
		}
	}
}
