// eel is a toroidal snake game for the terminal, a raw tcell screen or a
// desktop window.
//
// Usage:
//
//	eel play                 - Play in the terminal
//	eel play --backend gui   - Play in a window
//	eel list                 - List game variants
//	eel simulate             - Run a seeded game headless and print the result
//	eel config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--log-file <path>  - Write game events to a log file
//	--verbose          - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-eel/internal/games/eel"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eel",
	Short: "Eel - a snake on a wrap-around board",
	Long: `Eel is a snake game played on a toroidal board: leaving one edge
re-enters from the opposite side, so the only way to die is to run into
your own body.

Available commands:
  play      - Start a game
  list      - Show the game variants
  simulate  - Run a seeded game without a display
  config    - Print the effective configuration

Examples:
  eel play
  eel play --variant basic --speed 5
  eel play --backend fb
  eel simulate --seed 42 --steps 500
  eel config > ~/.eel/configs/eel.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
