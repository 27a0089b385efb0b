package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-eel/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered variant. Pass an ID to 'eel play' to skip the variant flag.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Rules", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, g.Variant, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'eel play <id>' to play a variant.")
}
