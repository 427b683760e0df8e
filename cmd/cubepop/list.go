package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubepop/internal/games/cubepop/levels"
	"github.com/vovakirdan/cubepop/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "List levels from this directory instead of the built-in set")
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	fmt.Println("Modes:")
	for _, g := range games {
		fmt.Printf("  %-18s  %s\n", g.ID, g.Title)
	}

	loader := levels.Builtin()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	if len(all) == 0 {
		fmt.Println("  (none)")
		return
	}
	fmt.Printf("  %-3s  %-18s  %-20s  %-6s  %-6s  %s\n", "#", "ID", "Name", "Cube", "Colors", "Moves")
	for i, l := range all {
		fmt.Printf("  %-3d  %-18s  %-20s  %-6s  %-6d  %d\n", i+1, l.ID, l.Name, fmt.Sprintf("%d³", l.Size), l.Colors, l.MoveLimit)
	}
	fmt.Println()
	fmt.Println("Run 'cubepop play --campaign --level <#|id>' to start at a level.")
}
