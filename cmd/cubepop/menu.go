package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubepop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start CubePop with a mode picker. Esc leaves a game and returns to
the menu; Tab opens the results board.

Examples:
  cubepop menu
  cubepop menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openEventLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store := openStore()

	runErr := tui.RunSession(store, terminalConfig(), attachEventLog(logger))

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
