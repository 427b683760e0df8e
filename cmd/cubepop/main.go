// cubepop is a 3D color-matching puzzle for the terminal.
//
// Usage:
//
//	cubepop play             - Play a generated cube (or --campaign)
//	cubepop menu             - Pick a mode interactively
//	cubepop list             - List modes and campaign levels
//	cubepop show             - Print a generated cube layer by layer
//	cubepop scores [game]    - Show scores and recent results
//	cubepop serve            - Start the SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Tick rate (default: 30)
//	--seed <value>      - Puzzle seed for reproducible cubes
//	--db <path>         - Database path (default: ~/.cubepop/scores.db)
//	--log-level <name>  - debug, info, warn or error
//	--log-file <path>   - Write game events to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubepop/internal/observability"
	"github.com/vovakirdan/cubepop/internal/registry"
)

var (
	flagFPS      int
	flagSeed     string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubepop",
	Short: "CubePop - pop color regions out of a 3D cube",
	Long: `CubePop fills a cube with colored blocks. Pop connected regions of one
color, repaint blocks and rotate slices to empty the cube before your moves
run out.

Examples:
  cubepop play
  cubepop play --size 3 --colors 3 --seed morning
  cubepop play --campaign --level 2
  cubepop show --seed demo --size 3
  cubepop serve --ssh :2222 --metrics :9110`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Puzzle seed (empty = time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubepop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// openEventLog returns a logger for game events and a close func.
// Without --log-file the logger discards everything below fatal.
func openEventLog() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger := observability.NewLogger(os.Stderr, "fatal", "cubepop")
		return logger, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return observability.NewLogger(f, flagLogLevel, "cubepop"), func() { f.Close() }, nil
}

// attachEventLog subscribes the event logger to games that publish events.
func attachEventLog(logger *log.Logger) func(registry.Game) {
	return func(g registry.Game) {
		if obs, ok := g.(registry.Observable); ok && flagLogFile != "" {
			obs.AddListener(observability.NewEventLogger(logger, "game", g.ID()))
		}
	}
}
