package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubepop/internal/config"
	"github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop"
	"github.com/vovakirdan/cubepop/internal/platform/tui"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

var (
	flagCampaign   bool
	flagSize       int
	flagColors     int
	flagMoves      int
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a cube",
	Long: `Start a CubePop puzzle.

Controls:
  Arrows/hjkl  - Move the cursor in the shown layer
  [ ]          - Previous / next layer
  Space        - Pop the region under the cursor
  1-7          - Repaint the block with a palette color
  A / S / D    - Rotate the x / y / z slice through the cursor
  P            - Pause
  R            - New cube (after the game ends)
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 3x3x3 cube, 3 colors
  normal - 5x5x5 cube, 5 colors
  hard   - 6x6x6 cube, 7 colors
  fixed  - Use the config file as-is

Examples:
  cubepop play
  cubepop play --difficulty hard
  cubepop play --size 4 --colors 4 --moves 30
  cubepop play --campaign --level 3
  cubepop play --campaign --level 05_spectrum
  cubepop play --config ./my-cubepop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagCampaign, "campaign", false, "Play the level campaign")
	addGameFlags(playCmd)
}

// addGameFlags registers the puzzle settings shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagSize, "size", 0, "Cube edge length (overrides config)")
	cmd.Flags().IntVar(&flagColors, "colors", 0, "Palette size (overrides config)")
	cmd.Flags().IntVar(&flagMoves, "moves", 0, "Move limit (overrides config)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level to start from (1-based number or level id)")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Load campaign levels from this directory")
}

// applyGameFlags pushes the CLI settings into the game package.
func applyGameFlags() error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	cubepop.SetConfigPath(flagConfig)
	cubepop.SetDifficultyPreset(preset)
	cubepop.SetOverrides(cubepop.Overrides{
		Size:      flagSize,
		Colors:    flagColors,
		MoveLimit: flagMoves,
		Seed:      flagSeed,
	})
	cubepop.SetStartLevel(0)
	cubepop.SetStartLevelID("")
	if flagLevel != "" {
		if n, err := strconv.Atoi(flagLevel); err == nil {
			cubepop.SetStartLevel(n)
		} else {
			cubepop.SetStartLevelID(flagLevel)
		}
	}
	cubepop.SetLevelsDir(flagLevelsDir)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := "cubepop"
	if flagCampaign {
		gameID = "cubepop_campaign"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openEventLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	attachEventLog(logger)(game)

	store := openStore()
	runErr := tui.Run(game, terminalConfig(), tui.ModelOptions{Store: store, Logger: logger})

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
