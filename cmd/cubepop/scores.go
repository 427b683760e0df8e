package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubepop/internal/platform/tui"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent puzzles",
	Long: `Display the top scores, win rate and latest finished puzzles for a mode
(default: cubepop). With --tui, opens the interactive results board.

Examples:
  cubepop scores
  cubepop scores cubepop_campaign
  cubepop scores --tui
  cubepop scores cubepop_campaign --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive results board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and results for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "cubepop"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cubepop list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	results, err := store.RecentResults(gameID, 5)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", gameID)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("\nPlay 'cubepop play' to set the first high score!\n")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats.GamesCount > 0 {
		fmt.Printf("\n%d puzzles, %.0f%% solved, average score %.0f\n",
			stats.GamesCount, stats.WinRate()*100, stats.AvgScore)
	}

	if len(results) > 0 {
		fmt.Println("\nRecent puzzles:")
		for _, r := range results {
			outcome := "lost"
			if r.Won {
				outcome = "won "
			}
			fmt.Printf("  %s  %d³/%d colors  %3d/%-3d moves  %5d pts  seed %s\n",
				outcome, r.Size, r.Colors, r.MovesUsed, r.MoveLimit, r.Score, r.Seed)
		}
	}
	return nil
}
