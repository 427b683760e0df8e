package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cubepop/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("cubepop", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("cubepop_campaign", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("cubepop", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)
	assert.False(t, scores[0].CreatedAt.IsZero())

	limited, err := store.TopScores("cubepop", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	high, err := store.HighScore("cubepop_campaign")
	require.NoError(t, err)
	assert.Equal(t, 500, high)

	none, err := store.HighScore("missing")
	require.NoError(t, err)
	assert.Equal(t, 0, none)
}

func TestStorePuzzleResults(t *testing.T) {
	store := openTestStore(t)

	won := ResultFromSummary("cubepop", core.GameSummary{
		Seed: "abc", Size: 3, Colors: 3, MoveLimit: 20, MovesUsed: 12, Won: true, Score: 340,
	})
	lost := ResultFromSummary("cubepop", core.GameSummary{
		Seed: "abc-1", Size: 3, Colors: 3, MoveLimit: 20, MovesUsed: 20, BlocksLeft: 4, Score: 120,
	})

	id1, err := store.SavePuzzleResult(won)
	require.NoError(t, err)
	_, err = uuid.Parse(id1)
	assert.NoError(t, err)
	id2, err := store.SavePuzzleResult(lost)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	results, err := store.RecentResults("cubepop", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, id2, results[0].ID)
	assert.Equal(t, "abc-1", results[0].Seed)
	assert.False(t, results[0].Won)
	assert.Equal(t, 4, results[0].BlocksLeft)
	assert.True(t, results[1].Won)

	stats, err := store.GetGameStats("cubepop")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 340, stats.HighScore)
	assert.InDelta(t, 230.0, stats.AvgScore, 0.001)
	assert.InDelta(t, 0.5, stats.WinRate(), 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("cubepop")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.Zero(t, stats.WinRate())
	assert.True(t, stats.LastPlayed.IsZero())
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("cubepop", 10)
	require.NoError(t, err)
	_, err = store.SavePuzzleResult(PuzzleResult{GameID: "cubepop", Seed: "x", Size: 1})
	require.NoError(t, err)
	_, err = store.SaveScore("other", 5)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("cubepop"))

	scores, err := store.TopScores("cubepop", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
	results, err := store.RecentResults("cubepop", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	other, err := store.TopScores("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.cubepop/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".cubepop", "scores.db"))
	assert.NoError(t, err)
}
