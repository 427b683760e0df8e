package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

// newTinyGame returns a one-block free-play cube that a single pop solves.
func newTinyGame(t *testing.T) *cubepop.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cubepop.SetOverrides(cubepop.Overrides{Size: 1, Colors: 2, MoveLimit: 1})
	t.Cleanup(func() { cubepop.SetOverrides(cubepop.Overrides{}) })
	return cubepop.New(cubepop.ModeFree)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: "model"}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelSavesResultOnce(t *testing.T) {
	game := newTinyGame(t)
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewModel(game, testConfig(), ModelOptions{Store: store})
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg{})
	require.True(t, game.State().GameOver)
	require.True(t, game.State().Won)

	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	results, err := store.RecentResults("cubepop", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Won)
	assert.Equal(t, "model", results[0].Seed)
	assert.Equal(t, 1, results[0].MovesUsed)

	high, err := store.HighScore("cubepop")
	require.NoError(t, err)
	assert.Equal(t, game.State().Score, high)

	// Restart clears the saved flag for the next round
	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	assert.False(t, game.State().GameOver)
	assert.False(t, m.saved)
}

func TestModelQuitAndBack(t *testing.T) {
	game := newTinyGame(t)

	m := NewModel(game, testConfig(), ModelOptions{})
	m.Init()
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "standalone model ignores back")

	embedded := NewModel(game, testConfig(), ModelOptions{Embedded: true})
	embedded = step(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, embedded.BackToMenu())

	m = step(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelViewAndResize(t *testing.T) {
	game := newTinyGame(t)
	m := NewModel(game, testConfig(), ModelOptions{})
	m.Init()

	view := m.View()
	assert.Contains(t, view, "CubePop")
	assert.Contains(t, view, "pop")

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40-helpHeight, m.screen.Height())
	assert.False(t, game.State().GameOver, "resize keeps the puzzle")
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "abc")
	s.DrawTextWithColor(0, 1, "xy", core.ColorCoral)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abc   ", lines[0])
	assert.Contains(t, lines[1], "xy")
}

func stepSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm
}

func TestSessionModelFlow(t *testing.T) {
	newTinyGame(t)

	var started []string
	sm := NewSessionModel(nil, testConfig(), func(g registry.Game) {
		started = append(started, g.ID())
	})
	assert.Contains(t, sm.View(), "CubePop Campaign")

	sm = stepSession(t, sm, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, sm.screen)
	assert.Equal(t, []string{"cubepop"}, started)

	sm = stepSession(t, sm, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, sm.screen)

	sm = stepSession(t, sm, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, sm.screen)
	assert.Contains(t, sm.View(), "No puzzles finished yet.")

	sm = stepSession(t, sm, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, sm.screen)

	sm = stepSession(t, sm, runeKey('q'))
	assert.True(t, sm.quitting)
	assert.Empty(t, sm.View())
}
