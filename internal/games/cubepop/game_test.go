package cubepop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cubepop/internal/config"
	platformcore "github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
)

// useConfig points the package at a temporary config file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cubepop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset(config.DifficultyFixed)
		SetStartLevel(0)
		SetStartLevelID("")
		SetOverrides(Overrides{})
		SetLevelsDir("")
	})
}

const smallConfig = `
grid:
  size: 2
  colors: 2
  move_limit: 10
  seed: "test"
rotation:
  ticks: 0
scoring:
  points_per_block: 10
  region_bonus: 5
`

func runtimeConfig() platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.ScreenH = 30
	return cfg
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameResetUsesConfig(t *testing.T) {
	useConfig(t, smallConfig)
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	require.NotNil(t, g.Session())
	assert.Equal(t, 2, g.Session().Size())
	assert.Equal(t, "test", g.Session().Params().Seed)
	assert.Equal(t, 10, g.Session().MovesLeft())
	assert.False(t, g.State().GameOver)
	assert.Equal(t, core.P(0, 0, 1), g.cursor)
}

func TestGameOverridesAndPreset(t *testing.T) {
	useConfig(t, smallConfig)
	SetDifficultyPreset(config.DifficultyEasy)
	SetOverrides(Overrides{MoveLimit: 7})

	g := New(ModeFree)
	g.Reset(runtimeConfig())

	p := g.Session().Params()
	assert.Equal(t, 3, p.Size)
	assert.Equal(t, 3, p.Colors)
	assert.Equal(t, 7, p.MoveLimit)
}

func TestGameSeedPrecedence(t *testing.T) {
	useConfig(t, smallConfig)
	cfg := runtimeConfig()
	cfg.Seed = "platform"

	g := New(ModeFree)
	g.Reset(cfg)
	assert.Equal(t, "test", g.Session().Params().Seed, "config seed beats the platform seed")

	SetOverrides(Overrides{Seed: "fromflag"})
	g.Reset(cfg)
	assert.Equal(t, "fromflag", g.Session().Params().Seed, "flag seed beats the config seed")

	// Restarts derive from the flag seed
	g.gameOver = true
	g.Step(frame(platformcore.ActionRestart))
	assert.Equal(t, "fromflag-1", g.Session().Params().Seed)
}

func TestGamePlatformSeedWithoutConfigSeed(t *testing.T) {
	useConfig(t, strings.Replace(smallConfig, `  seed: "test"`+"\n", "", 1))
	cfg := runtimeConfig()
	cfg.Seed = "platform"

	g := New(ModeFree)
	g.Reset(cfg)
	assert.Equal(t, "platform", g.Session().Params().Seed)
}

func TestGameCursorClamps(t *testing.T) {
	useConfig(t, smallConfig)
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	for i := 0; i < 5; i++ {
		g.Step(frame(platformcore.ActionLeft, platformcore.ActionDown, platformcore.ActionLayerUp))
	}
	assert.Equal(t, core.P(0, 0, 1), g.cursor)

	g.Step(frame(platformcore.ActionRight, platformcore.ActionUp, platformcore.ActionLayerDown))
	assert.Equal(t, core.P(1, 1, 0), g.cursor)
}

func TestGamePopScoresAndWins(t *testing.T) {
	useConfig(t, smallConfig)
	g := New(ModeFree)
	g.Reset(runtimeConfig())
	s := g.Session()

	expected := 0
	for !g.State().GameOver {
		blocks := s.Blocks()
		require.NotEmpty(t, blocks)
		g.cursor = blocks[0].Pos
		before := s.Remaining()
		g.Step(frame(platformcore.ActionPop))
		expected += PopScore(before-s.Remaining(), g.cfg.Scoring)
	}

	assert.True(t, g.State().Won)
	assert.Equal(t, core.StatusWon, s.Status())
	expected += s.MovesLeft() * 10
	assert.Equal(t, expected, g.State().Score)

	sum := g.Summary()
	assert.True(t, sum.Won)
	assert.Equal(t, 0, sum.BlocksLeft)
	assert.Equal(t, "test", sum.Seed)
	assert.Equal(t, 10-s.MovesLeft(), sum.MovesUsed)

	// Restart draws a new cube from a derived seed
	g.Step(frame(platformcore.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, "test-1", g.Session().Params().Seed)
	assert.Equal(t, 8, g.Session().Remaining())
}

func TestGameLosesWhenMovesRunOut(t *testing.T) {
	useConfig(t, strings.Replace(smallConfig, "move_limit: 10", "move_limit: 1", 1))
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	g.Step(frame(platformcore.RecolorAction(1)))
	assert.True(t, g.State().GameOver)
	assert.False(t, g.State().Won)

	// Further input is ignored
	g.Step(frame(platformcore.ActionPop))
	assert.Equal(t, 8, g.Session().Remaining())
}

func TestGameBusyRotationKeepsMoves(t *testing.T) {
	useConfig(t, strings.Replace(smallConfig, "ticks: 0", "ticks: 5", 1))
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	g.Step(frame(platformcore.ActionRotateX))
	assert.Equal(t, 9, g.Session().MovesLeft())
	assert.Equal(t, core.RotationRunning, g.Session().Rotation())

	g.Step(frame(platformcore.ActionRotateZ))
	assert.Equal(t, 9, g.Session().MovesLeft())
	assert.Equal(t, "Rotation in progress", g.message)
}

func TestGamePauseBlocksInput(t *testing.T) {
	useConfig(t, smallConfig)
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	g.Step(frame(platformcore.ActionPause))
	assert.True(t, g.State().Paused)
	g.Step(frame(platformcore.ActionPop))
	assert.Equal(t, 10, g.Session().MovesLeft())

	g.Step(frame(platformcore.ActionPause))
	g.Step(frame(platformcore.ActionPop))
	assert.Equal(t, 9, g.Session().MovesLeft())
}

func TestGameListenersSurviveRestart(t *testing.T) {
	useConfig(t, strings.Replace(smallConfig, "move_limit: 10", "move_limit: 1", 1))
	g := New(ModeFree)

	var kinds []string
	g.AddListener(core.ListenerFunc(func(e core.Event) { kinds = append(kinds, e.Kind()) }))
	g.Reset(runtimeConfig())
	g.Step(frame(platformcore.RecolorAction(2)))
	require.True(t, g.State().GameOver)

	kinds = nil
	g.Step(frame(platformcore.ActionRestart))
	g.Step(frame(platformcore.ActionPop))
	assert.Contains(t, kinds, "block_removed")
}

func writeLevel(t *testing.T, dir, id string) {
	t.Helper()
	data := "id: " + id + "\nname: Level " + id + "\nsize: 1\ncolors: 2\nmove_limit: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".yaml"), []byte(data), 0o644))
}

func TestCampaignAdvancesThroughLevels(t *testing.T) {
	useConfig(t, smallConfig)
	dir := t.TempDir()
	writeLevel(t, dir, "a")
	writeLevel(t, dir, "b")
	SetLevelsDir(dir)

	g := New(ModeCampaign)
	g.Reset(runtimeConfig())
	require.NoError(t, g.loadErr)
	assert.Equal(t, 1, g.Session().Size())
	assert.Equal(t, "a", g.Session().Params().Seed)

	g.Step(frame(platformcore.ActionPop))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, levelClearTicks, g.clearTicks)

	for i := 0; i < levelClearTicks; i++ {
		g.Step(frame())
	}
	assert.Equal(t, "b", g.Session().Params().Seed)
	assert.Equal(t, core.StatusActive, g.Session().Status())

	g.Step(frame(platformcore.ActionPop))
	assert.True(t, g.State().GameOver)
	assert.True(t, g.State().Won)
	assert.Equal(t, 20, g.State().Score)
}

func TestCampaignRetryStartsFreshScore(t *testing.T) {
	useConfig(t, smallConfig)
	dir := t.TempDir()
	writeLevel(t, dir, "a")
	writeLevel(t, dir, "b")
	SetLevelsDir(dir)

	g := New(ModeCampaign)
	g.Reset(runtimeConfig())
	g.Step(frame(platformcore.ActionPop))
	for i := 0; i < levelClearTicks; i++ {
		g.Step(frame())
	}
	require.Equal(t, "b", g.Session().Params().Seed)
	require.Equal(t, 10, g.State().Score)

	// The only move is spent on a recolor, so level b is lost
	g.Step(frame(platformcore.RecolorAction(1)))
	require.True(t, g.State().GameOver)
	require.False(t, g.State().Won)
	assert.Equal(t, 10, g.Summary().Score)

	g.Step(frame(platformcore.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 0, g.State().Score, "a saved score is not carried into the retry")
	assert.Equal(t, "b", g.Session().Params().Seed)
}

func TestCampaignStartLevelByID(t *testing.T) {
	useConfig(t, smallConfig)
	SetStartLevelID("05_spectrum")

	g := New(ModeCampaign)
	g.Reset(runtimeConfig())
	require.NoError(t, g.loadErr)
	assert.Equal(t, 4, g.levelIndex)

	SetStartLevelID("missing")
	g.Reset(runtimeConfig())
	require.Error(t, g.loadErr)
	assert.Contains(t, g.loadErr.Error(), `unknown level "missing"`)
	assert.True(t, g.State().GameOver)
}

func TestCampaignStartLevel(t *testing.T) {
	useConfig(t, smallConfig)
	SetStartLevel(3)

	g := New(ModeCampaign)
	g.Reset(runtimeConfig())
	require.NoError(t, g.loadErr)
	assert.Equal(t, 2, g.levelIndex)
	assert.Equal(t, "campaign-03_warm_up", g.Session().Params().Seed)
}

func TestGameInvalidConfigShowsError(t *testing.T) {
	useConfig(t, "grid:\n  size: 40\n")
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	assert.Error(t, g.loadErr)
	assert.True(t, g.State().GameOver)

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Cannot start puzzle")
}

func TestGameRender(t *testing.T) {
	useConfig(t, smallConfig)
	g := New(ModeFree)
	g.Reset(runtimeConfig())

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "CubePop | Score: 0 | Moves: 10/10 | Blocks: 8")
	assert.Contains(t, out, "Palette")
	assert.Contains(t, out, "Cursor (0,0,1)")

	// Legend shows per-color counts and the hovered block's key number
	counts := g.Session().CountByColor()
	pal := g.Session().Palette()
	for _, c := range pal {
		assert.Contains(t, out, fmt.Sprintf("%-7s %3d", c, counts[c]))
	}
	b, ok := g.Session().Lookup(g.cursor)
	require.True(t, ok)
	assert.Contains(t, out, fmt.Sprintf("#%d %s [%d]", b.ID, b.Color, pal.IndexOf(b.Color)))

	small := platformcore.NewScreen(20, 8)
	g.Render(small)
	assert.Contains(t, small.String(), "Window too small")
}

func TestPopScore(t *testing.T) {
	s := config.ScoringConfig{PointsPerBlock: 10, RegionBonus: 5}
	tests := []struct{ n, want int }{
		{0, 0},
		{1, 10},
		{3, 40},
	}
	for _, tt := range tests {
		if got := PopScore(tt.n, s); got != tt.want {
			t.Errorf("PopScore(%d) = %d, expected %d", tt.n, got, tt.want)
		}
	}
}
