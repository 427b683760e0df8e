// Package cubepop provides the CubePop puzzle for the arcade platform.
// The cube is shown one z layer at a time; a cursor picks the block that
// actions apply to.
package cubepop

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cubepop/internal/config"
	platformcore "github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop/core"
	"github.com/vovakirdan/cubepop/internal/games/cubepop/levels"
	"github.com/vovakirdan/cubepop/internal/registry"
)

// Mode selects free play or the level campaign.
type Mode int

const (
	ModeFree Mode = iota
	ModeCampaign
)

const (
	hudHeight       = 4
	cellW           = 2
	legendW         = 26
	levelClearTicks = 45
	messageTicks    = 60
)

// Overrides replace config values when non-zero (CLI flags).
type Overrides struct {
	Size      int
	Colors    int
	MoveLimit int
	Seed      string
}

// Package-level variables for config/difficulty, set by the CLI before Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyFixed
	startLevel       int
	startLevelID     string
	overrides        Overrides
	levelsDir        string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the campaign starting level (1-indexed). 0 means the first level.
func SetStartLevel(level int) {
	startLevel = level
}

// SetStartLevelID starts the campaign at the level with the given id.
// It takes precedence over SetStartLevel.
func SetStartLevelID(id string) {
	startLevelID = id
}

// SetOverrides sets grid overrides for free play.
func SetOverrides(o Overrides) {
	overrides = o
}

// SetLevelsDir loads campaign levels from a directory instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

func init() {
	registry.Register("cubepop", func() registry.Game {
		return New(ModeFree)
	})
	registry.Register("cubepop_campaign", func() registry.Game {
		return New(ModeCampaign)
	})
}

// Game implements registry.Game for CubePop.
type Game struct {
	mode      Mode
	cfg       config.CubePopConfig
	session   *core.Session
	listeners []core.Listener

	// Campaign
	campaign   []levels.Level
	levelIndex int
	clearTicks int // Countdown before the next level loads

	// Free play
	baseSeed string
	restarts int

	cursor  core.Pos
	screenW int
	screenH int

	tick     uint64
	score    int
	paused   bool
	gameOver bool
	won      bool
	loadErr  error

	message      string
	messageColor platformcore.Color
	messageLeft  int
}

// New creates a CubePop game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode, cfg: config.DefaultCubePopConfig()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return "cubepop_campaign"
	}
	return "cubepop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "CubePop Campaign"
	}
	return "CubePop"
}

// AddListener attaches a session event listener. Listeners survive restarts.
func (g *Game) AddListener(l core.Listener) {
	g.listeners = append(g.listeners, l)
	if g.session != nil {
		g.session.AddListener(l)
	}
}

// Session exposes the running puzzle session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Reset loads config and starts a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.loadErr = nil
	g.clearTicks = 0
	g.restarts = 0
	g.message = ""
	g.session = nil

	loaded, err := config.LoadCubePop(configPath)
	if err != nil {
		g.fail(err)
		return
	}
	config.ApplyCubePopPreset(&loaded, difficultyPreset)
	g.cfg = loaded

	// Flag seed, then config seed, then the platform's seed
	g.baseSeed = overrides.Seed
	if g.baseSeed == "" {
		g.baseSeed = g.cfg.Grid.Seed
	}
	if g.baseSeed == "" {
		g.baseSeed = cfg.Seed
	}
	if g.baseSeed == "" {
		g.baseSeed = "cubepop"
	}

	if g.mode == ModeCampaign {
		g.startCampaign()
		return
	}
	g.startSession(g.freeParams())
}

func (g *Game) freeParams() core.GenParams {
	p := core.GenParams{
		Size:      g.cfg.Grid.Size,
		Colors:    g.cfg.Grid.Colors,
		Seed:      g.baseSeed,
		MoveLimit: g.cfg.Grid.MoveLimit,
	}
	if overrides.Size > 0 {
		p.Size = overrides.Size
	}
	if overrides.Colors > 0 {
		p.Colors = overrides.Colors
	}
	if overrides.MoveLimit > 0 {
		p.MoveLimit = overrides.MoveLimit
	}
	if g.restarts > 0 {
		p.Seed = fmt.Sprintf("%s-%d", g.baseSeed, g.restarts)
	}
	return p
}

func (g *Game) startCampaign() {
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	all, err := loader.LoadAll()
	if err == nil && len(all) == 0 {
		err = errors.New("no levels found")
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.campaign = all

	g.levelIndex = 0
	switch {
	case startLevelID != "":
		i := levels.IndexOf(all, startLevelID)
		if i < 0 {
			g.fail(fmt.Errorf("unknown level %q", startLevelID))
			return
		}
		g.levelIndex = i
	case startLevel > 0 && startLevel <= len(all):
		g.levelIndex = startLevel - 1
	}
	g.startSession(g.campaign[g.levelIndex].Params())
}

// startSession creates a fresh session, or regenerates the current one.
func (g *Game) startSession(p core.GenParams) {
	if g.session == nil {
		opts := []core.Option{
			core.WithRotationTicks(g.cfg.Rotation.Ticks),
			core.WithChargeNoOps(g.cfg.Rules.ChargeNoopMoves),
		}
		for _, l := range g.listeners {
			opts = append(opts, core.WithListener(l))
		}
		s, err := core.NewSession(p, opts...)
		if err != nil {
			g.fail(err)
			return
		}
		g.session = s
	} else if err := g.session.Reset(p); err != nil {
		g.fail(err)
		return
	}

	mid := (p.Size - 1) / 2
	g.cursor = core.P(mid, mid, p.Size-1)
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.messageLeft > 0 {
		g.messageLeft--
	}
	if g.session != nil {
		g.session.Tick()
	}

	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.clearTicks > 0 {
		g.clearTicks--
		if g.clearTicks == 0 {
			g.startSession(g.campaign[g.levelIndex].Params())
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.gameOver || g.paused || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(input)
	g.applyActions(input)
	g.checkStatus()

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) restart() {
	if g.loadErr != nil {
		return
	}
	g.gameOver = false
	g.won = false
	g.paused = false
	g.message = ""
	// Each game over is saved, so a retry starts a fresh score
	g.score = 0
	if g.mode == ModeCampaign {
		if g.levelIndex >= len(g.campaign) {
			g.levelIndex = 0
		}
		g.startSession(g.campaign[g.levelIndex].Params())
		return
	}
	g.restarts++
	g.startSession(g.freeParams())
}

func (g *Game) moveCursor(input platformcore.InputFrame) {
	size := g.session.Size()
	if input.Has(platformcore.ActionLeft) {
		g.cursor.X--
	}
	if input.Has(platformcore.ActionRight) {
		g.cursor.X++
	}
	if input.Has(platformcore.ActionUp) {
		g.cursor.Y++
	}
	if input.Has(platformcore.ActionDown) {
		g.cursor.Y--
	}
	if input.Has(platformcore.ActionLayerUp) {
		g.cursor.Z++
	}
	if input.Has(platformcore.ActionLayerDown) {
		g.cursor.Z--
	}
	g.cursor.X = platformcore.Clamp(g.cursor.X, 0, size-1)
	g.cursor.Y = platformcore.Clamp(g.cursor.Y, 0, size-1)
	g.cursor.Z = platformcore.Clamp(g.cursor.Z, 0, size-1)
}

// pick resolves the cursor to the block under it.
func (g *Game) pick() core.Pick {
	if b, ok := g.session.Lookup(g.cursor); ok {
		return core.PickBlock(b.ID)
	}
	return core.NoPick
}

func (g *Game) applyActions(input platformcore.InputFrame) {
	var acts []core.Action
	for i := 1; i <= platformcore.MaxRecolor; i++ {
		if input.Has(platformcore.RecolorAction(i)) {
			acts = append(acts, core.Recolor(i))
		}
	}
	if input.Has(platformcore.ActionPop) {
		acts = append(acts, core.Pop())
	}
	if input.Has(platformcore.ActionRotateX) {
		acts = append(acts, core.Rotate(core.AxisX))
	}
	if input.Has(platformcore.ActionRotateY) {
		acts = append(acts, core.Rotate(core.AxisY))
	}
	if input.Has(platformcore.ActionRotateZ) {
		acts = append(acts, core.Rotate(core.AxisZ))
	}

	for _, act := range acts {
		out := g.session.Dispatch(g.pick(), act)
		g.handleOutcome(act, out)
		if out.Status.Over() {
			return
		}
	}
}

func (g *Game) handleOutcome(act core.Action, out core.Outcome) {
	switch {
	case errors.Is(out.Err, core.ErrBusy):
		g.flash("Rotation in progress", platformcore.ColorYellow)
	case errors.Is(out.Err, core.ErrNoPick):
		g.flash("No block under cursor", platformcore.ColorGray)
	case errors.Is(out.Err, core.ErrPaletteIndex):
		g.flash(fmt.Sprintf("Palette has %d colors", len(g.session.Palette())), platformcore.ColorGray)
	case out.Err != nil:
		g.flash(out.Err.Error(), platformcore.ColorRed)
	case len(out.Removed) > 0:
		n := len(out.Removed)
		g.score += PopScore(n, g.cfg.Scoring)
		g.flash(fmt.Sprintf("Popped %d", n), platformcore.ColorGreen)
	case out.Rotation != nil:
		g.flash(fmt.Sprintf("Rotated %s slice %d", out.Rotation.Axis, out.Rotation.Coord), platformcore.ColorCyan)
	case out.NoOp && act.Kind == core.ActionRecolor:
		g.flash("Already that color", platformcore.ColorGray)
	}
}

// PopScore returns the points for popping a region of n blocks.
func PopScore(n int, s config.ScoringConfig) int {
	if n <= 0 {
		return 0
	}
	return n*s.PointsPerBlock + (n-1)*s.RegionBonus
}

func (g *Game) checkStatus() {
	switch g.session.Status() {
	case core.StatusWon:
		g.score += g.session.MovesLeft() * g.cfg.Scoring.PointsPerBlock
		if g.mode == ModeCampaign {
			g.levelIndex++
			if g.levelIndex < len(g.campaign) {
				g.clearTicks = levelClearTicks
				return
			}
		}
		g.won = true
		g.gameOver = true
	case core.StatusLost:
		g.gameOver = true
	}
}

func (g *Game) flash(msg string, color platformcore.Color) {
	g.message = msg
	g.messageColor = color
	g.messageLeft = messageTicks
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Summary describes the current round for persistence.
func (g *Game) Summary() platformcore.GameSummary {
	if g.session == nil {
		return platformcore.GameSummary{Score: g.score}
	}
	sn := g.session.Snapshot()
	p := g.session.Params()
	return platformcore.GameSummary{
		Seed:       p.Seed,
		Size:       p.Size,
		Colors:     p.Colors,
		MoveLimit:  p.MoveLimit,
		MovesUsed:  sn.MovesUsed,
		BlocksLeft: len(sn.Blocks),
		Won:        sn.Status == core.StatusWon,
		Score:      g.score,
	}
}
