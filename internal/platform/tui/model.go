package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

// helpHeight is the row reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ModelOptions configures a game Model.
type ModelOptions struct {
	Store  *storage.Store // Optional; results are not saved when nil
	Logger *log.Logger    // Optional
	// Embedded makes Back return to the caller's menu instead of doing nothing.
	Embedded bool
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool
	quitting   bool
	backToMenu bool
	saved      bool // Result stored for the current game over
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.Seed == "" {
		cfg.Seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		embedded:   opts.Embedded,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back) && m.embedded:
		m.backToMenu = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.saved = false
	} else if !m.saved {
		SaveResult(m.store, m.logger, m.game)
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// SaveResult stores the score and, when the game can summarize itself, the
// puzzle result. Failures are logged; play continues regardless.
func SaveResult(store *storage.Store, logger *log.Logger, game registry.Game) {
	if store == nil {
		return
	}
	state := game.State()
	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			logger.Warn("could not save score", "game", game.ID(), "error", err)
		}
	}
	s, ok := game.(registry.Summarizer)
	if !ok {
		return
	}
	id, err := store.SavePuzzleResult(storage.ResultFromSummary(game.ID(), s.Summary()))
	if err != nil {
		logger.Warn("could not save puzzle result", "game", game.ID(), "error", err)
		return
	}
	logger.Debug("puzzle result saved", "game", game.ID(), "id", id, "score", state.Score)
}

// saveScreenshot writes the current screen as plain text under ~/.cubepop/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".cubepop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the game and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
