package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubepop/internal/core"
	"github.com/vovakirdan/cubepop/internal/registry"
	"github.com/vovakirdan/cubepop/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("215"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is a selectable game mode.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best stored score, 0 when unknown
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered game. Best scores come from store when set.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				sel := m.items[m.cursor]
				m.selected = &sel
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C U B E P O P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pop matching regions until the cube is empty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if item.Best > 0 {
			line += fmt.Sprintf("  (best %d)", item.Best)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("↑/↓ choose  |  Enter play  |  Tab scores  |  Q quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player asked to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether Tab was pressed.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers possibly multi-line, styled text within width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
