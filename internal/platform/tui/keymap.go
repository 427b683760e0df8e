package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubepop/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	LayerUp   key.Binding
	LayerDown key.Binding
	Pop       key.Binding
	RotateX   key.Binding
	RotateY   key.Binding
	RotateZ   key.Binding
	Recolor   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "x-"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "x+"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "y+"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "y-"),
		),
		LayerUp: key.NewBinding(
			key.WithKeys("]", "pgup"),
			key.WithHelp("]", "layer up"),
		),
		LayerDown: key.NewBinding(
			key.WithKeys("[", "pgdown"),
			key.WithHelp("[", "layer down"),
		),
		Pop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pop"),
		),
		RotateX: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "rotate x"),
		),
		RotateY: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rotate y"),
		),
		RotateZ: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "rotate z"),
		),
		Recolor: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "paint"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pop, k.Recolor, k.RotateX, k.RotateY, k.RotateZ, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.LayerUp, k.LayerDown, k.Pop, k.Recolor},
		{k.RotateX, k.RotateY, k.RotateZ},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// MapKey translates a key press into a game action.
// Quit is reported separately; keys the game does not use map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.LayerUp):
		return core.ActionLayerUp, false
	case key.Matches(msg, k.LayerDown):
		return core.ActionLayerDown, false
	case key.Matches(msg, k.Pop):
		return core.ActionPop, false
	case key.Matches(msg, k.RotateX):
		return core.ActionRotateX, false
	case key.Matches(msg, k.RotateY):
		return core.ActionRotateY, false
	case key.Matches(msg, k.RotateZ):
		return core.ActionRotateZ, false
	case key.Matches(msg, k.Recolor):
		return core.RecolorAction(int(msg.String()[0] - '0')), false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the action for msg to frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a navigation intent on list screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key on the menu or scoreboard.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc", "b":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
