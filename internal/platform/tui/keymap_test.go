package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubepop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"layer up", runeKey(']'), core.ActionLayerUp},
		{"layer down pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, core.ActionLayerDown},
		{"space pops", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPop},
		{"a rotates x", runeKey('a'), core.ActionRotateX},
		{"s rotates y", runeKey('s'), core.ActionRotateY},
		{"d rotates z", runeKey('d'), core.ActionRotateZ},
		{"1 paints first", runeKey('1'), core.ActionRecolor1},
		{"7 paints last", runeKey('7'), core.ActionRecolor7},
		{"8 unused", runeKey('8'), core.ActionNone},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"unmapped", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		if !quit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, %v; expected quit", msg.String(), action, quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('3'), &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionRecolor3) || !frame.Has(core.ActionRotateX) {
		t.Error("expected recolor 3 and rotate x in frame")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unmapped keys must not set ActionNone")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
