// Package tui runs games in the terminal with Bubble Tea, locally or over SSH.
// It maps keys to actions, drives the fixed tick loop and persists results.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
