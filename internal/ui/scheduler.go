package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delay into a command that delivers msg once the delay
// has passed. Tests inject one that fires immediately.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules with tea.Tick
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
