// Package tui renders the animated year-in-review deck in the terminal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
