package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/atkeys/internal/state"
)

// LogPager pages the Logs panel.
type LogPager interface {
	AdvancePage()
	RetreatPage()
}

// dispatch routes a key to the state transition it names for the active
// panel. It reports whether the key was consumed; unconsumed keys fall through
// to the model-level bindings.
func dispatch(msg tea.KeyMsg, km keyMap, app *state.App, pager LogPager, log logrus.FieldLogger) bool {
	switch {
	case key.Matches(msg, km.Quit):
		app.Quit()
		return true
	case key.Matches(msg, km.Switch):
		app.NextSection()
		return true
	}

	switch app.Panel() {
	case state.PanelFiles:
		switch {
		case key.Matches(msg, km.Up):
			log.Info("selecting previous file")
			app.Files().SelectPrevious()
			return true
		case key.Matches(msg, km.Down):
			log.Info("selecting next file")
			app.Files().SelectNext()
			return true
		}
	case state.PanelLogs:
		switch {
		case key.Matches(msg, km.PageUp):
			pager.RetreatPage()
			return true
		case key.Matches(msg, km.PageDown):
			pager.AdvancePage()
			return true
		}
	}
	return false
}
