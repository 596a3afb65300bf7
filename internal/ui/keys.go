package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Switch key.Binding

	// Files panel
	Up   key.Binding
	Down key.Binding

	// Logs panel
	PageUp   key.Binding
	PageDown key.Binding

	// Model level
	Rescan     key.Binding
	Help       key.Binding
	CycleTheme key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch section"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Previous file"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Next file"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Older logs"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Newer logs"),
		),

		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Rescan"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
	}
}

// ShortHelp returns the bindings shown in the Actions bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Switch, k.Up, k.Down, k.PageUp, k.PageDown, k.Rescan, k.Help}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Quit},
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Rescan, k.CycleTheme, k.Help},
	}
}
