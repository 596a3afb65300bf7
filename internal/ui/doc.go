// Package ui provides the Bubble Tea terminal interface for atkeys.
//
// # Layout
//
// A one-line Actions bar sits above two boxes of equal width: the AtSigns
// list of key files on the left and the Logs panel on the right. The focused
// box is drawn with the theme's focus border and background.
//
// # Input
//
// Keys are routed in two stages. dispatch handles the focus/selection
// bindings for the active panel:
//
//   - q, esc, ctrl+c: quit (any panel)
//   - tab: switch between Files and Logs
//   - up/k, down/j: move the file cursor (Files panel only)
//   - pgup, pgdown: page the log viewport (Logs panel only)
//
// Keys it does not consume reach the model-level bindings: r rescans the key
// directory, ? shows the help overlay and T cycles the theme. While the help
// overlay is shown, any key closes it.
//
// # Updates
//
// Scans run as tea.Cmds and their results are applied in Update, so the
// state.App is only touched from the Bubble Tea goroutine. A periodic tick
// calls App.Tick and pulls new lines from the logging.Buffer. When a watcher
// channel is supplied, each notification triggers a rescan.
package ui
