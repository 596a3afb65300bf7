package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atkeys/internal/state"
)

// Layout sizes, in terminal cells.
const (
	// actionsHeight is the height of the Actions bar including borders.
	actionsHeight = 3

	// minWidth and minHeight are the smallest sizes the layout is drawn at.
	minWidth  = 20
	minHeight = actionsHeight + 3
)

// contentSize returns the width of the Files and Logs boxes and their height.
func (m Model) contentSize() (filesWidth, logsWidth, height int) {
	width := maxInt(m.width, minWidth)
	filesWidth = width / 2
	logsWidth = width - filesWidth
	height = maxInt(m.height, minHeight) - actionsHeight
	return filesWidth, logsWidth, height
}

// renderMain renders the Actions bar above the Files and Logs panels.
func (m Model) renderMain() string {
	filesWidth, logsWidth, height := m.contentSize()
	snap := m.app.Snapshot()

	files := m.renderTitledBox("AtSigns", m.renderFiles(snap, filesWidth-2, height-2), filesWidth, height, snap.Panel == state.PanelFiles)
	logs := m.renderTitledBox("Logs", m.logs.viewport.View(), logsWidth, height, snap.Panel == state.PanelLogs)

	return m.renderActions(filesWidth+logsWidth) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, files, logs)
}

// renderActions renders the hotkey bar.
func (m Model) renderActions(width int) string {
	h := m.help
	h.Width = width - 2
	return m.renderTitledBox("Actions", h.ShortHelpView(m.keys.ShortHelp()), width, actionsHeight, false)
}

// panelBg returns the background of a panel in the given focus state.
func (m Model) panelBg(focused bool) string {
	if focused {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
// A focused box uses BorderFocus and FocusBg.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bgColorStr := m.panelBg(focused)
	bg := newPanelFill(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))
	if focused {
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.theme.BorderFocus))
	}

	innerWidth := maxInt(width-2, 0)
	title = truncate(title, maxInt(innerWidth-2, 0))
	titleLen := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleLen-2)/2, 0)
	rightPad := maxInt(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Paint("┌", borderStyle) +
		bg.Paint(strings.Repeat("─", leftPad), borderStyle) +
		bg.Paint(" "+title+" ", titleStyle) +
		bg.Paint(strings.Repeat("─", rightPad), borderStyle) +
		bg.Paint("┐", borderStyle)

	bottomBorder := bg.Paint("└", borderStyle) +
		bg.Paint(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Paint("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := maxInt(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Paint("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Paint("│", borderStyle))
	}

	parts := append([]string{topBorder}, paddedLines...)
	parts = append(parts, bottomBorder)
	return strings.Join(parts, "\n")
}
