package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// panelFill paints text onto a panel background. A styled segment resets the
// background when it ends, so bare spaces between segments would show the
// terminal color; panelFill paints those gaps too.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type panelFill struct {
	bg  lipgloss.Color
	gap string
}

func newPanelFill(color string) panelFill {
	bg := lipgloss.Color(color)
	return panelFill{bg: bg, gap: lipgloss.NewStyle().Background(bg).Render(" ")}
}

// Paint renders text with style over the panel background, one span per
// word, with every space painted separately.
func (f panelFill) Paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(f.bg)

	var b strings.Builder
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			b.WriteString(f.gap)
		}
		if word != "" {
			b.WriteString(style.Render(word))
		}
	}
	return b.String()
}

// Gap is a single painted space.
func (f panelFill) Gap() string { return f.gap }

// Pad widens painted content to width with the panel background.
func (f panelFill) Pad(content string, width int) string {
	return lipgloss.NewStyle().Background(f.bg).Width(width).Render(content)
}
