package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atkeys/internal/logging"
)

// logPane is the Logs panel: buffered lines in a pageable viewport.
type logPane struct {
	viewport viewport.Model
	lines    []string
	version  uint64 // buffer version last copied into lines
	follow   bool   // stick to the newest line
}

func newLogPane() logPane {
	return logPane{
		viewport: viewport.New(0, 0),
		follow:   true,
	}
}

// AdvancePage scrolls one page towards newer lines.
func (p *logPane) AdvancePage() {
	p.viewport.PageDown()
	p.follow = p.viewport.AtBottom()
}

// RetreatPage scrolls one page towards older lines.
func (p *logPane) RetreatPage() {
	p.viewport.PageUp()
	p.follow = p.viewport.AtBottom()
}

func (p *logPane) setSize(width, height int) {
	p.viewport.Width = maxInt(width, 0)
	p.viewport.Height = maxInt(height, 0)
}

// pull copies new lines from buf. It reports whether anything changed.
func (p *logPane) pull(buf *logging.Buffer) bool {
	if buf == nil || buf.Version() == p.version {
		return false
	}
	p.lines, p.version = buf.Lines()
	return true
}

// setContent replaces what the viewport shows, keeping the bottom pinned while
// following.
func (p *logPane) setContent(content string) {
	p.viewport.SetContent(content)
	if p.follow {
		p.viewport.GotoBottom()
	}
}

// renderLogContent renders the colorized log lines for the given width.
func (m Model) renderLogContent(width int) string {
	bg := newPanelFill(m.panelBg(m.logsFocused()))
	styles := m.theme.Styles()

	if len(m.logs.lines) == 0 {
		return bg.Pad(bg.Paint("No log entries", styles.MutedText), width)
	}

	var b strings.Builder
	for i, line := range m.logs.lines {
		b.WriteString(bg.Pad(m.colorizeLine(truncate(line, width), styles, bg), width))
		if i < len(m.logs.lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// colorizeLine applies Lipgloss styling to a formatted log line.
func (m Model) colorizeLine(line string, styles Styles, bg panelFill) string {
	if strings.TrimSpace(line) == "" {
		return line
	}

	var result strings.Builder
	remaining := line

	if matches := timestampRe.FindStringSubmatchIndex(remaining); len(matches) > 0 {
		start, end := matches[2], matches[3]
		result.WriteString(bg.Paint(remaining[start:end], styles.FaintText))
		remaining = remaining[end:]
	}

	if matches := levelRe.FindStringSubmatchIndex(remaining); len(matches) > 0 {
		start, end := matches[2], matches[3]
		level := remaining[start:end]
		result.WriteString(bg.Gap())
		result.WriteString(bg.Paint(level, levelStyle(level, styles).Bold(true)))
		remaining = remaining[end:]
	}

	if matches := componentRe.FindStringSubmatchIndex(remaining); len(matches) > 0 && strings.TrimSpace(remaining[:matches[0]]) == "" {
		start, end := matches[0], matches[1]
		result.WriteString(bg.Gap())
		result.WriteString(bg.Paint(remaining[start:end], styles.AccentText))
		remaining = remaining[end:]
	}

	if parts := separatorRe.Split(remaining, 2); len(parts) == 2 && strings.TrimSpace(parts[0]) == "" {
		result.WriteString(bg.Gap())
		result.WriteString(bg.Paint("–", styles.FaintText))
		result.WriteString(bg.Gap())
		result.WriteString(bg.Paint(strings.TrimSpace(parts[1]), styles.Text))
	} else if rest := strings.TrimSpace(remaining); rest != "" {
		if result.Len() > 0 {
			result.WriteString(bg.Gap())
		}
		result.WriteString(bg.Paint(rest, styles.Text))
	}

	return result.String()
}

// levelStyle returns the style for a log level.
func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR":
		return styles.DangerText
	case "DEBUG", "TRACE":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// Patterns matching logging.LineFormatter output.
var (
	timestampRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
	levelRe     = regexp.MustCompile(`^\s*\b(TRACE|DEBUG|INFO|WARN|ERROR)\b`)
	componentRe = regexp.MustCompile(`\[([^\]]+)\]`)
	separatorRe = regexp.MustCompile(`\s*–\s*`)
)
