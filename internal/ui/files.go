package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/five82/atkeys/internal/state"
)

// renderFiles renders the key file list, scrolled so the cursor row is visible.
func (m Model) renderFiles(snap state.Snapshot, width, height int) string {
	focused := snap.Panel == state.PanelFiles
	bg := newPanelFill(m.panelBg(focused))
	styles := m.theme.Styles()

	if len(snap.Files) == 0 {
		return m.renderFilesEmpty(snap, width, bg, styles)
	}

	rows := maxInt(height, 1)
	start := 0
	if snap.Selected >= rows {
		start = snap.Selected - rows + 1
	}
	end := start + rows
	if end > len(snap.Files) {
		end = len(snap.Files)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := truncateMiddle(filepath.Base(snap.Files[i]), width)
		if i == snap.Selected {
			lines = append(lines, styles.Selected.Width(width).Render(name))
			continue
		}
		lines = append(lines, bg.Pad(bg.Paint(name, styles.Text), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFilesEmpty(snap state.Snapshot, width int, bg panelFill, styles Styles) string {
	if snap.LastScanError != nil {
		lines := []string{
			bg.Pad(bg.Paint("Scan failed", styles.DangerText), width),
			bg.Pad(bg.Paint(truncate(snap.LastScanError.Error(), width), styles.MutedText), width),
			"",
			bg.Pad(bg.Paint("Press r to rescan", styles.FaintText), width),
		}
		return strings.Join(lines, "\n")
	}

	msg := "No key files"
	if m.keysDir != "" {
		msg = fmt.Sprintf("No key files in %s", m.keysDir)
	}
	return bg.Pad(bg.Paint(truncateMiddle(msg, width), styles.MutedText), width)
}
