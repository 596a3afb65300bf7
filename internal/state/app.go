package state

import (
	"context"
	"time"

	"github.com/five82/atkeys/internal/keys"
)

// Panel identifies which section has focus.
type Panel int

const (
	PanelFiles Panel = iota
	PanelLogs
)

func (p Panel) String() string {
	switch p {
	case PanelLogs:
		return "logs"
	default:
		return "files"
	}
}

// Snapshot is the read-only view of App handed to the renderer.
type Snapshot struct {
	Running       bool
	Panel         Panel
	ShowLogs      bool
	Files         []string
	Selected      int
	LastScan      time.Time
	LastScanError error
}

// SelectedFile returns the file under the cursor, if any.
func (s Snapshot) SelectedFile() (string, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Files) {
		return "", false
	}
	return s.Files[s.Selected], true
}

// App is the application state machine. It is owned by the UI goroutine; only
// the embedded selector is safe to touch from elsewhere.
type App struct {
	running     bool
	panel       Panel
	showLogs    bool
	files       *keys.Selector
	lastScan    time.Time
	lastScanErr error
}

// New returns a running App focused on the Files panel with an empty list.
func New() *App {
	return &App{
		running:  true,
		panel:    PanelFiles,
		showLogs: true,
		files:    keys.NewSelector(),
	}
}

// Running reports whether the driving loop should continue.
func (a *App) Running() bool { return a.running }

// Panel returns the focused panel.
func (a *App) Panel() Panel { return a.panel }

// ShowLogs reports whether the log panel is displayed.
func (a *App) ShowLogs() bool { return a.showLogs }

// Files returns the key file selector.
func (a *App) Files() *keys.Selector { return a.files }

// Quit stops the app. There is no way back to running.
func (a *App) Quit() {
	a.running = false
}

// NextSection moves focus to the other panel.
func (a *App) NextSection() {
	switch a.panel {
	case PanelFiles:
		a.panel = PanelLogs
	default:
		a.panel = PanelFiles
	}
}

// Tick is called on every UI timer tick.
func (a *App) Tick() {}

// ApplyScan records a scan result. A failed scan leaves the list empty.
func (a *App) ApplyScan(files []string, err error) {
	if err != nil {
		files = nil
	}
	a.files.Replace(files)
	a.lastScan = time.Now()
	a.lastScanErr = err
}

// Rescan lists key files with l and applies the result.
func (a *App) Rescan(ctx context.Context, l keys.Lister) error {
	files, err := l.List(ctx)
	a.ApplyScan(files, err)
	return err
}

// LastScanError returns the error from the most recent scan, if any.
func (a *App) LastScanError() error { return a.lastScanErr }

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() Snapshot {
	files, selected := a.files.View()
	return Snapshot{
		Running:       a.running,
		Panel:         a.panel,
		ShowLogs:      a.showLogs,
		Files:         files,
		Selected:      selected,
		LastScan:      a.lastScan,
		LastScanError: a.lastScanErr,
	}
}
