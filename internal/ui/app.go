package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atkeys/internal/keys"
	"github.com/five82/atkeys/internal/logging"
	"github.com/five82/atkeys/internal/state"
)

// DefaultTick is the UI refresh interval.
const DefaultTick = 250 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context context.Context
	App     *state.App
	Scanner keys.Lister
	Changes <-chan struct{} // directory change notifications; nil disables
	Logger  *logging.Logger
	Theme   string
	KeysDir string // shown when the list is empty
	Tick    time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	app     *state.App
	scanner keys.Lister
	changes <-chan struct{}
	log     *logging.Logger
	keysDir string
	tick    time.Duration

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	scanning bool
	pending  bool // a rescan was requested while scanning

	// Logs panel
	logs logPane
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	app := opts.App
	if app == nil {
		app = state.New()
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = DefaultThemeName
	}
	theme := GetTheme(themeName)

	m := Model{
		ctx:     ctx,
		app:     app,
		scanner: opts.Scanner,
		changes: opts.Changes,
		log:     log,
		keysDir: opts.KeysDir,
		tick:    tick,
		keys:    DefaultKeyMap(),
		help:    newHelp(theme),
		theme:   theme,
		logs:    newLogPane(),
	}
	m.logs.pull(log.Buffer)
	return m
}

func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShowAll = false
	h.ShortSeparator = " • "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Background(lipgloss.Color(theme.SurfaceAlt))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)).Background(lipgloss.Color(theme.SurfaceAlt))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Background(lipgloss.Color(theme.SurfaceAlt))
	h.Styles.Ellipsis = h.Styles.ShortSeparator
	return h
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.changes != nil {
		cmds = append(cmds, waitForChangeCmd(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		_, logsWidth, height := m.contentSize()
		m.logs.setSize(logsWidth-2, height-2)
		m.refreshLogs(true)
		return m, nil

	case tickMsg:
		m.app.Tick()
		m.refreshLogs(false)
		return m, tickCmd(m.tick)

	case scanResultMsg:
		m.scanning = false
		m.applyScan(msg)
		var cmd tea.Cmd
		if m.pending {
			m.pending = false
			cmd = m.rescan()
		}
		m.refreshLogs(false)
		return m, cmd

	case dirChangedMsg:
		m.log.Component("watch").Debug("key directory changed")
		cmd := m.rescan()
		return m, tea.Batch(cmd, waitForChangeCmd(m.changes))

	case watchClosedMsg:
		m.changes = nil
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.app.Running() {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey runs the panel dispatcher first, then the model-level bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help; quit keys also quit.
		m.showHelp = false
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	before := m.app.Panel()
	if dispatch(msg, m.keys, m.app, &m.logs, m.log.Component("files")) {
		if !m.app.Running() {
			m.log.Info("quitting")
			return m, tea.Quit
		}
		if m.app.Panel() != before {
			m.log.Debugf("focus moved to %s panel", m.app.Panel())
			m.refreshLogs(true)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Rescan):
		cmd := m.rescan()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.log.Infof("theme set to %s", m.theme.Name)
		m.refreshLogs(true)
	}
	return m, nil
}

// rescan starts a scan. While one is running the request is queued and a
// single follow-up scan starts when the running one finishes.
func (m *Model) rescan() tea.Cmd {
	if m.scanner == nil {
		return nil
	}
	if m.scanning {
		if !m.pending {
			m.log.Component("scan").Debug("scan already running, queued rescan")
		}
		m.pending = true
		return nil
	}
	m.scanning = true
	m.log.Component("scan").Info("rescanning key directory")
	return scanCmd(m.ctx, m.scanner)
}

func (m *Model) applyScan(msg scanResultMsg) {
	m.app.ApplyScan(msg.files, msg.err)
	log := m.log.Component("scan")
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return
		}
		log.WithError(msg.err).Warn("scan failed")
		return
	}
	log.WithField("files", len(msg.files)).Info("scan complete")
}

// refreshLogs pulls new buffered lines and re-renders the viewport when they
// changed or when force is set.
func (m *Model) refreshLogs(force bool) {
	if !m.logs.pull(m.log.Buffer) && !force {
		return
	}
	m.logs.setContent(m.renderLogContent(m.logs.viewport.Width))
}

func (m Model) logsFocused() bool {
	return m.app.Panel() == state.PanelLogs
}

// Messages

type tickMsg time.Time

type scanResultMsg struct {
	files []string
	err   error
}

type dirChangedMsg struct{}

type watchClosedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func scanCmd(ctx context.Context, lister keys.Lister) tea.Cmd {
	return func() tea.Msg {
		files, err := lister.List(ctx)
		return scanResultMsg{files: files, err: err}
	}
}

func waitForChangeCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return watchClosedMsg{}
		}
		return dirChangedMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
