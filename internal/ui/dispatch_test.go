package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/atkeys/internal/logging"
	"github.com/five82/atkeys/internal/state"
)

type countingPager struct {
	advanced, retreated int
}

func (p *countingPager) AdvancePage() { p.advanced++ }
func (p *countingPager) RetreatPage() { p.retreated++ }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newScannedApp(files ...string) *state.App {
	app := state.New()
	app.ApplyScan(files, nil)
	return app
}

func TestDispatch_QuitKeysInEveryPanel(t *testing.T) {
	quitKeys := []tea.KeyMsg{
		runes("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, panel := range []state.Panel{state.PanelFiles, state.PanelLogs} {
		for _, msg := range quitKeys {
			app := state.New()
			if panel == state.PanelLogs {
				app.NextSection()
			}
			if !dispatch(msg, DefaultKeyMap(), app, &countingPager{}, logging.Discard()) {
				t.Fatalf("%s in %s panel not consumed", msg, panel)
			}
			if app.Running() {
				t.Fatalf("%s in %s panel did not quit", msg, panel)
			}
			if app.Panel() != panel {
				t.Fatalf("quit changed panel to %s, want %s", app.Panel(), panel)
			}
		}
	}
}

func TestDispatch_TabTogglesPanel(t *testing.T) {
	app := state.New()
	km := DefaultKeyMap()
	tab := tea.KeyMsg{Type: tea.KeyTab}

	dispatch(tab, km, app, &countingPager{}, logging.Discard())
	if app.Panel() != state.PanelLogs {
		t.Fatalf("panel = %s, want logs", app.Panel())
	}
	dispatch(tab, km, app, &countingPager{}, logging.Discard())
	if app.Panel() != state.PanelFiles {
		t.Fatalf("panel = %s, want files", app.Panel())
	}
}

func TestDispatch_FilesNavigationSaturates(t *testing.T) {
	app := newScannedApp("/keys/a", "/keys/b", "/keys/c")
	km := DefaultKeyMap()
	log := logging.Discard()
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{down, 1},
		{down, 2},
		{down, 2},
		{up, 1},
		{runes("k"), 0},
		{up, 0},
		{runes("j"), 1},
	}
	for i, step := range steps {
		if !dispatch(step.msg, km, app, &countingPager{}, log) {
			t.Fatalf("step %d: %s not consumed", i, step.msg)
		}
		if got := app.Files().Selected(); got != step.want {
			t.Fatalf("step %d: selected = %d, want %d", i, got, step.want)
		}
	}

	lines, _ := log.Buffer.Lines()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "selecting next file") || !strings.Contains(joined, "selecting previous file") {
		t.Fatalf("navigation not logged:\n%s", joined)
	}
}

func TestDispatch_NavigationOnEmptyList(t *testing.T) {
	app := state.New()
	km := DefaultKeyMap()

	dispatch(tea.KeyMsg{Type: tea.KeyDown}, km, app, &countingPager{}, logging.Discard())
	dispatch(tea.KeyMsg{Type: tea.KeyUp}, km, app, &countingPager{}, logging.Discard())

	if got := app.Files().Selected(); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}
	if _, ok := app.Files().SelectedFile(); ok {
		t.Fatal("SelectedFile reported a file for an empty list")
	}
}

func TestDispatch_LogsPanelPagesAndIgnoresArrows(t *testing.T) {
	app := newScannedApp("/keys/a", "/keys/b")
	app.NextSection()
	km := DefaultKeyMap()
	pager := &countingPager{}

	if dispatch(tea.KeyMsg{Type: tea.KeyDown}, km, app, pager, logging.Discard()) {
		t.Fatal("down consumed in logs panel")
	}
	if got := app.Files().Selected(); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}

	dispatch(tea.KeyMsg{Type: tea.KeyPgDown}, km, app, pager, logging.Discard())
	dispatch(tea.KeyMsg{Type: tea.KeyPgDown}, km, app, pager, logging.Discard())
	dispatch(tea.KeyMsg{Type: tea.KeyPgUp}, km, app, pager, logging.Discard())

	if pager.advanced != 2 || pager.retreated != 1 {
		t.Fatalf("pager = %+v, want 2 advances and 1 retreat", *pager)
	}
}

func TestDispatch_FilesPanelIgnoresPaging(t *testing.T) {
	app := state.New()
	pager := &countingPager{}

	if dispatch(tea.KeyMsg{Type: tea.KeyPgDown}, DefaultKeyMap(), app, pager, logging.Discard()) {
		t.Fatal("pgdown consumed in files panel")
	}
	if pager.advanced != 0 {
		t.Fatalf("pager advanced %d times, want 0", pager.advanced)
	}
}

func TestDispatch_UnknownKeyFallsThrough(t *testing.T) {
	app := state.New()
	if dispatch(runes("x"), DefaultKeyMap(), app, &countingPager{}, logging.Discard()) {
		t.Fatal("x consumed by dispatcher")
	}
	if !app.Running() || app.Panel() != state.PanelFiles {
		t.Fatal("unknown key changed state")
	}
}
