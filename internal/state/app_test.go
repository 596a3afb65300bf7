package state

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/five82/atkeys/internal/keys"
)

type listerFunc func(ctx context.Context) ([]string, error)

func (f listerFunc) List(ctx context.Context) ([]string, error) { return f(ctx) }

func TestNew_Defaults(t *testing.T) {
	a := New()
	if !a.Running() {
		t.Fatal("Running() = false, want true")
	}
	if a.Panel() != PanelFiles {
		t.Fatalf("Panel() = %v, want files", a.Panel())
	}
	if !a.ShowLogs() {
		t.Fatal("ShowLogs() = false, want true")
	}
	if a.Files() == nil || a.Files().Len() != 0 {
		t.Fatalf("Files() should be an empty selector")
	}
}

func TestNextSection_TogglesAndTwiceIsIdentity(t *testing.T) {
	a := New()
	a.NextSection()
	if a.Panel() != PanelLogs {
		t.Fatalf("Panel() = %v, want logs", a.Panel())
	}
	a.NextSection()
	if a.Panel() != PanelFiles {
		t.Fatalf("Panel() = %v, want files", a.Panel())
	}
}

func TestQuit_IsOneWay(t *testing.T) {
	a := New()
	a.NextSection()
	a.Quit()

	a.NextSection()
	a.Tick()
	a.ApplyScan([]string{"a"}, nil)
	a.Files().SelectNext()
	a.Quit()

	if a.Running() {
		t.Fatal("Running() = true after Quit, want false")
	}
}

func TestQuitInLogsKeepsPanel(t *testing.T) {
	a := New()
	a.NextSection()
	a.Quit()
	if a.Running() {
		t.Fatal("Running() = true, want false")
	}
	if a.Panel() != PanelLogs {
		t.Fatalf("Panel() = %v, want logs", a.Panel())
	}
}

func TestRescan_Success(t *testing.T) {
	a := New()
	err := a.Rescan(context.Background(), listerFunc(func(context.Context) ([]string, error) {
		return []string{"a", "b", "c"}, nil
	}))
	if err != nil {
		t.Fatalf("Rescan error = %v", err)
	}

	snap := a.Snapshot()
	if !reflect.DeepEqual(snap.Files, []string{"a", "b", "c"}) {
		t.Fatalf("Files = %v", snap.Files)
	}
	if got, ok := snap.SelectedFile(); !ok || got != "a" {
		t.Fatalf("SelectedFile = %q, %v; want a, true", got, ok)
	}
	if snap.LastScan.IsZero() {
		t.Fatal("LastScan not recorded")
	}
	if snap.LastScanError != nil {
		t.Fatalf("LastScanError = %v, want nil", snap.LastScanError)
	}
}

func TestRescan_MissingHomeKeepsRunningWithEmptyList(t *testing.T) {
	scanner, err := keys.NewScanner(keys.ScanOptions{})
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}

	a := New()
	err = a.Rescan(context.Background(), scanner)
	if !keys.IsConfiguration(err) {
		t.Fatalf("Rescan error = %v, want ConfigurationError", err)
	}
	if !a.Running() {
		t.Fatal("Running() = false, want true")
	}

	snap := a.Snapshot()
	if len(snap.Files) != 0 {
		t.Fatalf("Files = %v, want empty", snap.Files)
	}
	if _, ok := snap.SelectedFile(); ok {
		t.Fatal("SelectedFile reported a file for an empty list")
	}
	if !errors.Is(snap.LastScanError, keys.ErrHomeNotSet) {
		t.Fatalf("LastScanError = %v, want ErrHomeNotSet", snap.LastScanError)
	}
	if snap.LastScanError != err {
		t.Fatalf("Snapshot error = %v, want the scan error itself", snap.LastScanError)
	}
}

func TestApplyScan_ErrorClearsPreviousList(t *testing.T) {
	a := New()
	a.ApplyScan([]string{"a", "b"}, nil)
	a.Files().SelectNext()

	a.ApplyScan([]string{"ignored"}, errors.New("boom"))
	if a.Files().Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Files().Len())
	}
	if a.Files().Selected() != 0 {
		t.Fatalf("Selected() = %d, want 0", a.Files().Selected())
	}
	if a.LastScanError() == nil {
		t.Fatal("LastScanError() = nil, want boom")
	}

	a.ApplyScan([]string{"c"}, nil)
	if a.LastScanError() != nil {
		t.Fatalf("LastScanError() = %v after success, want nil", a.LastScanError())
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	a := New()
	a.ApplyScan([]string{"a", "b"}, nil)

	snap := a.Snapshot()
	snap.Files[0] = "changed"

	if got := a.Snapshot().Files[0]; got != "a" {
		t.Fatalf("Snapshot should copy files; got %q want a", got)
	}
}

func TestPanelString(t *testing.T) {
	if PanelFiles.String() != "files" || PanelLogs.String() != "logs" {
		t.Fatalf("unexpected panel names %q %q", PanelFiles, PanelLogs)
	}
}
