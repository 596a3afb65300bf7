package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/atkeys/internal/keys"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, Default())
	}
	if cfg.KeysDir != keys.DefaultDir {
		t.Fatalf("KeysDir = %q, want %q", cfg.KeysDir, keys.DefaultDir)
	}
	if !cfg.Watch {
		t.Fatal("Watch = false, want true by default")
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "atkeys")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`theme = "Slate"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("", home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
}

func TestLoad_NoHomeSkipsDefaultPath(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_ExplicitTildePathWithoutHomeFails(t *testing.T) {
	_, err := Load("~/config.toml", "")
	if !errors.Is(err, keys.ErrHomeNotSet) {
		t.Fatalf("Load error = %v, want ErrHomeNotSet", err)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
keys_dir = "  /srv/atsign/keys  "
pattern = " *.atKeys "
scan_timeout = "750ms"
watch = false
log_file = "  ~/.local/share/atkeys/atkeys.log  "
log_level = "DEBUG"
theme = " Nightfox "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.KeysDir != "/srv/atsign/keys" {
		t.Fatalf("KeysDir = %q", cfg.KeysDir)
	}
	if cfg.Pattern != "*.atKeys" {
		t.Fatalf("Pattern = %q", cfg.Pattern)
	}
	if cfg.ScanTimeout != 750*time.Millisecond {
		t.Fatalf("ScanTimeout = %v", cfg.ScanTimeout)
	}
	if cfg.Watch {
		t.Fatal("Watch = true, want false")
	}
	if cfg.LogFile != filepath.Join(home, ".local/share/atkeys/atkeys.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", cfg.Theme)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
keys_dir = "   "
scan_timeout = ""
log_level = ""
theme = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`keys_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path, "")
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidTimeoutFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`scan_timeout = "soon"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path, "")
	if err == nil || !strings.Contains(err.Error(), "scan_timeout") {
		t.Fatalf("Load error = %v, want scan_timeout error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()

	got, err := ExpandPath("~/a/b", home)
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   ", ""); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
