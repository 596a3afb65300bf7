package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := rootCmd("/home/alice")

	for _, name := range []string{"config", "keys-dir", "pattern", "scan-timeout", "no-watch", "log-file", "log-level", "theme"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s not defined", name)
		}
	}

	if err := cmd.ParseFlags([]string{"--scan-timeout", "2s", "--no-watch"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if got, _ := cmd.Flags().GetDuration("scan-timeout"); got != 2*time.Second {
		t.Fatalf("scan-timeout = %v, want 2s", got)
	}
	if got, _ := cmd.Flags().GetBool("no-watch"); !got {
		t.Fatal("no-watch = false, want true")
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := rootCmd("")
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute accepted a positional argument")
	}
}

func TestRootCmd_ConfigErrorIsReturned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`scan_timeout = "soon"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := rootCmd("")
	cmd.SetArgs([]string{"--config", path})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "scan_timeout") {
		t.Fatalf("Execute error = %v, want scan_timeout error", err)
	}
}
