package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/atkeys/internal/keys"
)

// Config captures the atkeys settings.
type Config struct {
	KeysDir     string // left unexpanded; keys.Scanner resolves ~ at scan time
	Pattern     string
	ScanTimeout time.Duration
	Watch       bool
	LogFile     string // empty keeps logs in memory only
	LogLevel    string
	Theme       string
}

const (
	defaultConfigPath = "~/.config/atkeys/config.toml"
	defaultLogLevel   = "info"
	defaultTheme      = "Atsign"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		KeysDir:     keys.DefaultDir,
		ScanTimeout: keys.DefaultScanTimeout,
		Watch:       true,
		LogLevel:    defaultLogLevel,
		Theme:       defaultTheme,
	}
}

// Load reads the config at path, falling back to defaults when it is missing.
// An empty path means ~/.config/atkeys/config.toml; when home is empty that
// default location is skipped instead of failing.
func Load(path, home string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		if strings.TrimSpace(home) == "" {
			return cfg, nil
		}
		path = defaultConfigPath
	}
	resolved, err := expandPath(path, home)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		KeysDir     string `toml:"keys_dir"`
		Pattern     string `toml:"pattern"`
		ScanTimeout string `toml:"scan_timeout"`
		Watch       *bool  `toml:"watch"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		Theme       string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.KeysDir); v != "" {
		cfg.KeysDir = v
	}
	cfg.Pattern = strings.TrimSpace(raw.Pattern)
	if v := strings.TrimSpace(raw.ScanTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: scan_timeout: %w", err)
		}
		if d > 0 {
			cfg.ScanTimeout = d
		}
	}
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		logFile, err := expandPath(v, home)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
		cfg.LogFile = logFile
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ against home and returns an absolute path.
func ExpandPath(path, home string) (string, error) {
	return expandPath(path, home)
}

func expandPath(path, home string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		if strings.TrimSpace(home) == "" {
			return "", fmt.Errorf("resolve %s: %w", trimmed, keys.ErrHomeNotSet)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
