package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/atkeys/internal/config"
	"github.com/five82/atkeys/internal/keys"
	"github.com/five82/atkeys/internal/logging"
	"github.com/five82/atkeys/internal/state"
	"github.com/five82/atkeys/internal/ui"
	"github.com/five82/atkeys/internal/watch"
)

// Options configure the atkeys application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	HomeDir    string // injected by main; empty means HOME is unset

	KeysDir     string
	Pattern     string
	ScanTimeout time.Duration
	NoWatch     bool
	LogFile     string
	LogLevel    string
	Theme       string
}

// Run boots the atkeys TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath, opts.HomeDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()

	scanner, err := keys.NewScanner(keys.ScanOptions{
		Dir:     cfg.KeysDir,
		HomeDir: opts.HomeDir,
		Pattern: cfg.Pattern,
		Timeout: cfg.ScanTimeout,
	})
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	logger.WithField("keys_dir", cfg.KeysDir).Info("starting atkeys")

	app := state.New()

	// Do initial scan to populate the list before UI starts
	scanLog := logger.Component("scan")
	if err := app.Rescan(ctx, scanner); err != nil {
		scanLog.WithError(err).Warn("initial scan failed")
	} else {
		scanLog.WithField("files", app.Files().Len()).Info("scan complete")
	}

	changes, stop := startWatching(ctx, cfg.Watch, scanner, logger)
	defer stop()

	displayDir := cfg.KeysDir
	if dir, err := scanner.Dir(); err == nil {
		displayDir = dir
	}

	uiOpts := ui.Options{
		Context: ctx,
		App:     app,
		Scanner: scanner,
		Changes: changes,
		Logger:  logger,
		Theme:   cfg.Theme,
		KeysDir: displayDir,
	}
	err = ui.Run(uiOpts)
	logger.Info("atkeys stopped")
	return err
}

// applyOverrides layers command line values over the loaded config.
func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if v := strings.TrimSpace(opts.KeysDir); v != "" {
		cfg.KeysDir = v
	}
	if v := strings.TrimSpace(opts.Pattern); v != "" {
		cfg.Pattern = v
	}
	if opts.ScanTimeout > 0 {
		cfg.ScanTimeout = opts.ScanTimeout
	}
	if opts.NoWatch {
		cfg.Watch = false
	}
	if v := strings.TrimSpace(opts.LogFile); v != "" {
		path, err := config.ExpandPath(v, opts.HomeDir)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.Theme); v != "" {
		cfg.Theme = v
	}
	return cfg, nil
}

// startWatching returns the change channel for the keys directory and a
// function releasing it. fsnotify is preferred; the poller takes over when the
// directory cannot be watched, for example because it does not exist yet.
func startWatching(ctx context.Context, enabled bool, scanner *keys.Scanner, logger *logging.Logger) (<-chan struct{}, func()) {
	noop := func() {}
	if !enabled {
		return nil, noop
	}

	log := logger.Component("watch")
	dir, err := scanner.Dir()
	if err != nil {
		log.WithError(err).Warn("not watching key directory")
		return nil, noop
	}

	w, err := watch.New(dir, watch.DefaultDebounce, log)
	if err == nil {
		return w.Changes(), func() {
			if err := w.Close(); err != nil {
				log.WithError(err).Warn("close watcher")
			}
		}
	}

	log.WithError(err).Info("falling back to polling the key directory")
	pollCtx, cancel := context.WithCancel(ctx)
	return StartPoller(pollCtx, dir, defaultPollInterval, log), cancel
}
