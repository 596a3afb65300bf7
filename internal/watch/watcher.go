package watch

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last event before a change is
// reported.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports coalesced changes to a single directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	log      logrus.FieldLogger

	fsWatcher *fsnotify.Watcher
	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once

	mu      sync.Mutex // guards changes against sends after Close
	changes chan struct{}
	closed  bool
}

// New starts watching dir. A zero debounce uses DefaultDebounce.
func New(dir string, debounce time.Duration, log logrus.FieldLogger) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	w := &Watcher{
		dir:       dir,
		debounce:  debounce,
		log:       log.WithField("directory", dir),
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	w.log.Info("watching directory")
	return w, nil
}

// Changes delivers one value per burst of filesystem activity. The channel is
// closed by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		err = w.fsWatcher.Close()
		w.wg.Wait()

		w.mu.Lock()
		w.closed = true
		close(w.changes)
		w.mu.Unlock()
		w.log.Info("watcher stopped")
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.log.WithField("file", event.Name).Debugf("fs event %s", event.Op)
			if timer == nil {
				timer = time.AfterFunc(w.debounce, w.notify)
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Error("fsnotify watcher error")

		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
		// a change is already queued
	}
}
