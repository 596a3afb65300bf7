package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// dirState is what the poller compares between samples.
type dirState struct {
	exists  bool
	modTime time.Time
}

// StartPoller watches dir by sampling it at a fixed cadence, for when fsnotify
// cannot be used. It sends on the returned channel whenever the directory
// appears, disappears or its entries change, and closes the channel when ctx
// is done. While the directory is unavailable the interval backs off.
func StartPoller(ctx context.Context, dir string, interval time.Duration, log logrus.FieldLogger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)

		var last dirState
		first := true
		failures := 0

		for {
			current, err := sample(dir)
			if err != nil {
				failures++
				if failures == 1 {
					log.WithError(err).Debug("key directory unavailable, backing off")
				}
			} else {
				failures = 0
			}

			if !first && current != last {
				select {
				case changes <- struct{}{}:
				default:
				}
			}
			last, first = current, false

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return changes
}

func sample(dir string) (dirState, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return dirState{}, err
	}
	return dirState{exists: true, modTime: info.ModTime()}, nil
}

// calculateBackoff doubles base for every consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	d := base << failures
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}
