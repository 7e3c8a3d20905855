package utils

import (
	"context"
	"io"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

// openURL is swapped in tests.
var openURL = browser.OpenURL

func init() {
	// xdg-open and friends are chatty; their output is not ours to show.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// OpenBrowserWhenReady opens url in the default browser once ready is closed.
// It runs in its own goroutine and only logs failures.
func OpenBrowserWhenReady(ctx context.Context, ready <-chan struct{}, url string) {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-ready:
		}
		if err := openURL(url); err != nil {
			logrus.WithError(err).WithField("url", url).Warn("Could not open browser")
			return
		}
		logrus.WithField("url", url).Info("Opened browser")
	}()
}
