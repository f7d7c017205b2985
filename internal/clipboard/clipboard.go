// Package clipboard wraps the system clipboard for text writes. The
// underlying library needs a one-time Init that can fail on headless
// systems, so copy degrades to a no-op error instead of crashing the TUI.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/parleyhq/parley/internal/errors"
	"github.com/parleyhq/parley/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// ensureInit initializes the clipboard library once.
func ensureInit() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
		if initErr != nil {
			logger.Warn("clipboard: init failed: %v", initErr)
		}
	})
	return initErr
}

// WriteText copies text to the system clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return errors.E(errors.Op("clipboard.WriteText"), errors.KindIO, "clipboard unavailable", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
