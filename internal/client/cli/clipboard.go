package cli

import (
	"time"

	"github.com/atotto/clipboard"
)

// Test seams for the system clipboard.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// clipboardGuard copies secrets out and wipes them again after a delay,
// unless the user has copied something else in the meantime.
type clipboardGuard struct {
	clearAfter time.Duration
	timer      *time.Timer
}

func (g *clipboardGuard) copy(secret string) error {
	if err := writeClipboard(secret); err != nil {
		return err
	}

	g.stop()
	if g.clearAfter > 0 {
		g.timer = time.AfterFunc(g.clearAfter, func() {
			if current, err := readClipboard(); err == nil && current == secret {
				_ = writeClipboard("")
			}
		})
	}
	return nil
}

func (g *clipboardGuard) stop() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
