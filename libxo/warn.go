package libxo

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	console "github.com/ansel1/console-slog"
)

// warnLogger is the process-wide sink for Warn-flagged diagnostics. Every
// Handle with Warn set shares it, mirroring spec.md §7's "warnings go to
// standard error as a single newline-terminated message" policy — here
// realized as one slog record per warning rather than a bare Fprintln,
// grounded on bukodi-console-slog's colorized console handler.
var (
	warnOnce   sync.Once
	warnLogger *slog.Logger
)

func getWarnLogger() *slog.Logger {
	warnOnce.Do(func() {
		h := console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level:      slog.LevelWarn,
			NoColor:    !isTerminal(os.Stderr),
			TimeFormat: "",
		})
		warnLogger = slog.New(h)
	})
	return warnLogger
}

// SetWarnWriter lets a caller redirect where Warn-flagged diagnostics go
// (tests, or an application that wants its own log sink). Passing nil
// restores the default stderr console handler on next use.
func SetWarnWriter(w *slog.Logger) {
	warnOnce.Do(func() {}) // ensure Do has fired so the assignment below sticks
	warnLogger = w
	if w == nil {
		warnOnce = sync.Once{}
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// warn emits one diagnostic if h has Warn (or WarnXML) set. It never
// returns an error: a malformed-directive or stack-misuse condition is a
// warning only, and emission proceeds regardless.
func (h *Handle) warn(msg string, args ...any) {
	if !h.flags.has(Warn) && !h.flags.has(WarnXML) {
		return
	}
	if len(args) == 0 {
		getWarnLogger().Warn(msg)
		return
	}
	getWarnLogger().Warn(fmt.Sprintf(msg, args...))
}
