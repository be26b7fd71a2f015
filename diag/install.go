package diag

import (
	"os"
	"os/signal"
)

// Install wires l to flush on interrupt and returns a teardown function
// the caller should defer-call so l also flushes on normal return.
//
// This is deliberately not called automatically by NewLog: per the
// ownership split between this package and its collaborators, only a
// CLI-style entry point installs OS-level hooks (signal handlers,
// deferred teardown) — a library consumer of Log decides for itself
// whether process-wide signal handling is appropriate.
func Install(l *Log) (teardown func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			_ = l.Flush()
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		close(done)
		signal.Stop(sigCh)
		_ = l.Flush()
	}
}
