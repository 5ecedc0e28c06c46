// Package xlog is a thin wrapper over log/slog for ambient, non-hot-path
// diagnostics. No engine Step/Jump/Split path logs. The catalogue loader
// (which panics on a malformed asset) and cmd/trngcat (which reports
// errors on stderr via fmt) do not call it.
package xlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once    sync.Once
	logger  *slog.Logger
)

// Default returns the process-wide logger, built lazily on first use.
func Default() *slog.Logger {
	once.Do(func() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	})
	return logger
}
