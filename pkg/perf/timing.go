package perf

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

var (
	// Set TMUX_UP_PERF=1 to log timings at info level instead of debug
	enabled = os.Getenv("TMUX_UP_PERF") == "1"

	loggerMu sync.RWMutex
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// SetLogger routes timing records to l.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Timer tracks elapsed time for a named operation
type Timer struct {
	name  string
	start time.Time
}

// Start begins timing an operation
func Start(name string) *Timer {
	return &Timer{
		name:  name,
		start: time.Now(),
	}
}

// Stop ends timing and logs the result with any extra attributes.
func (t *Timer) Stop(attrs ...any) time.Duration {
	elapsed := time.Since(t.start)
	level := slog.LevelDebug
	if enabled {
		level = slog.LevelInfo
	}
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	l.Log(context.Background(), level, t.name, append([]any{"elapsed", elapsed}, attrs...)...)
	return elapsed
}

// IsEnabled returns whether TMUX_UP_PERF is set
func IsEnabled() bool {
	return enabled
}
