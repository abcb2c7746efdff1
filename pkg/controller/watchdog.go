package controller

import (
	"context"
	"time"
)

// defaultWatchdogTimeout matches spec.md §5's "~10s" liveness bound for
// ensure_sims against a stalled worker.
const defaultWatchdogTimeout = 10 * time.Second

// watchdog wraps a context.WithTimeout deadline, grounded on the
// teacher's _Timer/Limiter cancellation shape (pkg/mcts/timer.go,
// pkg/mcts/limiter.go) but adapted to stdlib context instead of a
// polled IsEnd() flag, since this package already threads a
// context.Context through SetContext.
type watchdog struct {
	timeout time.Duration
}

func newWatchdog(timeout time.Duration) *watchdog {
	if timeout <= 0 {
		timeout = defaultWatchdogTimeout
	}
	return &watchdog{timeout: timeout}
}

func (w *watchdog) context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, w.timeout)
}
