// Package bootstrap assembles the dispatcher from configuration.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/riblet/internal/logging"
)

// StartupTimer tracks how long each assembly phase took.
// Safe for use from the parallel loaders.
type StartupTimer struct {
	start  time.Time
	phases map[string]time.Duration
	order  []string // insertion order for logging
	mu     sync.Mutex
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	return &StartupTimer{
		start:  time.Now(),
		phases: make(map[string]time.Duration),
	}
}

// Track returns a func that records the time elapsed until it is called
// under phase. Meant for `defer timer.Track("routes")()`.
func (t *StartupTimer) Track(phase string) func() {
	began := time.Now()
	return func() {
		t.MarkDuration(phase, time.Since(began))
	}
}

// MarkDuration records a duration for a phase.
func (t *StartupTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = d
}

// Phase returns the recorded duration of phase.
func (t *StartupTimer) Phase(phase string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.phases[phase]
	return d, ok
}

// Log writes all phases at the given level to the context logger.
func (t *StartupTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("dispatcher assembly timing")
}
