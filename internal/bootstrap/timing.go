package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/logging"
)

// PhaseTimer records how long each startup phase of a command takes.
// Safe for concurrent use, e.g. when editors load in parallel.
type PhaseTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
}

// NewPhaseTimer starts a timer.
func NewPhaseTimer() *PhaseTimer {
	now := time.Now()
	return &PhaseTimer{start: now, last: now, phases: make(map[string]time.Duration)}
}

// Mark records the time since the previous mark under phase.
func (t *PhaseTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.record(phase, now.Sub(t.last))
	t.last = now
}

// MarkDuration records d under phase, for work timed on its own goroutine.
func (t *PhaseTimer) MarkDuration(phase string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record(phase, d)
}

func (t *PhaseTimer) record(phase string, d time.Duration) {
	if _, seen := t.phases[phase]; !seen {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = d
}

// Phases returns the recorded phase names in first-seen order.
func (t *PhaseTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Log writes every phase at level to the context logger.
func (t *PhaseTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
