package chat

import (
	"sync"
	"time"
)

// SubmissionGuard is a single-flight gate: at most one "process a message"
// operation per session at a time. Release is deferred by a cooldown window
// so a double-click right after completion is still rejected. It is not a
// queue; rejected callers must resubmit.
type SubmissionGuard struct {
	mu       sync.Mutex
	busy     bool
	cooldown time.Duration
}

func NewSubmissionGuard(cooldown time.Duration) *SubmissionGuard {
	return &SubmissionGuard{cooldown: cooldown}
}

// TryBegin claims the guard, or fails with ErrAlreadyProcessing
func (g *SubmissionGuard) TryBegin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return ErrAlreadyProcessing
	}
	g.busy = true
	return nil
}

// Release schedules the guard to open again after the cooldown window.
// Called on success and failure alike.
func (g *SubmissionGuard) Release() {
	if g.cooldown <= 0 {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
		return
	}
	time.AfterFunc(g.cooldown, func() {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
	})
}
