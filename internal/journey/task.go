package journey

import (
	"context"

	"donorjourney/internal/types"
)

// Task is the pending result of an asynchronous generation. It completes
// exactly once.
type Task struct {
	done    chan struct{}
	journey *types.PersonalizedJourney
	err     error
}

// Run executes fn in a new goroutine and returns its Task.
func Run(fn func() (*types.PersonalizedJourney, error)) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.journey, t.err = fn()
	}()
	return t
}

// Done is closed when the result is available.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx ends. A cancelled ctx abandons
// the wait, not the generation.
func (t *Task) Wait(ctx context.Context) (*types.PersonalizedJourney, error) {
	select {
	case <-t.done:
		return t.journey, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
