package workers

import (
	"context"
	"sync"
)

// Tasks is a handle for background work owned by one user session. Cancel
// stops everything started so far; tasks started afterwards run under a fresh
// context.
type Tasks struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTasks() *Tasks {
	t := &Tasks{}
	t.ctx, t.cancel = context.WithCancel(context.Background())
	return t
}

// Go runs fn in a new goroutine. fn receives the handle's context, not the
// caller's, so it outlives the request that started it.
func (t *Tasks) Go(fn func(ctx context.Context)) {
	t.mu.Lock()
	ctx := t.ctx
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		fn(ctx)
	}()
}

// Cancel cancels the context of every task started so far.
func (t *Tasks) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancel()
	t.ctx, t.cancel = context.WithCancel(context.Background())
}

// Wait blocks until every started task has returned.
func (t *Tasks) Wait() {
	t.wg.Wait()
}
