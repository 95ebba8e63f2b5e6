package modal

import (
	"context"
	"errors"
	"sync"
)

// ErrPending is returned by Result while the future is unresolved.
var ErrPending = errors.New("modal: future pending")

// Future is the one-shot result of a created modal. It starts pending and
// resolves exactly once, to either a fulfilled value or a rejection error.
// Resolution happens on the runtime's update goroutine; Await may be called
// from any goroutine.
type Future struct {
	mu     sync.Mutex
	done   chan struct{}
	result any
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func rejected(err error) *Future {
	f := newFuture()
	f.reject(err)
	return f
}

// fulfill resolves the future with result. Resolving an already resolved
// future is a no-op, so the completion callback can never fire twice.
func (f *Future) fulfill(result any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		return
	default:
	}
	f.result = result
	close(f.done)
}

func (f *Future) reject(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.done:
		return
	default:
	}
	f.err = err
	close(f.done)
}

// Done is closed once the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved value or rejection error, or ErrPending if the
// future has not resolved yet.
func (f *Future) Result() (any, error) {
	select {
	case <-f.done:
	default:
		return nil, ErrPending
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err
}

// Await blocks until the future resolves or ctx is cancelled. Cancellation
// abandons the wait only; the modal itself stays open.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
