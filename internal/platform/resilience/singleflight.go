package resilience

import (
	"fmt"
	"sync"
)

// Flight collapses concurrent loads that share a key into one call of fn.
// Callers that joined an in-flight load get its result with shared=true.
type Flight[T any] struct {
	mu      sync.Mutex
	pending map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done    chan struct{}
	val     T
	err     error
	waiters int
}

func (f *Flight[T]) Do(key string, fn func() (T, error)) (v T, shared bool, err error) {
	f.mu.Lock()
	if f.pending == nil {
		f.pending = make(map[string]*flightCall[T])
	}
	if c, ok := f.pending[key]; ok {
		c.waiters++
		f.mu.Unlock()
		<-c.done
		return c.val, true, c.err
	}

	c := &flightCall[T]{done: make(chan struct{})}
	f.pending[key] = c
	f.mu.Unlock()

	defer func() {
		// a panicking loader surfaces as an error to every waiter
		if r := recover(); r != nil {
			c.err = fmt.Errorf("load %q panicked: %v", key, r)
			err = c.err
		}
		f.mu.Lock()
		delete(f.pending, key)
		f.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
	return c.val, c.waiters > 0, c.err
}

// InFlight reports how many keys are loading right now.
func (f *Flight[T]) InFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}
