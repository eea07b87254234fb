// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// hashGate bounds how many CPU-bound hash computations run at once, so
// deliberately slow password hashing on some requests cannot starve the
// goroutines accepting and serving unrelated requests.
type hashGate struct {
	sem *semaphore.Weighted
}

// newHashGate creates a gate with the given number of slots.
// Non-positive slots defaults to one slot per CPU.
func newHashGate(slots int) *hashGate {
	if slots <= 0 {
		slots = runtime.GOMAXPROCS(0)
	}

	return &hashGate{sem: semaphore.NewWeighted(int64(slots))}
}

// run executes fn inside a gate slot, blocking until a slot is free.
// It returns an error only when the context ends before a slot is acquired;
// once fn starts it always runs to completion.
func (g *hashGate) run(ctx context.Context, fn func()) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	fn()

	return nil
}
