package main

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// boundedGroup runs a bounded number of tasks concurrently: errgroup
// collects the first error and waits for everyone to finish, while the
// semaphore caps how many run at once, so a `prompt`/`format` invocation
// over thousands of glob matches doesn't open thousands of files at the
// same instant (spec §5: "a worker pool may call the core on disjoint
// files concurrently").
type boundedGroup struct {
	g   *errgroup.Group
	ctx context.Context
	sem *semaphore.Weighted
}

func newBoundedGroup() *boundedGroup {
	n := int64(runtime.NumCPU())
	if n < 1 {
		n = 1
	}
	g, ctx := errgroup.WithContext(context.Background())
	return &boundedGroup{g: g, ctx: ctx, sem: semaphore.NewWeighted(n)}
}

// Go runs fn once a slot is free. fn's own errors are expected to be
// handled internally (logged per-file) rather than propagated, since one
// bad file shouldn't abort the rest of the batch (spec §7: "Filesystem —
// safe ... logged, skipped; next file continues").
func (b *boundedGroup) Go(fn func()) {
	b.g.Go(func() error {
		if err := b.sem.Acquire(b.ctx, 1); err != nil {
			return err
		}
		defer b.sem.Release(1)
		fn()
		return nil
	})
}

func (b *boundedGroup) Wait() error {
	return b.g.Wait()
}
