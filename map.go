package join

import (
	"context"
	"sync"
	"time"
)

// Map runs fn for each item concurrently and returns a task carrying the
// results in input order. Every item is driven to completion even when
// earlier items fail; the failures are then reduced via [Aggregate] in input
// order. A panic in fn fails that item with a [*PanicError].
//
//	prices := join.Map(ctx, products, func(ctx context.Context, p Product) (float64, error) {
//	    return fetchPrice(ctx, p)
//	}, join.WithLimit(5))
//	vals, err := prices.Wait()
//
// Map panics if fn is nil.
func Map[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error), opts ...Option) *Task[[]R] {
	if fn == nil {
		panic("join: Map called with nil function")
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := newTask[[]R]()

	go func() {
		results := make([]R, len(items))
		errs := make([]error, len(items))

		var sem chan struct{}
		if cfg.limit > 0 {
			sem = make(chan struct{}, cfg.limit)
		}

		var wg sync.WaitGroup
		wg.Add(len(items))
		for i, item := range items {
			go func() {
				defer wg.Done()

				if sem != nil {
					sem <- struct{}{}
					defer func() { <-sem }()
				}

				start := time.Now()
				defer func() {
					if r := recover(); r != nil {
						errs[i] = newPanicError(r)
					}
					if cfg.onDone != nil {
						cfg.onDone(i, errs[i], time.Since(start))
					}
				}()

				results[i], errs[i] = fn(ctx, item) // each goroutine writes a unique index
			}()
		}
		wg.Wait()

		if err := Aggregate(errs...); err != nil {
			out.fail(err)
			return
		}
		out.complete(results)
	}()

	return out
}

// ForEach is [Map] for functions that produce no value.
//
// ForEach panics if fn is nil.
func ForEach[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error, opts ...Option) *Task[Void] {
	if fn == nil {
		panic("join: ForEach called with nil function")
	}

	out := newTask[Void]()
	m := Map(ctx, items, func(ctx context.Context, item T) (Void, error) {
		return Void{}, fn(ctx, item)
	}, opts...)

	go func() {
		if _, err := m.Wait(); err != nil {
			out.fail(err)
			return
		}
		out.complete(Void{})
	}()

	return out
}
