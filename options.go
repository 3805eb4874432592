package join

import "time"

type config struct {
	limit  int
	onDone func(index int, err error, d time.Duration)
}

// Option configures [Map] and [ForEach].
type Option func(*config)

// WithLimit bounds the number of item functions executing concurrently.
// Items beyond the limit wait for a slot.
//
// A limit of zero (the default) means unlimited concurrency.
// WithLimit panics if n is negative.
func WithLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic("join: limit must be non-negative")
		}
		c.limit = n
	}
}

// WithOnDone registers a hook invoked as each item finishes, with the item's
// index, error (nil on success) and wall-clock duration. The hook runs inside
// the item's goroutine and must be safe for concurrent use.
func WithOnDone(fn func(index int, err error, d time.Duration)) Option {
	return func(c *config) {
		c.onDone = fn
	}
}
