package join

import "context"

// Go runs fn in its own goroutine and returns the task it settles.
//
// The task succeeds with fn's value, fails with fn's error, and is cancelled
// when fn returns a cancellation error (typically ctx.Err() after ctx is
// canceled). A panic in fn settles the task with a [*PanicError] carrying
// the stack trace; it is never re-raised.
//
// Go panics if fn is nil.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	if fn == nil {
		panic("join: Go called with nil function")
	}

	t := newTask[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.fail(newPanicError(r))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			t.fail(err)
			return
		}
		t.complete(v)
	}()

	return t
}

// Do is [Go] for functions that produce no value.
//
// Do panics if fn is nil.
func Do(ctx context.Context, fn func(ctx context.Context) error) *Task[Void] {
	if fn == nil {
		panic("join: Do called with nil function")
	}
	return Go(ctx, func(ctx context.Context) (Void, error) {
		return Void{}, fn(ctx)
	})
}
