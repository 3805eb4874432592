package join

// Completion settles a [Task] from the outside. It is the bridge between
// this package and code that drives completion through some other mechanism
// (a callback API, a test, an event loop).
//
// A Completion is single-shot: exactly one of [Completion.Complete],
// [Completion.Fail] or [Completion.Cancel] may be called, exactly once.
// A second settlement panics.
type Completion[T any] struct {
	task *Task[T]
}

// NewCompletion returns a Completion bound to a fresh pending task.
func NewCompletion[T any]() *Completion[T] {
	return &Completion[T]{task: newTask[T]()}
}

// Task returns the task settled by c.
func (c *Completion[T]) Task() *Task[T] {
	return c.task
}

// Complete settles the task as succeeded with v.
func (c *Completion[T]) Complete(v T) {
	c.task.complete(v)
}

// Fail settles the task as failed with err. Fail panics if err is nil;
// use [Completion.Complete] for success.
func (c *Completion[T]) Fail(err error) {
	if err == nil {
		panic("join: Fail called with nil error")
	}
	c.task.fail(err)
}

// Cancel settles the task as cancelled.
func (c *Completion[T]) Cancel() {
	c.task.fail(Canceled)
}

// Completed returns a fresh no-result task that is already succeeded.
func Completed() *Task[Void] {
	return settledTask(Void{}, nil)
}

// FromResult returns a fresh task that is already succeeded with v.
// Every call yields an independent task; outcomes are never shared.
func FromResult[T any](v T) *Task[T] {
	return settledTask(v, nil)
}

// FromError returns a fresh task that is already failed with err.
// FromError panics if err is nil.
func FromError[T any](err error) *Task[T] {
	if err == nil {
		panic("join: FromError called with nil error")
	}
	var zero T
	return settledTask(zero, err)
}

// FromCanceled returns a fresh task that is already cancelled.
func FromCanceled[T any]() *Task[T] {
	var zero T
	return settledTask(zero, Canceled)
}
