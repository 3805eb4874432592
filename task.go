package join

import "sync/atomic"

// Task is a single-shot asynchronous operation. It is pending until settled
// exactly once into one of three terminal states: succeeded (carrying a value
// of type T), failed (carrying one error), or cancelled (a failure satisfying
// [IsCanceled]).
//
// Once terminal, the outcome is immutable and may be observed any number of
// times. Create running tasks with [Go] or [Do], already-terminal tasks with
// [FromResult], [FromError], [FromCanceled] or [Completed], and manually
// driven tasks with [NewCompletion].
type Task[T any] struct {
	done    chan struct{}
	settled atomic.Bool

	// val and err are written before done is closed and read only after
	// the close, so the channel provides the necessary happens-before edge.
	val T
	err error
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

// settledTask constructs a task that is already terminal.
func settledTask[T any](v T, err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), val: v, err: err}
	t.settled.Store(true)
	close(t.done)
	return t
}

func (t *Task[T]) settle(v T, err error) {
	if !t.settled.CompareAndSwap(false, true) {
		panic("join: task already settled")
	}
	t.val = v
	t.err = err
	close(t.done)
}

func (t *Task[T]) complete(v T) {
	t.settle(v, nil)
}

func (t *Task[T]) fail(err error) {
	var zero T
	t.settle(zero, err)
}

// Done returns a channel that is closed when t reaches a terminal state.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Terminal reports whether t has reached a terminal state.
func (t *Task[T]) Terminal() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until t is terminal and returns its outcome. The error is nil
// on success, satisfies [IsCanceled] on cancellation, and is the original
// failure otherwise. Wait may be called any number of times; every call
// observes the same outcome.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// awaitable is the position-agnostic view of a task used by the N-ary join
// core: a way to block until terminal and to read the failure afterwards.
type awaitable interface {
	Done() <-chan struct{}
	// failure must only be called after Done is closed.
	failure() error
}

func (t *Task[T]) failure() error {
	return t.err
}
