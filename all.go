package join

import (
	"fmt"
	"iter"
)

// awaitAll drives every input to a terminal state, in input position order,
// and reduces the observed failures via [Aggregate]. It never short-circuits:
// a failure in an early position still waits for every later position, so no
// outcome is dropped and no sibling is abandoned.
//
// The inputs run (or are already terminal) independently of the order in
// which they are awaited here; sequential awaiting only fixes the order in
// which outcomes are recorded.
func awaitAll(tasks []awaitable) error {
	var errs []error
	for _, t := range tasks {
		<-t.Done()
		if err := t.failure(); err != nil {
			errs = append(errs, err)
		}
	}
	return Aggregate(errs...)
}

func allTerminal(tasks []awaitable) bool {
	for _, t := range tasks {
		select {
		case <-t.Done():
		default:
			return false
		}
	}
	return true
}

// allOf is the N-ary join core shared by every fixed-arity and collection
// combinator. collect reads the input values; it is called only after every
// input succeeded.
func allOf[R any](tasks []awaitable, collect func() R) *Task[R] {
	// Already-terminal inputs are observed immediately, without a
	// goroutine. The full aggregation policy still applies.
	if allTerminal(tasks) {
		if err := awaitAll(tasks); err != nil {
			var zero R
			return settledTask(zero, err)
		}
		return settledTask(collect(), nil)
	}

	out := newTask[R]()
	go func() {
		if err := awaitAll(tasks); err != nil {
			out.fail(err)
			return
		}
		out.complete(collect())
	}()
	return out
}

// All2 returns a task that completes after both inputs are terminal.
// On success it carries both values in input order; otherwise it fails with
// the [Aggregate] of the observed failures. Inputs are only observed: they
// are never cancelled, retried or mutated, and none is abandoned when a
// sibling fails.
//
// A position with no meaningful value is simply a *Task[Void].
func All2[T1, T2 any](t1 *Task[T1], t2 *Task[T2]) *Task[Pair[T1, T2]] {
	if t1 == nil || t2 == nil {
		panic("join: All2 called with nil task")
	}
	return allOf([]awaitable{t1, t2}, func() Pair[T1, T2] {
		return Pair[T1, T2]{First: t1.val, Second: t2.val}
	})
}

// All3 is [All2] over three inputs.
func All3[T1, T2, T3 any](t1 *Task[T1], t2 *Task[T2], t3 *Task[T3]) *Task[Triple[T1, T2, T3]] {
	if t1 == nil || t2 == nil || t3 == nil {
		panic("join: All3 called with nil task")
	}
	return allOf([]awaitable{t1, t2, t3}, func() Triple[T1, T2, T3] {
		return Triple[T1, T2, T3]{First: t1.val, Second: t2.val, Third: t3.val}
	})
}

// All4 is [All2] over four inputs.
func All4[T1, T2, T3, T4 any](t1 *Task[T1], t2 *Task[T2], t3 *Task[T3], t4 *Task[T4]) *Task[Quad[T1, T2, T3, T4]] {
	if t1 == nil || t2 == nil || t3 == nil || t4 == nil {
		panic("join: All4 called with nil task")
	}
	return allOf([]awaitable{t1, t2, t3, t4}, func() Quad[T1, T2, T3, T4] {
		return Quad[T1, T2, T3, T4]{First: t1.val, Second: t2.val, Third: t3.val, Fourth: t4.val}
	})
}

// All returns a task that completes after every input is terminal, failing
// with the [Aggregate] of the observed failures if any input did not succeed.
//
// An empty input completes immediately with no value and no failure.
// All panics if any task is nil.
func All(tasks ...*Task[Void]) *Task[Void] {
	if len(tasks) == 0 {
		return Completed()
	}
	s := make([]awaitable, len(tasks))
	for i, t := range tasks {
		if t == nil {
			panic(fmt.Sprintf("join: task[%d] must not be nil", i))
		}
		s[i] = t
	}
	return allOf(s, func() Void { return Void{} })
}

// AllOf is [All] over tasks that carry a result. On success the returned
// task carries every value, in input order regardless of settlement order.
func AllOf[T any](tasks ...*Task[T]) *Task[[]T] {
	if len(tasks) == 0 {
		return FromResult([]T{})
	}
	s := make([]awaitable, len(tasks))
	for i, t := range tasks {
		if t == nil {
			panic(fmt.Sprintf("join: task[%d] must not be nil", i))
		}
		s[i] = t
	}
	return allOf(s, func() []T {
		vals := make([]T, len(tasks))
		for i, t := range tasks {
			vals[i] = t.val
		}
		return vals
	})
}

// AllSeq is [All] over a one-shot forward sequence. Tasks are awaited in
// encounter order; the sequence is consumed exactly once. An empty sequence
// completes immediately.
//
// AllSeq panics (in the awaiting goroutine) if the sequence yields a nil
// task.
func AllSeq(seq iter.Seq[*Task[Void]]) *Task[Void] {
	out := newTask[Void]()
	go func() {
		var errs []error
		i := 0
		for t := range seq {
			if t == nil {
				panic(fmt.Sprintf("join: task[%d] must not be nil", i))
			}
			<-t.Done()
			if err := t.failure(); err != nil {
				errs = append(errs, err)
			}
			i++
		}
		if err := Aggregate(errs...); err != nil {
			out.fail(err)
			return
		}
		out.complete(Void{})
	}()
	return out
}
