// Package join provides combinators over single-shot asynchronous tasks.
//
// A [Task] is an asynchronous operation with exactly one of three terminal
// states: succeeded (carrying a typed value), failed (carrying one error),
// or cancelled (a payload-free outcome recognized by [IsCanceled]). Once
// terminal, a task's outcome is immutable and may be observed any number of
// times via [Task.Wait] or [Task.Done].
//
// # Joining Tasks
//
// The core of the package is the All family, which turns several
// independently-running tasks into one task that completes only after every
// input has reached a terminal state:
//
//	users := join.Go(ctx, fetchUsers)
//	posts := join.Go(ctx, fetchPosts)
//
//	both, err := join.All2(users, posts).Wait()
//
// [All2], [All3] and [All4] join tasks of mixed result types and carry the
// values as a [Pair], [Triple] or [Quad] in input order. A position that
// produces no value is a *Task[Void]. [All] joins any number of no-result
// tasks, [AllOf] any number of same-typed tasks, and [AllSeq] a one-shot
// forward sequence.
//
// Joins never short-circuit: a failure in one input still waits for every
// sibling, so side effects of the tasks that do succeed are preserved and
// every failure is observed.
//
// # Failure Aggregation
//
// When a join observes failures, it raises the single error produced by
// [Aggregate]:
//
//   - Genuine failures are collected, in input order, into an
//     [*AggregateError]. Aggregates never nest; inner aggregates are
//     flattened in.
//   - If every failure is a cancellation, the join is itself cancelled and
//     reports a plain cancellation, never an aggregate-of-one.
//   - In a mixed set, cancellations are dropped: a cancellation alongside a
//     real failure is noise.
//
// Use [IsAggregate], [AsAggregate] and [FailuresOf] to inspect failures, and
// [IsCanceled] to distinguish cancellation from breakage.
//
// # Already-Terminal Tasks
//
// [Completed], [FromResult], [FromError] and [FromCanceled] manufacture
// tasks that are already terminal, without an asynchronous execution path.
// Each call yields an independent task. [NewCompletion] returns a
// [Completion] for settling a task from the outside, one time only.
//
// # Running Functions as Tasks
//
// [Go] and [Do] run a function in its own goroutine and settle the returned
// task from its result. A panic in the function becomes a [*PanicError]
// failure carrying the stack trace from the point of the panic.
//
// # Racing and Slices
//
// [Race] settles with the first input to succeed, or with the aggregate of
// all failures if nothing does. [Map] and [ForEach] apply a function to
// every element of a slice concurrently, bounded by [WithLimit] and observed
// by [WithOnDone], returning a task with results in input order.
//
// # What the Package Does Not Do
//
// Combinators only observe their inputs. They never cancel, retry, or mutate
// them, carry no timeout or cancellation token of their own, and schedule
// nothing: inputs run wherever they were started. Callers wanting a timeout
// race the join against a timer task externally.
package join
