package join

import "fmt"

// Race returns a task that settles with the value of the first input to
// succeed. If no input succeeds, it fails with the [Aggregate] of every
// failure in input position order — so a race in which every input was
// cancelled is itself cancelled.
//
// Race only observes its inputs: losing tasks keep running and are never
// cancelled by the race.
//
// If tasks is empty, the returned task completes with the zero value.
// Race panics if any element of tasks is nil.
func Race[T any](tasks ...*Task[T]) *Task[T] {
	var zero T
	if len(tasks) == 0 {
		return FromResult(zero)
	}
	for i, t := range tasks {
		if t == nil {
			panic(fmt.Sprintf("join: Race task[%d] must not be nil", i))
		}
	}

	out := newTask[T]()

	// Buffered so every watcher can report without blocking after the
	// winner is picked up.
	settled := make(chan int, len(tasks))
	for i, t := range tasks {
		go func() {
			<-t.Done()
			settled <- i
		}()
	}

	go func() {
		errs := make([]error, len(tasks))
		for range tasks {
			i := <-settled
			if err := tasks[i].failure(); err != nil {
				errs[i] = err
				continue
			}
			out.complete(tasks[i].val)
			return
		}
		// Every input failed; report them by input position, not by
		// settlement order.
		out.fail(Aggregate(errs...))
	}()

	return out
}
