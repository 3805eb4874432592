package join

// Void is the result type of a task that produces no value.
// A no-result task is simply a *Task[Void].
type Void struct{}

// Pair holds the results of a two-task join, in input order.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Triple holds the results of a three-task join, in input order.
type Triple[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Quad holds the results of a four-task join, in input order.
type Quad[T1, T2, T3, T4 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
}
