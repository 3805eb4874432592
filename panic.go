package join

import (
	"fmt"
	"runtime"
)

// PanicError is the failure a task settles with when its function panics.
// It carries the recovered value together with the goroutine stack captured
// at the point of the panic, so the origin survives aggregation and is never
// erased by a re-raise.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns the panic value followed by the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// 8 KiB covers most stack traces. runtime.Stack truncates gracefully
	// if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
