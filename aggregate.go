package join

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Canceled is the payload-free error a cancelled task fails with.
// It is distinct from a genuine failure: callers use [IsCanceled] to tell
// "the operation was cancelled" from "the operation broke".
var Canceled = errors.New("join: task canceled")

// IsCanceled reports whether err represents cooperative cancellation.
// Both the package sentinel [Canceled] and [context.Canceled] count, at any
// depth of wrapping.
func IsCanceled(err error) bool {
	return errors.Is(err, Canceled) || errors.Is(err, context.Canceled)
}

// AggregateError is an ordered collection of task failures raised together
// by one join. It never nests: constructing an aggregate from errors that
// are themselves aggregates splices their members in, so inspecting Errors
// never requires recursion.
//
// The contained errors are the original failure objects, carried by
// reference, so wrapped context (for example a [*PanicError] stack trace)
// survives aggregation intact.
type AggregateError struct {
	Errors []error
}

// Error returns a summary line followed by each underlying failure.
func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d task(s) failed", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying failures, making AggregateError compatible
// with errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// IsAggregate reports whether err (or any error in its chain) is
// a [*AggregateError].
func IsAggregate(err error) bool {
	if err == nil {
		return false
	}
	var ae *AggregateError
	return errors.As(err, &ae)
}

// AsAggregate wraps err into an aggregate of one, unless err already is
// a [*AggregateError], in which case it is returned unchanged. Aggregating
// an aggregate never double-wraps.
//
// AsAggregate panics if err is nil.
func AsAggregate(err error) *AggregateError {
	if err == nil {
		panic("join: AsAggregate called with nil error")
	}
	if ae, ok := err.(*AggregateError); ok {
		return ae
	}
	return &AggregateError{Errors: []error{err}}
}

// FailuresOf returns the individual failures behind err: the member list if
// err is a [*AggregateError], a single-element list otherwise, nil if err
// is nil.
func FailuresOf(err error) []error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AggregateError); ok {
		return ae.Errors
	}
	return []error{err}
}

// Aggregate reduces the failures collected from one group of jointly awaited
// tasks to the single error the join raises. Nil entries are skipped.
//
// The policy, in order:
//
//  1. No failures: nil.
//  2. Members that are themselves a [*AggregateError] are flattened one
//     level, splicing their failures in place.
//  3. Every failure is a cancellation: the first one is returned unchanged.
//     A pure cancellation is reported as cancellation, not as an
//     aggregate-of-one.
//  4. Otherwise cancellations are dropped and the remaining failures are
//     returned as a [*AggregateError], preserving input order. A cancellation
//     alongside a real failure is noise; the real failure is the signal.
func Aggregate(errs ...error) error {
	flat := flatten(errs)
	if len(flat) == 0 {
		return nil
	}

	failures := make([]error, 0, len(flat))
	var firstCanceled error
	for _, err := range flat {
		if IsCanceled(err) {
			if firstCanceled == nil {
				firstCanceled = err
			}
			continue
		}
		failures = append(failures, err)
	}

	if len(failures) == 0 {
		return firstCanceled
	}
	return &AggregateError{Errors: failures}
}

// flatten drops nil entries and splices aggregate members one level deep.
// Aggregates built by this package never nest, so one level is enough.
func flatten(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		if ae, ok := err.(*AggregateError); ok {
			out = append(out, ae.Errors...)
			continue
		}
		out = append(out, err)
	}
	return out
}
