package join

import (
	"errors"
	"slices"
	"testing"
)

func TestRace_FirstSuccessWins(t *testing.T) {
	c1 := NewCompletion[int]()
	c2 := NewCompletion[int]()

	r := Race(c1.Task(), c2.Task())

	c2.Complete(20)

	v, err := r.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v, want nil", err)
	}
	if v != 20 {
		t.Errorf("Wait() = %d, want 20", v)
	}

	// The losing input keeps running; the race never touches it.
	if c1.Task().Terminal() {
		t.Error("losing input was settled by the race")
	}
	c1.Complete(10)
}

func TestRace_SkipsFailuresUntilSuccess(t *testing.T) {
	c1 := NewCompletion[int]()
	c2 := NewCompletion[int]()

	r := Race(c1.Task(), c2.Task())

	c1.Fail(errors.New("boom"))
	if r.Terminal() {
		t.Fatal("race settled on a failure while an input was still pending")
	}

	c2.Complete(2)
	if v, err := r.Wait(); v != 2 || err != nil {
		t.Errorf("Wait() = (%d, %v), want (2, nil)", v, err)
	}
}

func TestRace_AllFail(t *testing.T) {
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	_, err := Race(FromError[int](e1), FromError[int](e2)).Wait()

	ae, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("Wait() error = %T (%v), want *AggregateError", err, err)
	}
	if !slices.Equal(ae.Errors, []error{e1, e2}) {
		t.Errorf("aggregate members = %v, want [e1 e2] in input order", ae.Errors)
	}
}

func TestRace_AllCancelled(t *testing.T) {
	_, err := Race(FromCanceled[int](), FromCanceled[int]()).Wait()
	if !IsCanceled(err) {
		t.Errorf("Wait() error = %v, want cancellation", err)
	}
}

func TestRace_Empty(t *testing.T) {
	v, err := Race[int]().Wait()
	if v != 0 || err != nil {
		t.Errorf("Wait() = (%d, %v), want (0, nil)", v, err)
	}
}

func TestRace_NilTaskPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Race(nil) did not panic")
		}
	}()
	Race(FromResult(1), nil)
}
