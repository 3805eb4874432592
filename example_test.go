package join_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/baxromumarov/join"
)

func ExampleAll2() {
	count := join.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 3, nil
	})
	name := join.Go(context.Background(), func(ctx context.Context) (string, error) {
		return "widgets", nil
	})

	both, err := join.All2(count, name).Wait()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d %s\n", both.First, both.Second)
	// Output: 3 widgets
}

func ExampleAggregate() {
	e := errors.New("disk full")

	// A cancellation next to a genuine failure is dropped; the failure is
	// the actionable signal.
	err := join.Aggregate(join.Canceled, e)

	for _, f := range join.FailuresOf(err) {
		fmt.Println(f)
	}
	// Output: disk full
}

func ExampleAll() {
	ok := join.Completed()
	bad := join.FromError[join.Void](errors.New("upload failed"))

	_, err := join.All(ok, bad).Wait()

	var ae *join.AggregateError
	if errors.As(err, &ae) {
		fmt.Println(len(ae.Errors), "failure:", ae.Errors[0])
	}
	// Output: 1 failure: upload failed
}

func ExampleNewCompletion() {
	c := join.NewCompletion[string]()
	task := c.Task()

	// Some external mechanism settles the task later.
	go c.Complete("done")

	v, _ := task.Wait()
	fmt.Println(v)
	// Output: done
}

func ExampleMap() {
	squares, err := join.Map(context.Background(), []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	}).Wait()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(squares)
	// Output: [1 4 9]
}
