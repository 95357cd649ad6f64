// Package parallel runs independent tasks concurrently and joins all of them.
package parallel

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTimeout = goerr.New("task timed out")
	ErrPanic   = goerr.New("task panicked")
)

type Result[T any] struct {
	Value T
	Err   error
}

// Map runs fn for every item concurrently and returns the results in input
// order. Each task gets its own deadline; a task that does not return by its
// deadline is abandoned and reported as ErrTimeout, so one hung call cannot
// stall the join. A panic in fn is converted into ErrPanic. With a timeout of
// zero or less tasks have no deadline and are always awaited.
func Map[In, Out any](ctx context.Context, items []In, timeout time.Duration, fn func(ctx context.Context, item In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(items))

	var eg errgroup.Group
	for i, item := range items {
		eg.Go(func() error {
			v, err := run(ctx, timeout, func(ctx context.Context) (Out, error) {
				return fn(ctx, item)
			})
			results[i] = Result[Out]{Value: v, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// Run executes tasks concurrently and returns their errors in input order.
func Run(ctx context.Context, timeout time.Duration, tasks ...func(ctx context.Context) error) []error {
	results := Map(ctx, tasks, timeout, func(ctx context.Context, task func(ctx context.Context) error) (struct{}, error) {
		return struct{}{}, task(ctx)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}

func run[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return call(ctx, fn)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan Result[T], 1)
	go func() {
		v, err := call(ctx, fn)
		done <- Result[T]{Value: v, Err: err}
	}()

	select {
	case r := <-done:
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		if ctx.Err() == context.DeadlineExceeded {
			return zero, goerr.Wrap(ErrTimeout, "task did not finish", goerr.V("timeout", timeout))
		}
		return zero, goerr.Wrap(ctx.Err(), "task cancelled")
	}
}

func call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.Wrap(ErrPanic, fmt.Sprintf("%v", r))
		}
	}()
	return fn(ctx)
}
