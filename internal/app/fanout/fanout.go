// Package fanout runs one function across a slice of items with bounded
// concurrency. The workflow uses it to hand each event to every notification
// sink at once, so a slow or broken sink never holds up the others.
package fanout

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

// Result is the outcome for the item at the same index.
type Result[R any] struct {
	Value   R
	Err     error
	Elapsed time.Duration // zero when the item never started
}

// PanicError is recorded in place of a result when fn panics for an item.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: panic: %v", e.Value)
}

// Run calls fn for every item using at most maxWorkers goroutines at a time
// (minimum 1) and returns results in input order once all have finished.
//
// Items still waiting for a worker when ctx ends are not started; their
// result carries ctx.Err(). Items already running are left to observe ctx
// themselves. A panic inside fn is caught and reported as a *PanicError for
// that item only.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			results[i] = call(ctx, item, fn)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v, Stack: debug.Stack()}}
		}
		res.Elapsed = time.Since(start)
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}

// Failed counts the results that carry an error.
func Failed[R any](results []Result[R]) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
