package modrinth

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxParallel is the default worker pool size for RunAll. The pool
// bounds in-flight requests independently of the server's rate limit
// window; the rate-limit tracker handles the rest.
const DefaultMaxParallel = 6

// WorkItem is one independent unit of remote work. Items must not share
// mutable state with each other; RunAll assumes their independence.
type WorkItem[T any] func() (T, error)

// Result is the outcome of one work item. Exactly one of Value and Err is
// meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// RunAll executes all items concurrently on a worker pool of maxParallel
// goroutines and returns one Result per item, positionally aligned with
// the input regardless of completion order.
//
// A failing item never cancels the others; every item runs to completion
// (or records the context error if ctx is already done when it is picked
// up). When any item failed, the first failure in input order is also
// returned as the batch error for callers that only care whether the batch
// as a whole succeeded. Per-item detail is always available in the
// returned slice.
func RunAll[T any](ctx context.Context, items []WorkItem[T], maxParallel int) ([]Result[T], error) {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	results := make([]Result[T], len(items))

	var g errgroup.Group
	g.SetLimit(maxParallel)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[T]{Err: err}
				return nil
			}
			value, err := item()
			results[i] = Result[T]{Value: value, Err: err}
			return nil // per-item failures are captured, not propagated
		})
	}

	// Never returns an error; every goroutine above returns nil.
	_ = g.Wait()

	for _, r := range results {
		if r.Err != nil {
			return results, r.Err
		}
	}
	return results, nil
}
