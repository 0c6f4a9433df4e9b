// Package workerpool fans work out to a bounded number of goroutines.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the remaining work, invokes onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	return run(ctx, workerCount, len(items), func(ctx context.Context, i int) error {
		return process(ctx, items[i])
	}, onCancel)
}

// Map applies fn to every item with bounded concurrency and returns the results in item order.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	err := run(ctx, workerCount, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func run(
	ctx context.Context,
	workerCount int,
	n int,
	process func(context.Context, int) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if workerCount > n {
		workerCount = n
	}
	if workerCount < 1 {
		workerCount = 1
	}

	tasks := make(chan int, workerCount)
	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, i); err != nil {
						fail(err)
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case tasks <- i:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
