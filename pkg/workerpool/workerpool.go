// Package workerpool provides bounded concurrent processing of slices.
package workerpool

import (
	"context"
	"sync"
)

type task[T any] struct {
	idx  int
	item T
}

// Process runs process for every element of items on at most workerCount goroutines,
// passing each element's position so callers can fill result slots without locking.
// The first error cancels the remaining work and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(ctx context.Context, idx int, item T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan task[T], workerCount)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case tk, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, tk.idx, tk.item); err != nil {
						errOnce.Do(func() {
							firstErr = err
						})
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for idx, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task[T]{idx: idx, item: item}:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
