// Package util implements generic helpers for concurrent work over slices.
package util

import (
	"context"
	"runtime"
	"sync"
)

// ConcurrentMapSlice applies mapFunc to every item concurrently, with at most
// as many workers as there are CPUs. The results keep the order of the items.
// If the context is cancelled, no more items are started and the context's
// error is returned.
func ConcurrentMapSlice[T any, R any](ctx context.Context, items []T, mapFunc func(T) R) ([]R, error) {
	var wg sync.WaitGroup

	results := make([]R, len(items))

	maxWorkers := runtime.NumCPU()
	semaphore := make(chan struct{}, maxWorkers)

loop:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break loop
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i] = mapFunc(item)
		}(i, item)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return results, nil
}
