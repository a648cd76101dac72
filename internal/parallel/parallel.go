// Package parallel provides fork-join helpers for the snail training engine.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunkSize returns the number of items handled by one chunk of [0, n).
func (c Config) chunkSize(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < c.MinChunkSize {
		return max(n, 1)
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize, 1)
}

// NumChunks reports how many chunks ForChunks will split [0, n) into.
func NumChunks(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}
	size := cfg.chunkSize(n)
	return (n + size - 1) / size
}

// ForChunks splits [0, n) into NumChunks contiguous ranges and calls
// f(chunk, start, end) once per range. Chunks run concurrently unless the
// config disables parallelism or n is below MinChunkSize.
//
// Chunk indices are stable for a given (n, cfg), so callers can write
// per-chunk partial results into a slice and reduce them in order.
func ForChunks(n int, cfg Config, f func(chunk, start, end int)) {
	chunks := NumChunks(n, cfg)
	if chunks == 0 {
		return
	}
	size := cfg.chunkSize(n)
	if chunks == 1 {
		f(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		start := c * size
		end := min(start+size, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			f(c, s, e)
		}(c, start, end)
	}
	wg.Wait()
}

// MapReduce runs mapper over every chunk of [0, n) and folds the partial
// results with reduce in chunk order. The fold is sequential, so the result
// is deterministic for a fixed config even when chunks run concurrently.
// It returns the zero value of T when n is 0.
func MapReduce[T any](n int, cfg Config, mapper func(start, end int) T, reduce func(acc, part T) T) T {
	var zero T
	chunks := NumChunks(n, cfg)
	if chunks == 0 {
		return zero
	}
	parts := make([]T, chunks)
	ForChunks(n, cfg, func(chunk, start, end int) {
		parts[chunk] = mapper(start, end)
	})
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = reduce(acc, p)
	}
	return acc
}
