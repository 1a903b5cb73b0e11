// Package parallel provides synchronous bulk-parallel iteration utilities.
//
// Every For* function visits each index tuple exactly once and does not
// return until all tuples have been processed, so callers get a strict
// happens-before relationship between the call returning and every write
// performed by the body.
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
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// For2D executes f(i0, i1) over the rectangle [0,n0) x [0,n1).
// The iteration space is flattened so the chunking sees one range.
func For2D(n0, n1 int, f func(i0, i1 int), cfg Config) {
	For(n0*n1, func(k int) {
		f(k/n1, k%n1)
	}, cfg)
}

// For3D executes f(i0, i1, i2) over [0,n0) x [0,n1) x [0,n2).
func For3D(n0, n1, n2 int, f func(i0, i1, i2 int), cfg Config) {
	For(n0*n1*n2, func(k int) {
		i2 := k % n2
		k /= n2
		f(k/n1, k%n1, i2)
	}, cfg)
}

// For4D executes f over a four-dimensional index space.
func For4D(n0, n1, n2, n3 int, f func(i0, i1, i2, i3 int), cfg Config) {
	For(n0*n1*n2*n3, func(k int) {
		i3 := k % n3
		k /= n3
		i2 := k % n2
		k /= n2
		f(k/n1, k%n1, i2, i3)
	}, cfg)
}

// For5D executes f over a five-dimensional index space.
func For5D(n0, n1, n2, n3, n4 int, f func(i0, i1, i2, i3, i4 int), cfg Config) {
	For(n0*n1*n2*n3*n4, func(k int) {
		i4 := k % n4
		k /= n4
		i3 := k % n3
		k /= n3
		i2 := k % n2
		k /= n2
		f(k/n1, k%n1, i2, i3, i4)
	}, cfg)
}
