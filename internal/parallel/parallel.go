// Package parallel splits row-wise batch work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled     bool // Whether parallel execution is enabled.
	NumWorkers  int  // Upper bound on goroutines per call.
	MinElements int  // Batches smaller than this run sequentially.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:     n > 1,
		NumWorkers:  n,
		MinElements: 4096,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// Rows calls f(r) once for every row r in [0, rows) of a rows×cols batch.
// Each row is handled by exactly one goroutine, so f may write to its own
// row without synchronisation.
func Rows(rows, cols int, f func(r int), cfg Config) {
	workers := min(cfg.NumWorkers, rows)
	if !cfg.Enabled || workers < 2 || rows*cols < cfg.MinElements {
		for r := 0; r < rows; r++ {
			f(r)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for r := s; r < e; r++ {
				f(r)
			}
		}(start, end)
	}
	wg.Wait()
}

// Elements calls f(start, end) over disjoint ranges covering [0, n).
func Elements(n int, f func(start, end int), cfg Config) {
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 2 || n < cfg.MinElements {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
