package pairwise

import (
	"runtime"
	"sync"

	"github.com/h2co3/swpara/internal/align"
	"github.com/h2co3/swpara/internal/dihedral"
)

// AllPairsParallel computes the same Results as AllPairs, but partitions the
// N-1 vertical rows across a pool of goroutines. Each worker owns its own
// align.AlignOne call stack — the engine keeps no state across calls — so
// rows never share mutable data and the result is written into a
// preallocated Results slice at disjoint indices, one per row. This makes
// the output byte-for-byte identical to the sequential path regardless of
// numWorkers or scheduling order (see the determinism property in the
// package's test suite).
//
// numWorkers <= 0 selects runtime.GOMAXPROCS(0). Rows are handed out as a
// single shared counter so that rows of very different cost (a long
// sequence compared against many others) do not strand idle workers.
func AllPairsParallel(set *dihedral.SequenceSet, params dihedral.ScoringParams, numWorkers int) Results {
	n := set.N()
	if n < 2 {
		return nil
	}

	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > n-1 {
		numWorkers = n - 1
	}

	offsets := set.Offsets()
	results := make(Results, n-1)

	var next int32Counter
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := next.next(n - 1)
				if i < 0 {
					return
				}
				ver := seqAt(set, offsets, i)
				row := make([]dihedral.Score, n-1-i)
				for k, j := 0, i+1; j < n; k, j = k+1, j+1 {
					row[k] = align.AlignOne(ver, seqAt(set, offsets, j), params, k == 0)
				}
				results[i] = row
			}
		}()
	}
	wg.Wait()

	return results
}

// int32Counter hands out strictly increasing row indices to workers, one at
// a time, until limit is reached.
type int32Counter struct {
	mu  sync.Mutex
	cur int
}

func (c *int32Counter) next(limit int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur >= limit {
		return -1
	}
	i := c.cur
	c.cur++
	return i
}
