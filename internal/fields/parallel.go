package fields

import (
	"runtime"
	"sync"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/scene"
)

// Batch is one concept generated on its own device.
type Batch struct {
	Concept catalog.ConceptID
	Graph   *scene.Subgraph
	Device  *scene.Tracker
}

// GenerateAll builds every concept in parallel. Each concept gets its own
// tracker, builder and random source, seeded from p.Seed plus the concept
// index, so workers share nothing.
func GenerateAll(p config.Params) []Batch {
	out := make([]Batch, catalog.NumConcepts)
	ParallelFor(int(catalog.NumConcepts), 1, func(start, end int) {
		for i := start; i < end; i++ {
			c := catalog.ConceptID(i)
			tr := scene.NewTracker()
			snap := p
			if snap.Seed != 0 {
				snap.Seed += int64(i)
			}
			gen, _ := Lookup(c)
			out[i] = Batch{Concept: c, Graph: gen(NewEnv(tr, snap.Seed), snap), Device: tr}
		}
	})
	return out
}

// ParallelFor executes fn over [0, n) split into contiguous chunks of at
// least minChunk, one goroutine per chunk.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
