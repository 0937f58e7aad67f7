package codec

import (
	"runtime"
	"sync"
)

// parallelThreshold is the number of work units (pixels or output bytes)
// below which encode and decode stay on the calling goroutine.
var parallelThreshold = 1 << 16

// forEachStripe splits [0, n) into contiguous ranges and calls fn for each
// range. Ranges never overlap, so fn may write to its own slice region
// without locking.
func forEachStripe(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n < parallelThreshold {
		fn(0, n)
		return
	}

	workers := min(runtime.NumCPU(), n)
	if workers < 1 {
		workers = 1
	}
	perWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * perWorker
		if start >= n {
			break
		}
		end := min(start+perWorker, n)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
