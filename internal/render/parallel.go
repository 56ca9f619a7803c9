package render

import (
	"runtime"
	"sync"
)

// parallelRows executes fn over row ranges [0, rows) using the given number
// of workers (0 means GOMAXPROCS). Small grids run inline.
func parallelRows(rows, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || rows < workers*2 {
		fn(0, rows)
		return
	}
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > rows {
			end = rows
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
