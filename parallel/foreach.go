// Package parallel contains the bounded fan-out loops used by batched inference.
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// ForEachBatch splits [0, length) into consecutive batches of at most batch
// elements and runs body(lo, hi) for each one, at most limit at a time.
// Batches never overlap, so bodies writing out[lo:hi] need no locking.
func ForEachBatch(length, batch, limit int, body func(lo, hi int)) {
	if batch <= 0 {
		batch = 1
	}
	if length <= 0 {
		return
	}
	batches := (length + batch - 1) / batch
	ForEach(batches, limit, func(b int) {
		lo := b * batch
		hi := lo + batch
		if hi > length {
			hi = length
		}
		body(lo, hi)
	})
}
