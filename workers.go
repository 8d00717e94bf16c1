package binhist

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// span is a contiguous half-open index range [lo, hi) owned by one worker.
type span struct {
	lo, hi int
}

// split divides [0, n) into at most workers contiguous spans.
//
// The first n%workers spans are one element longer, empty spans are not produced.
func split(n, workers int) []span {
	if n <= 0 {
		return nil
	}

	if workers < 1 {
		workers = 1
	}

	if workers > n {
		workers = n
	}

	size := n / workers
	rem := n % workers
	spans := make([]span, 0, workers)

	lo := 0

	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}

		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}

	return spans
}

// fanOut runs fn for every span of [0, n) concurrently and waits for all of them.
//
// The first error cancels ctx passed to the rest of the workers and is returned
// once every worker has exited.
func fanOut(n, workers int, fn func(ctx context.Context, w int, s span) error) error {
	g, ctx := errgroup.WithContext(context.Background())

	for w, s := range split(n, workers) {
		w, s := w, s

		g.Go(func() error {
			return fn(ctx, w, s)
		})
	}

	return g.Wait()
}
