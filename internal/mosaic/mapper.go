package mosaic

import (
	"context"
	"runtime"
	"sync"

	"github.com/ironsheep/brick-mosaic/internal/colorspace"
	"github.com/ironsheep/brick-mosaic/internal/palette"
)

// batchesPerWorker oversubscribes the batch count relative to the worker
// count so a slow batch cannot leave workers idle at the tail of the run.
const batchesPerWorker = 4

// MapOptions tunes the parallel mapping fan-out.
type MapOptions struct {
	// Workers is the number of matching goroutines. Zero or negative
	// means runtime.NumCPU().
	Workers int

	// Progress, if non-nil, is called after each batch is merged with the
	// number of completed batches and the total batch count. It is invoked
	// from a single goroutine and is observational only: it must not
	// influence results.
	Progress func(done, total int)
}

// MapColors matches every unique color against the palette and returns the
// complete color lookup table.
//
// The unique set is partitioned into contiguous batches of size
// max(1, U/(4*workers)). Each batch is matched on a worker goroutine with
// read-only access to the shared palette, and the disjoint partial tables
// are merged as they arrive; because batches partition the input, the merge
// is a plain union and the final table is independent of completion order.
// The table has exactly one key per input color, whatever the worker count.
//
// Cancelling the context stops further dispatch, waits for in-flight
// batches and returns the context error; partial results are discarded.
func MapColors(ctx context.Context, unique []colorspace.RGB, pal *palette.Palette, opts MapOptions) (map[colorspace.RGB]colorspace.RGB, error) {
	if pal.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}
	if len(unique) == 0 {
		return map[colorspace.RGB]colorspace.RGB{}, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	batchSize := len(unique) / (batchesPerWorker * workers)
	if batchSize < 1 {
		batchSize = 1
	}
	var batches [][]colorspace.RGB
	for start := 0; start < len(unique); start += batchSize {
		end := start + batchSize
		if end > len(unique) {
			end = len(unique)
		}
		batches = append(batches, unique[start:end])
	}

	type partial struct {
		table map[colorspace.RGB]colorspace.RGB
		err   error
	}

	jobs := make(chan []colorspace.RGB)
	results := make(chan partial, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				table := make(map[colorspace.RGB]colorspace.RGB, len(batch))
				var err error
				for _, c := range batch {
					entry, matchErr := Closest(c, pal)
					if matchErr != nil {
						err = matchErr
						break
					}
					table[c] = entry.RGB
				}
				results <- partial{table: table, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, batch := range batches {
			select {
			case jobs <- batch:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	table := make(map[colorspace.RGB]colorspace.RGB, len(unique))
	done := 0
	var firstErr error
	for p := range results {
		if p.err != nil && firstErr == nil {
			firstErr = p.err
			continue
		}
		for k, v := range p.table {
			table[k] = v
		}
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(batches))
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
