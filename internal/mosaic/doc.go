// Package mosaic implements the color matching core of the pipeline.
//
// The work splits into three stages. UniqueColors deduplicates a pixel
// grid into its distinct colors. MapColors matches each distinct color to
// its perceptually nearest palette entry, fanning the work out over a pool
// of goroutines: matching U colors against P palette entries costs O(U*P)
// CIEDE2000 evaluations and every color is independent, so the set is cut
// into contiguous batches and the disjoint partial results are merged as
// they complete. Assemble then applies the finished lookup table back over
// the full grid and derives the usage histogram.
//
// The palette is shared read-only by all workers; no stage mutates it.
// All three stages are deterministic for a given grid and palette,
// including the batch partitioning and tie-breaking, so a run with one
// worker and a run with many produce identical output.
package mosaic
