// Package pipeline wires the mosaic stages together: load photo, build
// palette, resize to the piece grid, quantize, match, assemble, and write
// the output images and usage report. It owns the error policy of a run:
// every failure is fatal, nothing is retried, and no output file is
// written unless the whole run succeeded.
package pipeline
