// Package imaging provides the image I/O glue around the matching core.
//
// It loads and decodes the source photo, resizes it to the requested piece
// grid (Lanczos), bounds its distinct colors by median-cut quantization,
// converts between image.Image and the plain RGB pixel grids the core
// operates on, and writes the finished mosaics back out as PNG. The
// upscaled rendition uses nearest-neighbor resampling so each piece stays
// a crisp solid block at photo resolution.
//
// Everything here is thin glue over external collaborators (disintegration
// imaging, bild, gogif, stdlib image); the package contains no matching
// logic of its own.
package imaging
