// Package colorspace provides the color math for the mosaic pipeline.
//
// It converts between 8-bit sRGB and CIE L*a*b* (D65 reference white) and
// computes CIEDE2000 perceptual color differences. Both operations delegate
// to go-colorful, which implements the textbook formulas; the types here
// exist so the rest of the pipeline can pass colors around as small
// comparable values and use them as map keys.
//
// # Why Lab and CIEDE2000
//
// Euclidean distance in RGB does not track human perception: equal numeric
// steps look very different in the dark blues than in the mid greens.
// Matching in Lab with CIEDE2000 picks the palette color a viewer would
// call closest, which matters when the palette is as small as the set of
// brick colors currently in production.
package colorspace
