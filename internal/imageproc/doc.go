// Package imageproc holds the texture transforms used during conversion.
//
// Functions take and return *image.NRGBA with a zero origin. Flips and
// rotations that can work in place do so; everything else allocates a new
// image. Processor guards transforms of shared store entries so that each
// entry is transformed at most once per conversion.
package imageproc
