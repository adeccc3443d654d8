// Package verify checks processed card images against the originals they
// were extended from.
//
// Given an original and its extended counterpart, verification recomputes
// the expected bleed geometry from the original's dimensions and confirms
// that the output has the right size, that the original survives intact in
// the center, that each margin strip repeats the adjacent source edge, and
// that the corners hold the source corner pixels.
//
// Pixel comparisons are perceptual: colors are compared by their distance
// in CIE-Lab space, which lets JPEG and WebP outputs pass despite small
// re-compression noise while still catching real defects. A tolerance of
// zero demands byte-identical colors and is appropriate for lossless
// formats.
package verify
