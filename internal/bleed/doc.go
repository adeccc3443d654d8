// Package bleed implements edge-extension bleed margins for print card images.
//
// Print services such as MakePlayingCards trim each card slightly inside the
// printed area, so artwork must extend past the final cut line. This package
// enlarges a card image by a fixed percentage on each edge and fills the new
// margins by replicating the image's own edge pixels outward, which survives
// an imprecise cut far better than a solid border: wherever the blade lands,
// the margin matches the adjacent artwork.
//
// # Geometry
//
// Margins are derived from the image dimensions, never configured:
//   - Left and right: 4.84% of the width
//   - Top and bottom: 3.47% of the height
//
// Both values are truncated to whole pixels. For a 750x1050 card (the common
// 300 DPI poker size) this yields 36 pixels on every edge. Images small
// enough that a percentage truncates to zero get no margin on that axis.
//
// # Fill Order
//
// The margins are filled in a fixed order that makes the corners come out
// right without corner-specific code. The top and bottom strips are filled
// first, replicating the first and last rows of the source across the
// source's width. The left and right strips are then filled by replicating
// the leftmost and rightmost columns of the partially built canvas down its
// full height. Because those columns already contain the source edge rows in
// their top and bottom segments, each corner rectangle ends up holding the
// nearest source corner pixel.
//
// # Color Handling
//
// Sources are normalized to 8-bit RGB before extension. An alpha channel is
// discarded outright rather than composited against a background color, and
// every output image is fully opaque.
//
// # File Processing
//
// Process decodes a file, extends it, and encodes the result under the same
// base name in an output directory. PNG, JPEG, GIF, BMP, TIFF, and WebP
// inputs are decoded; output format follows the file extension, with JPEG
// and WebP written at quality 95 and PNG at maximum compression. Failures
// are reported as *DecodeError or *EncodeError so callers can tell a bad
// input from a failed write.
package bleed
