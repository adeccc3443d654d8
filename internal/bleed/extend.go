package bleed

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Normalize returns src as an opaque zero-origin NRGBA image.
//
// Any alpha channel is discarded rather than composited against a
// background: the color channels keep their stored values and every alpha
// byte is forced to fully opaque. Extend applies this normalization before
// building its canvas, and verification uses it to compare an original
// against processed output on equal terms.
func Normalize(src image.Image) *image.NRGBA {
	img := imaging.Clone(src)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}

// Extend returns src enlarged by the bleed margins for its dimensions, with
// each margin filled by replicating the nearest source edge pixels.
//
// The source is normalized via Normalize first, so the result is always
// opaque. A source small enough that both percentages truncate to zero
// comes back as a plain normalized copy.
//
// Returns:
//   - *image.NRGBA of size (width+left+right) x (height+top+bottom) holding
//     the normalized source at offset (left, top), the source's first and
//     last rows across the top and bottom strips, the source's first and
//     last columns down the side strips, and in each corner the adjacent
//     source corner pixel.
func Extend(src image.Image) *image.NRGBA {
	img := Normalize(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	m := Calculate(w, h)

	canvas := image.NewNRGBA(image.Rect(0, 0, w+m.Left+m.Right, h+m.Top+m.Bottom))
	draw.Draw(canvas, image.Rect(m.Left, m.Top, m.Left+w, m.Top+h), img, image.Point{}, draw.Src)

	// Top and bottom strips replicate the source's edge rows. These must be
	// in place before the side strips are filled.
	firstRow := img.Pix[:w*4]
	for y := 0; y < m.Top; y++ {
		off := canvas.PixOffset(m.Left, y)
		copy(canvas.Pix[off:off+w*4], firstRow)
	}
	lastOff := img.PixOffset(0, h-1)
	lastRow := img.Pix[lastOff : lastOff+w*4]
	for y := m.Top + h; y < m.Top+h+m.Bottom; y++ {
		off := canvas.PixOffset(m.Left, y)
		copy(canvas.Pix[off:off+w*4], lastRow)
	}

	// Side strips replicate the canvas columns at the source's outermost
	// edges down the full canvas height. Within the top and bottom strips
	// those columns already hold edge-row pixels, so every corner picks up
	// the adjacent source corner pixel without corner-specific code.
	if m.Left > 0 || m.Right > 0 {
		cw := canvas.Rect.Dx()
		ch := canvas.Rect.Dy()
		for y := 0; y < ch; y++ {
			off := canvas.PixOffset(0, y)
			row := canvas.Pix[off : off+cw*4]
			leftEdge := row[m.Left*4 : m.Left*4+4]
			for x := 0; x < m.Left; x++ {
				copy(row[x*4:x*4+4], leftEdge)
			}
			rightEdge := row[(m.Left+w-1)*4 : (m.Left+w)*4]
			for x := m.Left + w; x < cw; x++ {
				copy(row[x*4:x*4+4], rightEdge)
			}
		}
	}

	return canvas
}
