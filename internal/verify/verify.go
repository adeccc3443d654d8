package verify

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/mpc-bleed/internal/batch"
	"github.com/ironsheep/mpc-bleed/internal/bleed"
)

// DefaultTolerance is a per-pixel perceptual distance that absorbs typical
// JPEG and WebP re-compression noise without letting structural defects
// through.
const DefaultTolerance = 0.02

// Check is one verified property of an extended image.
type Check struct {
	// Name identifies the property, e.g. "dimensions" or "left strip".
	Name string `json:"name"`

	// Passed reports whether the property held.
	Passed bool `json:"passed"`

	// Detail describes the first violation found, empty when Passed.
	Detail string `json:"detail,omitempty"`
}

// Report collects the checks for one original/extended pair.
type Report struct {
	// Original is the path of the source image, when known.
	Original string `json:"original,omitempty"`

	// Extended is the path of the processed image, when known.
	Extended string `json:"extended,omitempty"`

	// Tolerance is the perceptual distance allowed per compared pixel.
	Tolerance float64 `json:"tolerance"`

	// Checks holds the individual results.
	Checks []Check `json:"checks"`

	// Passed is true when every check passed.
	Passed bool `json:"passed"`
}

func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Passed = false
	}
}

// Images verifies an extended image against its original.
//
// Both images are normalized the same way processing normalizes its input,
// so alpha channels and exotic decode types don't produce spurious
// mismatches. If the dimensions don't match the expected geometry the
// report carries that single failed check, since no other property can be
// located on a mis-sized canvas.
func Images(original, extended image.Image, tolerance float64) *Report {
	r := &Report{Tolerance: tolerance, Passed: true}

	src := bleed.Normalize(original)
	out := bleed.Normalize(extended)
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	m := bleed.Calculate(w, h)

	wantW := w + m.Left + m.Right
	wantH := h + m.Top + m.Bottom
	if out.Rect.Dx() != wantW || out.Rect.Dy() != wantH {
		r.add(Check{
			Name:   "dimensions",
			Detail: fmt.Sprintf("got %dx%d, want %dx%d", out.Rect.Dx(), out.Rect.Dy(), wantW, wantH),
		})
		return r
	}
	r.add(Check{Name: "dimensions", Passed: true})

	r.add(checkCenter(src, out, m, tolerance))
	for _, c := range checkStrips(src, out, m, tolerance) {
		r.add(c)
	}
	r.add(checkCorners(src, out, m, tolerance))

	return r
}

// File verifies the extended file at extendedPath against the original at
// originalPath.
func File(originalPath, extendedPath string, tolerance float64) (*Report, error) {
	original, err := imaging.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original: %w", err)
	}
	extended, err := imaging.Open(extendedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open extended: %w", err)
	}

	r := Images(original, extended, tolerance)
	r.Original = originalPath
	r.Extended = extendedPath
	return r, nil
}

// Dir verifies every image under inputDir against its counterpart in
// outputDir, pairing files the way batch processing writes them: flat, by
// base name. Missing or unreadable counterparts become failed reports
// rather than errors, so one bad pair doesn't hide the rest.
func Dir(inputDir, outputDir string, tolerance float64) ([]*Report, error) {
	paths, err := batch.FindImages(inputDir)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(paths))
	for _, path := range paths {
		extendedPath := bleed.OutputPath(path, outputDir)
		if _, err := os.Stat(extendedPath); err != nil {
			reports = append(reports, &Report{
				Original:  path,
				Extended:  extendedPath,
				Tolerance: tolerance,
				Checks:    []Check{{Name: "output exists", Detail: err.Error()}},
			})
			continue
		}

		r, err := File(path, extendedPath, tolerance)
		if err != nil {
			reports = append(reports, &Report{
				Original:  path,
				Extended:  extendedPath,
				Tolerance: tolerance,
				Checks:    []Check{{Name: "readable", Detail: err.Error()}},
			})
			continue
		}
		reports = append(reports, r)
	}

	return reports, nil
}

func checkCenter(src, out *image.NRGBA, m bleed.Margins, tol float64) Check {
	for _, y := range samplePositions(src.Rect.Dy(), 16) {
		for _, x := range samplePositions(src.Rect.Dx(), 16) {
			d := pixelDistance(src.NRGBAAt(x, y), out.NRGBAAt(x+m.Left, y+m.Top))
			if d > tol {
				return Check{
					Name:   "center",
					Detail: fmt.Sprintf("pixel (%d,%d) differs by %.4f", x, y, d),
				}
			}
		}
	}
	return Check{Name: "center", Passed: true}
}

// checkStrips verifies each margin strip that exists. The pair functions
// map a depth position into the margin (d) and a position along the strip
// (a) to the expected source pixel, the actual output pixel, and the output
// coordinates for reporting.
func checkStrips(src, out *image.NRGBA, m bleed.Margins, tol float64) []Check {
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	var checks []Check
	if m.Top > 0 {
		checks = append(checks, stripCheck("top strip", tol, m.Top, w,
			func(d, a int) (color.NRGBA, color.NRGBA, int, int) {
				return src.NRGBAAt(a, 0), out.NRGBAAt(a+m.Left, d), a + m.Left, d
			}))
	}
	if m.Bottom > 0 {
		checks = append(checks, stripCheck("bottom strip", tol, m.Bottom, w,
			func(d, a int) (color.NRGBA, color.NRGBA, int, int) {
				return src.NRGBAAt(a, h-1), out.NRGBAAt(a+m.Left, m.Top+h+d), a + m.Left, m.Top + h + d
			}))
	}
	if m.Left > 0 {
		checks = append(checks, stripCheck("left strip", tol, m.Left, h,
			func(d, a int) (color.NRGBA, color.NRGBA, int, int) {
				return src.NRGBAAt(0, a), out.NRGBAAt(d, a+m.Top), d, a + m.Top
			}))
	}
	if m.Right > 0 {
		checks = append(checks, stripCheck("right strip", tol, m.Right, h,
			func(d, a int) (color.NRGBA, color.NRGBA, int, int) {
				return src.NRGBAAt(w-1, a), out.NRGBAAt(m.Left+w+d, a+m.Top), m.Left + w + d, a + m.Top
			}))
	}

	return checks
}

func stripCheck(name string, tol float64, depth, length int, pair func(d, a int) (want, got color.NRGBA, ox, oy int)) Check {
	for _, d := range samplePositions(depth, 4) {
		for _, a := range samplePositions(length, 16) {
			want, got, ox, oy := pair(d, a)
			if dist := pixelDistance(want, got); dist > tol {
				return Check{
					Name:   name,
					Detail: fmt.Sprintf("pixel (%d,%d) differs by %.4f", ox, oy, dist),
				}
			}
		}
	}
	return Check{Name: name, Passed: true}
}

func checkCorners(src, out *image.NRGBA, m bleed.Margins, tol float64) Check {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	cw := out.Rect.Dx()
	ch := out.Rect.Dy()

	corners := []struct {
		region image.Rectangle
		want   color.NRGBA
	}{
		{image.Rect(0, 0, m.Left, m.Top), src.NRGBAAt(0, 0)},
		{image.Rect(m.Left+w, 0, cw, m.Top), src.NRGBAAt(w-1, 0)},
		{image.Rect(0, m.Top+h, m.Left, ch), src.NRGBAAt(0, h-1)},
		{image.Rect(m.Left+w, m.Top+h, cw, ch), src.NRGBAAt(w-1, h-1)},
	}

	for _, c := range corners {
		for _, y := range samplePositions(c.region.Dy(), 4) {
			for _, x := range samplePositions(c.region.Dx(), 4) {
				px := c.region.Min.X + x
				py := c.region.Min.Y + y
				if d := pixelDistance(c.want, out.NRGBAAt(px, py)); d > tol {
					return Check{
						Name:   "corners",
						Detail: fmt.Sprintf("pixel (%d,%d) differs by %.4f", px, py, d),
					}
				}
			}
		}
	}

	return Check{Name: "corners", Passed: true}
}

// pixelDistance is the perceptual distance between two opaque pixels in
// CIE-Lab space: 0 for identical colors, 1.0 roughly between black and
// white.
func pixelDistance(a, b color.NRGBA) float64 {
	if a == b {
		return 0
	}
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		return 1
	}
	return ca.DistanceLab(cb)
}

// samplePositions returns up to count evenly spaced indices in [0, n),
// always including both endpoints when they exist.
func samplePositions(n, count int) []int {
	if n <= 0 {
		return nil
	}
	if n <= count {
		pos := make([]int, n)
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	pos := make([]int, count)
	for i := range pos {
		pos[i] = i * (n - 1) / (count - 1)
	}
	return pos
}
