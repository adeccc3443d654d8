// Package demo generates a synthetic test card and runs it through bleed
// processing, leaving behind a side-by-side comparison of edge extension
// and the solid border approach it replaced.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/mpc-bleed/internal/bleed"
)

// Demo card geometry: a poker-card aspect ratio at screen resolution, big
// enough that the margins are clearly visible.
const (
	cardWidth   = 300
	cardHeight  = 400
	borderWidth = 10
)

var (
	cardWhite    = color.NRGBA{255, 255, 255, 255}
	borderBlue   = color.NRGBA{0, 0, 255, 255}
	borderGreen  = color.NRGBA{0, 128, 0, 255}
	borderRed    = color.NRGBA{255, 0, 0, 255}
	borderYellow = color.NRGBA{255, 255, 0, 255}
	contentGray  = color.NRGBA{211, 211, 211, 255}
	labelBlack   = color.NRGBA{0, 0, 0, 255}
)

// Info describes the files a demo run produced.
type Info struct {
	// CardPath is the generated test card.
	CardPath string `json:"card_path"`

	// ExtendedPath is the card processed with edge-extension bleed.
	ExtendedPath string `json:"extended_path"`

	// SolidPath is the card padded with a solid black border instead.
	SolidPath string `json:"solid_path"`

	// Width and Height are the test card's dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ExtendedWidth and ExtendedHeight are the processed card's dimensions.
	ExtendedWidth  int `json:"extended_width"`
	ExtendedHeight int `json:"extended_height"`

	// Margins are the per-edge bleed sizes applied.
	Margins bleed.Margins `json:"margins"`
}

// Card draws a synthetic test card: white, with a differently colored
// border on each edge and a label in the middle. The distinct border
// colors make it obvious which edge each bleed strip was copied from.
func Card(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Rect, cardWhite)

	fill(img, image.Rect(0, 0, width, borderWidth), borderBlue)
	fill(img, image.Rect(0, height-borderWidth, width, height), borderGreen)
	fill(img, image.Rect(0, 0, borderWidth, height), borderRed)
	fill(img, image.Rect(width-borderWidth, 0, width, height), borderYellow)

	inset := 3 * borderWidth
	fill(img, image.Rect(inset, inset, width-inset, height-inset), contentGray)

	drawLabel(img, "DEMO CARD", width/2, height/2)
	return img
}

// SolidBorder returns src pasted onto a black canvas of the extended size
// for src's dimensions. This is the old way of adding bleed, kept so a
// demo run can show both results next to each other.
func SolidBorder(src image.Image, m bleed.Margins) *image.NRGBA {
	img := bleed.Normalize(src)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	canvas := image.NewNRGBA(image.Rect(0, 0, w+m.Left+m.Right, h+m.Top+m.Bottom))
	fill(canvas, canvas.Rect, labelBlack)
	draw.Draw(canvas, image.Rect(m.Left, m.Top, m.Left+w, m.Top+h), img, image.Point{}, draw.Src)
	return canvas
}

// Run writes the demo files under dir: the test card, its edge-extended
// copy in a with-bleed subfolder, and a solid-border version for
// comparison. The folder is created if needed.
func Run(dir string) (*Info, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create demo folder: %w", err)
	}

	card := Card(cardWidth, cardHeight)
	cardPath := filepath.Join(dir, "demo_card.png")
	if err := imaging.Save(card, cardPath); err != nil {
		return nil, fmt.Errorf("failed to save demo card: %w", err)
	}

	outDir := filepath.Join(dir, "with-bleed")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}
	if err := bleed.Process(cardPath, outDir); err != nil {
		return nil, err
	}

	m := bleed.Calculate(cardWidth, cardHeight)
	solid := SolidBorder(card, m)
	solidPath := filepath.Join(dir, "demo_card_solid.png")
	if err := imaging.Save(solid, solidPath); err != nil {
		return nil, fmt.Errorf("failed to save solid border card: %w", err)
	}

	return &Info{
		CardPath:       cardPath,
		ExtendedPath:   bleed.OutputPath(cardPath, outDir),
		SolidPath:      solidPath,
		Width:          cardWidth,
		Height:         cardHeight,
		ExtendedWidth:  cardWidth + m.Left + m.Right,
		ExtendedHeight: cardHeight + m.Top + m.Bottom,
		Margins:        m,
	}, nil
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawLabel centers label on (cx, cy) using the built-in fixed-width face.
func drawLabel(img *image.NRGBA, label string, cx, cy int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelBlack),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - width/2,
		Y: fixed.I(cy + basicfont.Face7x13.Height/2 - basicfont.Face7x13.Descent),
	}
	d.DrawString(label)
}
