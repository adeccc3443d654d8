package bleed

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// encodeQuality is the quality setting for lossy output formats. It matches
// the print-oriented default the tool has always used for JPEG and WebP.
const encodeQuality = 95

// DecodeError reports that an input file could not be opened or decoded.
type DecodeError struct {
	// Path is the input file that failed.
	Path string

	// Err is the underlying open or decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that an output file could not be created or encoded.
type EncodeError struct {
	// Path is the output file that failed.
	Path string

	// Err is the underlying create or encode failure.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// OutputPath returns the path Process writes for inputPath under outputDir.
// Outputs are flat: the input's base name, extension included, joined onto
// the output directory.
func OutputPath(inputPath, outputDir string) string {
	return filepath.Join(outputDir, filepath.Base(inputPath))
}

// Process applies bleed extension to a single image file.
//
// The input is decoded, extended by Extend, and encoded to outputDir under
// its own base name with the extension (and therefore the format)
// preserved. The extended image is fully built in memory before the output
// file is created, so a decode failure never leaves a stray output behind.
//
// Parameters:
//   - inputPath: path of the image to process. PNG, JPEG, GIF, BMP, TIFF,
//     and WebP files are decodable.
//   - outputDir: directory that receives the processed copy. Must exist.
//
// Returns:
//   - nil on success.
//   - *DecodeError if the input cannot be opened or decoded.
//   - *EncodeError if the output cannot be created, encoded, or written.
func Process(inputPath, outputDir string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return &DecodeError{Path: inputPath, Err: err}
	}

	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return &DecodeError{Path: inputPath, Err: err}
	}

	extended := Extend(src)

	outputPath := OutputPath(inputPath, outputDir)
	if err := encode(extended, outputPath); err != nil {
		return &EncodeError{Path: outputPath, Err: err}
	}
	return nil
}

// encode writes img to path in the format named by the path's extension.
// The imaging package covers every supported format except WebP, which has
// its own encoder.
func encode(img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := webp.Encode(f, img, &webp.EncoderOptions{Quality: encodeQuality}); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode webp: %w", err)
		}
		return f.Close()
	}

	return imaging.Save(img, path,
		imaging.JPEGQuality(encodeQuality),
		imaging.PNGCompressionLevel(png.BestCompression))
}
