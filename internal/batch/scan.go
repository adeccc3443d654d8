package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// imageExtensions is the set of file extensions discovery recognizes,
// lowercased. GIF is deliberately absent: animated images don't round-trip
// through single-frame processing, so they are left alone.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// FindImages returns every image file under root, searched recursively.
//
// A file counts as an image when its extension, compared case-insensitively,
// is one of .jpg, .jpeg, .png, .bmp, .tiff, .tif, or .webp. The walk is
// lexical, so results come back in a stable order for a given tree.
//
// Returns:
//   - the matching paths, root-relative to whatever form root was given in
//   - an error if root cannot be walked
func FindImages(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return paths, nil
}
