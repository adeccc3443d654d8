package bleed

// Bleed percentages for standard card print stock. A 2.72" x 3.70" print
// area around a 2.48" x 3.46" safe zone leaves 0.12" of bleed per edge,
// which is 4.84% of the width and 3.47% of the height.
const (
	// HorizontalPercent is the bleed added to the left and right edges,
	// as a percentage of the image width.
	HorizontalPercent = 4.84

	// VerticalPercent is the bleed added to the top and bottom edges,
	// as a percentage of the image height.
	VerticalPercent = 3.47
)

// Margins holds the bleed size in pixels for each edge of an image.
type Margins struct {
	// Top is the number of pixel rows added above the image.
	Top int `json:"top"`

	// Bottom is the number of pixel rows added below the image.
	Bottom int `json:"bottom"`

	// Left is the number of pixel columns added to the left of the image.
	Left int `json:"left"`

	// Right is the number of pixel columns added to the right of the image.
	Right int `json:"right"`
}

// Calculate returns the bleed margins for an image of the given dimensions.
//
// Parameters:
//   - width: image width in pixels. Must be positive.
//   - height: image height in pixels. Must be positive.
//
// Returns:
//   - Margins with top/bottom set to 3.47% of the height and left/right
//     set to 4.84% of the width, each truncated to whole pixels.
//
// Truncation means small images can receive zero margin on one or both
// axes: any width below 21 pixels truncates to zero horizontal bleed, and
// any height below 29 pixels truncates to zero vertical bleed.
func Calculate(width, height int) Margins {
	horizontal := int(float64(width) * HorizontalPercent / 100)
	vertical := int(float64(height) * VerticalPercent / 100)

	return Margins{
		Top:    vertical,
		Bottom: vertical,
		Left:   horizontal,
		Right:  horizontal,
	}
}
