package pipeline

import "math"

// NumberOfPixels returns the pixel count per axis of the largest square
// inscribed in a circular region of the given radius, at the given bin
// width in degrees. The value is floored, so a very small region or a very
// coarse binning can undershoot the region slightly.
func NumberOfPixels(radius, binSize float64) int {
	return int(math.Floor(2 * radius / math.Sqrt2 / binSize))
}
