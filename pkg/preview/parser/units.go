// Package parser reads workbooks and renders bounded HTML previews of their worksheets.
package parser

import "math"

// PixelsPerPoint is the scale used to turn a font size in points into
// the pixel size emitted in preview markup.
const PixelsPerPoint = 0.75

// PointsToPixels converts a font size in points to display pixels, rounded to the nearest integer.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt * PixelsPerPoint))
}
