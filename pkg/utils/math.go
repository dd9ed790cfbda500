// pkg/utils/math.go
package utils

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Direction returns the unit vector from (x, y) toward (tx, ty).
// For coincident points it returns (0, 0).
func Direction(x, y, tx, ty float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}
