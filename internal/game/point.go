package game

import "math"

// Point is a continuous 2D position. y grows downward, matching the
// canvas convention the terrain uses.
type Point struct {
	X float64
	Y float64
}

// dist returns the Euclidean distance between two points.
func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
