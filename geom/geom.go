// Package geom provides the small amount of 2D geometry the entities need.
package geom

import "math"

// Point is a position in world coordinates. Y grows upward.
type Point struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// PointOnCircle returns the point at angle degrees on the circle of the given
// radius around center. Angle 0 points along +X, 90 along +Y.
// A negative radius mirrors the point through the center.
func PointOnCircle(center Point, radius, angle float64) Point {
	rad := angle * math.Pi / 180.0
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}
