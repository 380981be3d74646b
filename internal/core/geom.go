// Package core provides fundamental types and utilities shared by the
// simulation and the terminal front end. It has no external dependencies
// (especially no Bubble Tea) so simulation logic stays pure and testable.
package core

import "math"

// Vec2 is a point or direction on the sea plane, in meters.
// X grows east, Z grows north.
type Vec2 struct {
	X, Z float64
}

// V creates a vector.
func V(x, z float64) Vec2 {
	return Vec2{X: x, Z: z}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Z: v.Z * k}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Z*o.Z
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalized returns a unit vector in the same direction, or zero for the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// FromHeading returns the unit vector for a compass heading in degrees
// (0 = north, clockwise).
func FromHeading(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Sin(rad), Z: math.Cos(rad)}
}

// Heading returns the compass heading of v in degrees in [0, 360).
func (v Vec2) Heading() float64 {
	deg := math.Atan2(v.X, v.Z) * 180 / math.Pi
	return WrapDegrees(deg)
}

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDelta returns the signed smallest difference b - a in (-180, 180].
func AngleDelta(a, b float64) float64 {
	d := WrapDegrees(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// Rect is an integer rectangle in screen cells, used for panels and boxes.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp01 restricts a value to [0, 1]. NaN maps to 0.
func Clamp01(val float64) float64 {
	if math.IsNaN(val) {
		return 0
	}
	return ClampF(val, 0, 1)
}

// NonNeg returns val, or 0 when val is negative or NaN.
func NonNeg(val float64) float64 {
	if math.IsNaN(val) || val < 0 {
		return 0
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
