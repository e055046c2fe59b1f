package sill

import "math"

// Vec2 is a 2D vector used for positions, sizes, and offsets throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the componentwise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the distance between v and other.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates from v toward other by t.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
	}
}

// Int returns the vector truncated to integer pixel coordinates.
func (v Vec2) Int() (x, y int) {
	return int(v.X), int(v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Screen describes one display attached to the host.
type Screen struct {
	X, Y, Width, Height int
	Index               int
}

// Center returns the center point of the screen in global coordinates.
func (s Screen) Center() (x, y int) {
	return s.X + s.Width/2, s.Y + s.Height/2
}
