// Package vex provides small fixed-dimension float64 vectors, primarily as
// geometric node values for the heuristic searches: "euclidean distance to
// the target" is a Vec2 subtraction and a Len away.
package vex

import "math"

// Vec2 is a two-dimensional float64 vector.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Div returns v scaled by 1/s.
func (v Vec2) Div(s float64) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Len2 returns the squared length of v.
func (v Vec2) Len2() float64 { return v.Dot(v) }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.Len2()) }

// Dist returns the euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 { return v.Sub(w).Len() }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}

	return v.Div(l)
}

// Vec3 is a three-dimensional float64 vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Len2 returns the squared length of v.
func (v Vec3) Len2() float64 { return v.Dot(v) }

// Len returns the euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Len2()) }

// Dist returns the euclidean distance between v and w.
func (v Vec3) Dist(w Vec3) float64 { return v.Sub(w).Len() }
