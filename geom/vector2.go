// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the float64 2D geometry used for
// layout coordinates of document nodes: vectors, boxes and
// affine transforms.
package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float64) Vector2 {
	return Vector2{x, y}
}

// String implements [fmt.Stringer].
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds other vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts other vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s.
func (v Vector2) MulScalar(s float64) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Min returns the component-wise minimum of this and the other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(math.Min(v.X, other.X), math.Min(v.Y, other.Y))
}

// Max returns the component-wise maximum of this and the other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(math.Max(v.X, other.X), math.Max(v.Y, other.Y))
}

// Length returns the length of this vector.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
