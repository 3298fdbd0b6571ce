// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Matrix2 is a 3x2 matrix representing a 2D affine transform:
//
//	XX YX X0
//	XY YY Y0
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float64) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given scaling factors
func Scale2D(x, y float64) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 rotation matrix by given angle in degrees,
// clockwise in screen coordinates (y down).
func Rotate2D(degrees float64) Matrix2 {
	rad := degrees * math.Pi / 180
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns a*b: b is applied first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// Determinant returns the determinant of the linear part of the matrix.
func (a Matrix2) Determinant() float64 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix, and the identity
// if the matrix is singular.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Determinant()
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	r := Matrix2{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
	}
	r.X0 = -(r.XX*a.X0 + r.XY*a.Y0)
	r.Y0 = -(r.YX*a.X0 + r.YY*a.Y0)
	return r
}

// IsIdentity returns whether the matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}
