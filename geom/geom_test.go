// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-9

func assertVector(t *testing.T, want, have Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, have.X, standardTol)
	assert.InDelta(t, want.Y, have.Y, standardTol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))
	assertVector(t, vy, Rotate2D(90).MulVector2AsPoint(vx))
	assertVector(t, vx, Rotate2D(90).Inverse().MulVector2AsPoint(vy))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	m := Translate2D(1, 1).Mul(Rotate2D(90)).Mul(Scale2D(2, 2))
	assertVector(t, Vec2(1, 3), m.MulVector2AsPoint(vx))
	assertVector(t, vx, m.Inverse().MulVector2AsPoint(Vec2(1, 3)))
	assert.True(t, Identity2().IsIdentity())
}

func TestBox2(t *testing.T) {
	b := B2Size(10, 20, 30, 40)
	assert.Equal(t, 30.0, b.Width())
	assert.Equal(t, 40.0, b.Height())
	assert.Equal(t, Vec2(25, 40), b.Center())
	assert.True(t, B2Empty().IsEmpty())

	u := B2Empty().Union(b).Union(B2Size(0, 0, 5, 5))
	assert.Equal(t, B2(0, 0, 40, 60), u)

	tb := b.MulMatrix2(Translate2D(5, 5))
	assert.Equal(t, B2(15, 25, 45, 65), tb)

	rb := B2(0, 0, 10, 20).MulMatrix2(Rotate2D(90))
	assert.InDelta(t, -20, rb.Min.X, standardTol)
	assert.InDelta(t, 10, rb.Max.Y, standardTol)
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.False(t, b.IntersectsBox(B2(100, 100, 110, 110)))
}
