// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenegraph resolves FXOM documents into live nodes that
// carry parsed property values, sizes and transforms, so that
// structural edits can reason about geometry without a layout engine.
package scenegraph

import (
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/metadata"
)

// Node is the live object of a resolved FXOM object.
type Node struct {

	// Class is the resolved catalog class.
	Class *metadata.Class

	// Object is the document object this node was resolved from.
	Object fxom.Object

	// Parent is the nearest resolved ancestor node, or nil.
	Parent *Node

	// Children are the resolved nodes directly below this one.
	Children []*Node

	values map[fxom.PropertyName]string
	size   geom.Vector2
}

// NodeOf returns the live node of the given object, or nil if it
// is not resolved.
func NodeOf(obj fxom.Object) *Node {
	if obj == nil {
		return nil
	}
	n, _ := obj.AsObject().LiveObject().(*Node)
	return n
}

func (n *Node) String() string {
	return "live:" + n.Class.Name
}

// SetLiveValue implements [metadata.LiveValueSetter].
func (n *Node) SetLiveValue(name fxom.PropertyName, value string) {
	n.values[name] = value
}

// Value returns the value of the given property, falling back
// to the catalog default.
func (n *Node) Value(name fxom.PropertyName) string {
	if v, ok := n.values[name]; ok {
		return v
	}
	if name.IsStatic() {
		return ""
	}
	if vp := n.Class.Property(name.Name); vp != nil {
		return vp.Default
	}
	return ""
}

// Float returns the numeric value of the given regular property.
func (n *Node) Float(name string) float64 {
	return metadata.ParseDouble(n.Value(fxom.PropName(name)))
}

// IsNode returns whether the node is a scene graph node that has
// a position in its parent.
func (n *Node) IsNode() bool {
	return n.Class.Property("layoutX") != nil
}

// Size returns the resolved width and height of the node.
func (n *Node) Size() geom.Vector2 {
	return n.size
}

// LayoutBounds returns the bounds of the node in its own coordinates.
func (n *Node) LayoutBounds() geom.Box2 {
	if len(n.Class.SizeProperties) == 1 {
		c := geom.Vec2(n.Float("centerX"), n.Float("centerY"))
		r := geom.Vec2(n.size.X/2, n.size.Y/2)
		return geom.Box2{Min: c.Sub(r), Max: c.Add(r)}
	}
	return geom.B2(0, 0, n.size.X, n.size.Y)
}

// LocalToParent returns the transform from node coordinates to
// parent coordinates: the layout and translate offsets, with rotation
// and scale about the center of the layout bounds.
func (n *Node) LocalToParent() geom.Matrix2 {
	if !n.IsNode() {
		return geom.Identity2()
	}
	c := n.LayoutBounds().Center()
	tx := n.Float("layoutX") + n.Float("translateX")
	ty := n.Float("layoutY") + n.Float("translateY")
	return geom.Translate2D(tx, ty).
		Mul(geom.Translate2D(c.X, c.Y)).
		Mul(geom.Rotate2D(n.Float("rotate"))).
		Mul(geom.Scale2D(n.Float("scaleX"), n.Float("scaleY"))).
		Mul(geom.Translate2D(-c.X, -c.Y))
}

// BoundsInParent returns the layout bounds transformed to parent coordinates.
func (n *Node) BoundsInParent() geom.Box2 {
	return n.LayoutBounds().MulMatrix2(n.LocalToParent())
}

// LocalToScene returns the transform from node coordinates to the
// coordinates of the root node.
func (n *Node) LocalToScene() geom.Matrix2 {
	m := n.LocalToParent()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.LocalToParent().Mul(m)
	}
	return m
}
