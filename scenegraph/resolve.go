// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegraph

import (
	"log/slog"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/metadata"
)

// NewResolver returns a resolver for documents using the given catalog.
func NewResolver(cat *metadata.Catalog) fxom.Resolver {
	return func(d *fxom.Document) {
		Resolve(d, cat)
	}
}

// Resolve attaches a live [Node] to every object of the document
// whose class is known to the catalog. Objects of unknown classes
// resolve to nil; their descendants are still resolved. Existing
// nodes are reused so that live object identity is stable.
func Resolve(d *fxom.Document, cat *metadata.Catalog) {
	if d.Root() == nil {
		return
	}
	unresolved := 0
	resolveObject(d.Root(), nil, cat, &unresolved)
	if unresolved > 0 {
		slog.Debug("scenegraph: unresolved objects", "count", unresolved, "document", d.Location)
	}
}

func resolveObject(obj fxom.Object, parent *Node, cat *metadata.Catalog, unresolved *int) *Node {
	ob := obj.AsObject()
	var n *Node
	if cl := cat.ClassOf(obj); cl != nil && !cl.Abstract {
		n = NodeOf(obj)
		if n == nil {
			n = &Node{}
		}
		n.Class = cl
		n.Object = obj
		n.Parent = parent
		n.Children = n.Children[:0]
		n.values = map[fxom.PropertyName]string{}
		if inst, ok := obj.(*fxom.Instance); ok {
			for _, p := range inst.Properties() {
				if pt, ok := p.(*fxom.PropertyT); ok {
					n.values[pt.Name()] = pt.Value()
				}
			}
		}
		ob.SetLiveObject(n)
		if parent != nil {
			parent.Children = append(parent.Children, n)
		}
	} else {
		if _, isInst := obj.(*fxom.Instance); isInst {
			*unresolved++
		}
		ob.SetLiveObject(nil)
	}
	childParent := parent
	if n != nil {
		childParent = n
	}
	for _, c := range obj.Children() {
		resolveObject(c, childParent, cat, unresolved)
	}
	if n != nil {
		n.size = computeSize(n)
	}
	return n
}

// computeSize returns the size from the explicit size properties,
// else the class default size, else the extent of the children.
func computeSize(n *Node) geom.Vector2 {
	sp := n.Class.SizeProperties
	switch len(sp) {
	case 1:
		r := n.Float(sp[0])
		return geom.Vec2(2*r, 2*r)
	case 2:
		w, h := n.Float(sp[0]), n.Float(sp[1])
		if w > 0 && h > 0 {
			return geom.Vec2(w, h)
		}
		def := defaultSize(n)
		if w <= 0 {
			w = def.X
		}
		if h <= 0 {
			h = def.Y
		}
		return geom.Vec2(w, h)
	}
	return defaultSize(n)
}

func defaultSize(n *Node) geom.Vector2 {
	if n.Class.DefaultWidth > 0 || n.Class.DefaultHeight > 0 {
		ext := childrenExtent(n)
		return geom.Vec2(max(n.Class.DefaultWidth, ext.X), max(n.Class.DefaultHeight, ext.Y))
	}
	return childrenExtent(n)
}

func childrenExtent(n *Node) geom.Vector2 {
	b := geom.B2Empty()
	for _, c := range n.Children {
		if c.IsNode() {
			b.ExpandByBox(c.BoundsInParent())
		}
	}
	if b.IsEmpty() {
		return geom.Vector2{}
	}
	return geom.Vec2(max(b.Max.X, 0), max(b.Max.Y, 0))
}
