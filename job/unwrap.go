// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/mask"
	"cogentcore.org/builder/scenegraph"
	"cogentcore.org/builder/selection"
)

// NewUnwrap returns a job replacing the single selected container by
// its children. A TabPane is replaced by the content of its first tab.
// Scenes and stages cannot be unwrapped.
func NewUnwrap(ctx *Context) *Batch {
	return NewBatch(ctx, "Unwrap", func() []Job {
		return unwrap(ctx)
	})
}

// unwrapChildren returns the children that replace the container.
func unwrapChildren(ctx *Context, container *fxom.Instance, kind ContainerKinds) []fxom.Object {
	m := mask.New(container, ctx.Catalog)
	switch kind {
	case TabPane:
		tabs := m.SubComponents(nil)
		if len(tabs) == 0 {
			return nil
		}
		tab, ok := tabs[0].(*fxom.Instance)
		if !ok {
			return nil
		}
		if pc := tab.PropertyC(fxom.PropName("content")); pc != nil {
			return pc.Values()
		}
		return nil
	case BorderPane:
		var res []fxom.Object
		for _, acc := range m.Accessories() {
			res = append(res, m.SubComponents(acc)...)
		}
		return res
	}
	return m.SubComponents(strategyOf(kind).accessoryOf(m))
}

// localToParent returns the transform of the instance to its parent,
// using the layout position alone when it has no live node.
func localToParent(ctx *Context, inst *fxom.Instance) geom.Matrix2 {
	if n := scenegraph.NodeOf(inst); n != nil {
		return n.LocalToParent()
	}
	x, y := layoutOf(ctx, inst)
	return geom.Translate2D(x, y)
}

func unwrap(ctx *Context) []Job {
	og := ctx.Selection.Objects()
	if og == nil || og.Len() != 1 {
		return nil
	}
	container, ok := og.Items()[0].(*fxom.Instance)
	if !ok || container.Document() != ctx.Document {
		return nil
	}
	kind, err := ParseContainerKind(container.SimpleType())
	if err != nil || kind == Scene || kind == Stage {
		return nil
	}
	children := unwrapChildren(ctx, container, kind)
	if len(children) == 0 {
		return nil
	}
	isRoot := container.IsRoot()
	var gp *fxom.Instance
	var gprop *fxom.PropertyC
	if isRoot {
		if _, ok := children[0].(*fxom.Instance); !ok || len(children) != 1 {
			return nil
		}
	} else {
		gprop = container.ParentProperty()
		if gprop == nil || gprop.ParentInstance() == nil {
			return nil
		}
		gp = gprop.ParentInstance()
		gm := mask.New(gp, ctx.Catalog)
		acc := gm.AccessoryOf(container)
		if acc == nil || !gm.IsAcceptingAccessory(acc, children...) {
			return nil
		}
	}

	var res []Job
	for _, c := range children {
		res = append(res, NewRemovePropertyValue(ctx, c))
	}
	for _, c := range children {
		res = append(res, stripStatics(ctx, c, container.Type)...)
	}
	switch {
	case isRoot:
	case mask.New(gp, ctx.Catalog).IsFreeChildPositioning():
		m := localToParent(ctx, container)
		for _, c := range children {
			x, y := layoutOf(ctx, c)
			p := m.MulVector2AsPoint(geom.Vec2(x, y))
			res = append(res, setLayout(ctx, c, p.X, p.Y)...)
		}
	default:
		for _, c := range children {
			res = append(res, setLayout(ctx, c, 0, 0)...)
		}
	}

	if isRoot {
		res = append(res, moveRootTo(ctx, children[0].(*fxom.Instance))...)
		res = append(res, NewPruneProperties(ctx, children[0], ""))
		return append(res, NewUpdateSelection(ctx, selection.Objects(children...)))
	}
	if len(children) == 1 {
		res = append(res, transferStatics(ctx, container, children[0], gp.Type)...)
	}
	index := container.IndexInParentProperty()
	for i, c := range children {
		res = append(res, NewAddPropertyValue(ctx, c, gprop, index+1+i))
	}
	res = append(res, NewRemovePropertyValue(ctx, container))
	for _, c := range children {
		res = append(res, NewPruneProperties(ctx, c, gp.Type))
	}
	return append(res, NewUpdateSelection(ctx, selection.Objects(children...)))
}

// transferStatics returns the jobs giving the child the static
// properties the container has under the grandparent.
func transferStatics(ctx *Context, container *fxom.Instance, child fxom.Object, gpType string) []Job {
	inst, ok := child.(*fxom.Instance)
	if !ok {
		return nil
	}
	var res []Job
	for _, p := range container.Properties() {
		pt, ok := p.(*fxom.PropertyT)
		if !ok {
			continue
		}
		name := pt.Name()
		if name.IsStatic() && ctx.Catalog.IsAssignable(fxom.SimpleTypeName(gpType), name.Residence) {
			res = append(res, NewModifyObject(ctx, inst, name, pt.Value()))
		}
	}
	return res
}
