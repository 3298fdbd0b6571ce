// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/selection"
)

// NewRemoveObject returns a job detaching the object from its parent
// property or collection.
func NewRemoveObject(ctx *Context, obj fxom.Object) *Batch {
	return NewBatch(ctx, fmt.Sprintf("Remove %s", obj), func() []Job {
		ob := obj.AsObject()
		switch {
		case ob.ParentProperty() != nil:
			return []Job{NewRemovePropertyValue(ctx, obj)}
		case ob.ParentCollection() != nil:
			return []Job{NewRemoveCollectionItem(ctx, obj)}
		}
		return nil
	})
}

// NewDeleteObject returns a job deleting the object from the document.
// Deleting the root empties the document. The axes of a chart and the
// root of a scene cannot be deleted.
func NewDeleteObject(ctx *Context, obj fxom.Object) *Batch {
	return NewBatch(ctx, fmt.Sprintf("Delete %s", obj), func() []Job {
		ob := obj.AsObject()
		if ob.Document() != ctx.Document {
			return nil
		}
		if ob.IsRoot() {
			return []Job{NewSetDocumentRoot(ctx, nil)}
		}
		if !ob.IsAttached() || isStructuralSlot(ctx, obj) {
			return nil
		}
		return []Job{NewRemoveObject(ctx, obj)}
	})
}

// isStructuralSlot returns whether the object holds a slot its
// parent cannot do without: a chart axis or a scene root.
func isStructuralSlot(ctx *Context, obj fxom.Object) bool {
	p := obj.AsObject().ParentProperty()
	if p == nil || p.ParentInstance() == nil {
		return false
	}
	parent := p.ParentInstance().Type
	switch p.Name().Name {
	case "xAxis", "yAxis":
		return ctx.Catalog.IsAssignable(parent, "XYChart")
	case "root":
		return ctx.Catalog.IsAssignable(parent, "Scene")
	}
	return false
}

// NewDeleteSelection returns a job deleting the selected objects, or
// the selected GridPane rows or columns. Nothing is deleted unless
// every selected object can be.
func NewDeleteSelection(ctx *Context) *Batch {
	if gg, ok := ctx.Selection.Group().(*selection.GridGroup); ok {
		return NewDeleteGridLines(ctx, gg)
	}
	og := ctx.Selection.Objects()
	desc := "Delete"
	if og != nil && og.Len() > 1 {
		desc = fmt.Sprintf("Delete %d Objects", og.Len())
	}
	return NewBatch(ctx, desc, func() []Job {
		if og == nil {
			return nil
		}
		var res []Job
		for _, obj := range og.FlattenedItems() {
			del := NewDeleteObject(ctx, obj)
			if !del.IsExecutable() {
				return nil
			}
			res = append(res, del)
		}
		return append(res, NewUpdateSelection(ctx, nil))
	})
}

// NewPruneProperties returns a job removing the properties of the
// object that are not valid under a parent of the given type; an
// empty type means the object becomes the root.
func NewPruneProperties(ctx *Context, obj fxom.Object, parentType string) *Batch {
	return NewBatch(ctx, "Prune Properties", func() []Job {
		inst, ok := obj.(*fxom.Instance)
		if !ok {
			return nil
		}
		var res []Job
		for _, p := range inst.Properties() {
			if ctx.Catalog.IsPropertyTrimmingNeeded(p.AsProperty().Name(), parentType) {
				res = append(res, NewRemoveProperty(ctx, p))
			}
		}
		return res
	})
}

// stripStatics returns jobs removing the static properties of the
// object that belong to the given residence class.
func stripStatics(ctx *Context, obj fxom.Object, residence string) []Job {
	inst, ok := obj.(*fxom.Instance)
	if !ok || residence == "" {
		return nil
	}
	residence = fxom.SimpleTypeName(residence)
	var res []Job
	for _, p := range inst.Properties() {
		name := p.AsProperty().Name()
		if name.IsStatic() && ctx.Catalog.IsAssignable(residence, name.Residence) {
			res = append(res, NewRemoveProperty(ctx, p))
		}
	}
	return res
}
