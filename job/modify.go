// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"slices"

	"cogentcore.org/builder/fxom"
)

// selectedInstances returns the selected instances in document order.
func selectedInstances(ctx *Context) []*fxom.Instance {
	og := ctx.Selection.Objects()
	if og == nil {
		return nil
	}
	var res []*fxom.Instance
	for _, obj := range og.SortedItems() {
		if inst, ok := obj.(*fxom.Instance); ok {
			res = append(res, inst)
		}
	}
	return res
}

// changing returns the jobs that would change the document. The jobs
// must not depend on each other.
func changing(jobs []Job) []Job {
	return slices.DeleteFunc(jobs, func(j Job) bool { return !j.IsExecutable() })
}

// NewModifySelection returns a job setting the named property on every
// selected instance that has it.
func NewModifySelection(ctx *Context, name fxom.PropertyName, value string) *Batch {
	return NewBatch(ctx, fmt.Sprintf("Set %s", name), func() []Job {
		var res []Job
		for _, inst := range selectedInstances(ctx) {
			if ctx.Catalog.QueryValueProperty(inst, name) == nil {
				continue
			}
			res = append(res, NewModifyObject(ctx, inst, name, value))
		}
		return changing(res)
	})
}

// computedSizeNames are the properties that fix the size of a node.
var computedSizeNames = []string{
	"minWidth", "minHeight", "prefWidth", "prefHeight", "maxWidth", "maxHeight",
	"fitWidth", "fitHeight",
}

// NewUseComputedSizes returns a job resetting the size properties of
// the selected instances so that their size is computed again.
func NewUseComputedSizes(ctx *Context) *Batch {
	return NewBatch(ctx, "Use Computed Sizes", func() []Job {
		var res []Job
		for _, inst := range selectedInstances(ctx) {
			for _, name := range computedSizeNames {
				vp := ctx.Catalog.QueryValueProperty(inst, fxom.PropName(name))
				if vp == nil || vp.IsDefault(inst) {
					continue
				}
				res = append(res, NewModifyObject(ctx, inst, vp.PropertyName(), vp.DefaultValue()))
			}
		}
		return changing(res)
	})
}

// NewFitToParent returns a job anchoring the selected instances of an
// AnchorPane to all four sides of it.
func NewFitToParent(ctx *Context) *Batch {
	return NewBatch(ctx, "Fit to Parent", func() []Job {
		var res []Job
		for _, inst := range selectedInstances(ctx) {
			parent, _ := inst.ParentObject().(*fxom.Instance)
			if parent == nil || !ctx.Catalog.IsAssignable(parent.Type, "AnchorPane") {
				continue
			}
			res = append(res, setLayout(ctx, inst, 0, 0)...)
			for _, name := range anchorNames {
				res = append(res, NewModifyObject(ctx, inst, fxom.StaticPropName("AnchorPane", name), "0.0"))
			}
		}
		return changing(res)
	})
}
