// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/mask"
	"cogentcore.org/builder/metadata"
)

// NewInsertAsAccessory returns a job inserting the detached child into
// the given accessory of the target at the given index; -1 appends.
func NewInsertAsAccessory(ctx *Context, child fxom.Object, target *fxom.Instance, acc *metadata.Accessory, index int) *Batch {
	return NewBatch(ctx, fmt.Sprintf("Insert %s", child), func() []Job {
		return insertAsAccessory(ctx, child, target, acc, index)
	})
}

// insertAsAccessory returns the sub-jobs inserting the child, or nil
// if the accessory does not accept it in the current document.
func insertAsAccessory(ctx *Context, child fxom.Object, target *fxom.Instance, acc *metadata.Accessory, index int) []Job {
	cb := child.AsObject()
	if cb.IsAttached() || cb.IsRoot() || target.Document() != ctx.Document {
		return nil
	}
	m := mask.New(target, ctx.Catalog)
	if !m.IsAcceptingAccessory(acc, child) {
		return nil
	}
	if !acc.Collection && !m.IsAccessoryFree(acc) {
		return nil
	}
	return insertJobs(ctx, child, target, acc.PropertyName(), index)
}

// insertJobs returns the sub-jobs adding the child to the named complex
// property of the target, creating the property if needed.
func insertJobs(ctx *Context, child fxom.Object, target *fxom.Instance, name fxom.PropertyName, index int) []Job {
	var res []Job
	existing := target.Property(name)
	pc, _ := existing.(*fxom.PropertyC)
	if pt, ok := existing.(*fxom.PropertyT); ok {
		res = append(res, NewRemoveProperty(ctx, pt))
	}
	attached := pc != nil
	if !attached {
		pc = fxom.NewPropertyC(child.AsObject().Document(), name)
	}
	if index > pc.NumValues() {
		index = -1
	}
	res = append(res, NewAddPropertyValue(ctx, child, pc, index))
	if !attached {
		res = append(res, NewAddProperty(ctx, pc, target, -1))
	}
	return append(res, NewPruneProperties(ctx, child, target.Type))
}

// NewInsertAsSubComponent returns a job inserting the detached child
// into the main accessory of the target at the given index; -1 appends.
func NewInsertAsSubComponent(ctx *Context, child fxom.Object, target *fxom.Instance, index int) *Batch {
	return NewBatch(ctx, fmt.Sprintf("Insert %s", child), func() []Job {
		m := mask.New(target, ctx.Catalog)
		if !m.IsAcceptingSubComponent(child) {
			return nil
		}
		return insertAsAccessory(ctx, child, target, m.MainAccessory(), index)
	})
}
