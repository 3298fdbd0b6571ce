// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"log/slog"

	"cogentcore.org/builder/clipboard"
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/mask"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/selection"
)

// Copy writes the selected objects to the clipboard. It returns
// false if nothing is selected.
func Copy(ctx *Context) (bool, error) {
	og := ctx.Selection.Objects()
	if og == nil {
		return false, nil
	}
	return true, clipboard.Copy(ctx.Clipboard, og.FlattenedItems())
}

// NewPaste returns a job pasting the clipboard objects into the common
// ancestor of the selection, or into the root if nothing or the root
// is selected. Pasting into an empty document makes a single pasted
// object the root.
func NewPaste(ctx *Context) *Batch {
	return NewBatch(ctx, "Paste", func() []Job {
		objs := decodeClipboard(ctx)
		return insertObjects(ctx, objs, pasteTarget(ctx), nil)
	})
}

// NewPasteInto returns a job pasting the clipboard objects into the
// single selected object.
func NewPasteInto(ctx *Context) *Batch {
	return NewBatch(ctx, "Paste Into", func() []Job {
		og := ctx.Selection.Objects()
		if og == nil || og.Len() != 1 {
			return nil
		}
		target, ok := og.Items()[0].(*fxom.Instance)
		if !ok {
			return nil
		}
		return insertObjects(ctx, decodeClipboard(ctx), target, nil)
	})
}

// NewInsertObjects returns a job inserting detached objects as
// [NewPaste] does: into the given accessory of the target, or the
// best accepting accessory if acc is nil, or as the root of an empty
// document. A nil target means the paste target of the selection.
func NewInsertObjects(ctx *Context, description string, objs []fxom.Object, target *fxom.Instance, acc *metadata.Accessory) *Batch {
	return NewBatch(ctx, description, func() []Job {
		if target == nil {
			target = pasteTarget(ctx)
		}
		return insertObjects(ctx, objs, target, acc)
	})
}

func decodeClipboard(ctx *Context) []fxom.Object {
	if ctx.Clipboard == nil {
		return nil
	}
	objs := clipboard.Paste(ctx.Clipboard, ctx.Document, ctx.Catalog.ReadOptions())
	uniquifyFxIDs(ctx.Document, objs)
	return objs
}

// uniquifyFxIDs renames the fx:ids of the detached objects and their
// descendants that are already used in the document.
func uniquifyFxIDs(d *fxom.Document, objs []fxom.Object) {
	used := d.CollectFxIDs()
	for _, obj := range objs {
		obj.AsObject().WalkDown(func(o fxom.Object) bool {
			ob := o.AsObject()
			id := ob.FxID()
			if id == "" {
				return fxom.Continue
			}
			if _, has := used[id]; has {
				nid := fxom.UniqueID(id, used)
				slog.Debug("job: renaming pasted fx:id", "from", id, "to", nid)
				ob.SetFxID(nid)
				id = nid
			}
			used[id] = o
			return fxom.Continue
		})
	}
}

// pasteTarget returns the root if nothing or the root is selected,
// otherwise the common ancestor of the selection.
func pasteTarget(ctx *Context) *fxom.Instance {
	root, _ := ctx.Document.Root().(*fxom.Instance)
	sel := ctx.Selection
	if sel == nil || sel.IsEmpty() || sel.IsSelected(ctx.Document.Root()) {
		return root
	}
	if anc, ok := sel.Ancestor().(*fxom.Instance); ok {
		return anc
	}
	return root
}

// insertObjects returns the sub-jobs inserting the detached objects
// into the target, then selecting them.
func insertObjects(ctx *Context, objs []fxom.Object, target *fxom.Instance, acc *metadata.Accessory) []Job {
	if len(objs) == 0 {
		return nil
	}
	if ctx.Document.Root() == nil {
		if len(objs) != 1 {
			return nil
		}
		return []Job{
			NewSetDocumentRoot(ctx, objs[0]),
			NewPruneProperties(ctx, objs[0], ""),
			NewUpdateSelection(ctx, selection.Objects(objs...)),
		}
	}
	if target == nil {
		return nil
	}
	m := mask.New(target, ctx.Catalog)
	if acc == nil {
		acc = acceptingAccessory(m, objs)
	}
	if acc == nil || !m.IsAcceptingAccessory(acc, objs...) {
		return nil
	}
	if !acc.Collection && !m.IsAccessoryFree(acc) {
		return nil
	}
	index := m.SubComponentCount(acc, false)
	var res []Job
	for _, obj := range objs {
		res = append([]Job{NewInsertAsAccessory(ctx, obj, target, acc, index)}, res...)
	}
	return append(res, NewUpdateSelection(ctx, selection.Objects(objs...)))
}

// acceptingAccessory returns the main accessory if it accepts the
// objects, or else the first accessory that does.
func acceptingAccessory(m *mask.Mask, objs []fxom.Object) *metadata.Accessory {
	if main := m.MainAccessory(); main != nil && m.IsAcceptingAccessory(main, objs...) {
		if main.Collection || m.IsAccessoryFree(main) {
			return main
		}
	}
	for _, acc := range m.Accessories() {
		if !m.IsAcceptingAccessory(acc, objs...) {
			continue
		}
		if acc.Collection || m.IsAccessoryFree(acc) {
			return acc
		}
	}
	return nil
}

// NewCut returns a job copying the selected objects to the clipboard
// and deleting them.
func NewCut(ctx *Context) *Inline {
	del := NewDeleteSelection(ctx)
	return NewInline(ctx, "Cut", func() bool {
		return ctx.Selection.Objects() != nil && del.IsExecutable()
	}, func(do func(j Job) bool) {
		if _, err := Copy(ctx); err != nil {
			slog.Error("job: cut", "err", err)
			return
		}
		do(del)
	})
}

// DuplicateOffset is the distance by which duplicates of freely
// positioned objects are moved from their original.
const DuplicateOffset = 10.0

// NewDuplicate returns a job inserting a copy of each selected object
// right after it, with fx:ids made unique. Copies in freely positioning
// containers are offset by [DuplicateOffset].
func NewDuplicate(ctx *Context) *Inline {
	og := ctx.Selection.Objects()
	desc := "Duplicate"
	if og != nil && og.Len() > 1 {
		desc = fmt.Sprintf("Duplicate %d Objects", og.Len())
	}
	return NewInline(ctx, desc, func() bool {
		if og == nil {
			return false
		}
		for _, obj := range og.FlattenedItems() {
			p := obj.AsObject().ParentProperty()
			if p == nil || p.ParentInstance() == nil {
				return false
			}
			acc := mask.New(p.ParentInstance(), ctx.Catalog).AccessoryOf(obj)
			if acc == nil || !acc.Collection {
				return false
			}
		}
		return true
	}, func(do func(j Job) bool) {
		var dups []fxom.Object
		for _, obj := range og.FlattenedItems() {
			ob := obj.AsObject()
			parent := ob.ParentProperty().ParentInstance()
			dup := fxom.Clone(obj, ctx.Document)
			uniquifyFxIDs(ctx.Document, []fxom.Object{dup})
			if !do(NewAddPropertyValue(ctx, dup, ob.ParentProperty(), ob.IndexInParentProperty()+1)) {
				continue
			}
			dups = append(dups, dup)
			inst, ok := dup.(*fxom.Instance)
			if !ok || !mask.New(parent, ctx.Catalog).IsFreeChildPositioning() {
				continue
			}
			for _, name := range []string{"layoutX", "layoutY"} {
				if vp := ctx.Catalog.QueryValueProperty(inst, fxom.PropName(name)); vp != nil {
					do(NewModifyObject(ctx, inst, vp.PropertyName(), metadata.FormatDouble(vp.Float(inst)+DuplicateOffset)))
				}
			}
		}
		do(NewUpdateSelection(ctx, selection.Objects(dups...)))
	})
}
