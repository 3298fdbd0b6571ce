// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/selection"
)

// NewTrim returns a job making the single selected object the root of
// the document, dropping everything else. The fx:root and controller
// markers of the old root move to the new one.
func NewTrim(ctx *Context) *Batch {
	return NewBatch(ctx, "Trim Document to Selection", func() []Job {
		og := ctx.Selection.Objects()
		if og == nil || og.Len() != 1 {
			return nil
		}
		candidate, ok := og.Items()[0].(*fxom.Instance)
		if !ok || candidate.IsRoot() || !candidate.IsAttached() || candidate.Document() != ctx.Document {
			return nil
		}
		if !ctx.Catalog.IsNode(candidate.Type) {
			return nil
		}
		res := []Job{NewRemoveObject(ctx, candidate)}
		res = append(res, moveRootTo(ctx, candidate)...)
		return append(res,
			NewPruneProperties(ctx, candidate, ""),
			NewUpdateSelection(ctx, selection.Objects(candidate)))
	})
}

// moveRootTo returns the jobs making the detached object the document
// root, moving the fx:root and controller markers of the old root to it.
func moveRootTo(ctx *Context, newRoot *fxom.Instance) []Job {
	var res []Job
	old, _ := ctx.Document.Root().(*fxom.Instance)
	fxRoot := old != nil && old.IsFxRoot()
	controller := ""
	if old != nil {
		controller = old.FxController()
		if fxRoot {
			res = append(res, NewToggleFxRoot(ctx, old))
		}
		if controller != "" {
			res = append(res, NewModifyFxController(ctx, old, ""))
		}
	}
	res = append(res, NewSetDocumentRoot(ctx, newRoot))
	if fxRoot && !newRoot.IsFxRoot() {
		res = append(res, NewToggleFxRoot(ctx, newRoot))
	}
	if controller != "" {
		res = append(res, NewModifyFxController(ctx, newRoot, controller))
	}
	return res
}
