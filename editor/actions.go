// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/job"
	"cogentcore.org/builder/mask"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/selection"
)

// Actions are the editing actions of the menus.
type Actions int32

const (
	Copy Actions = iota
	Cut
	Paste
	PasteInto
	Delete
	Duplicate
	SelectAll
	SelectNone
	SelectParent
	Trim
	Unwrap
	BringToFront
	SendToBack
	BringForward
	SendBackward
	UseComputedSizes
	FitToParent
	AddRowAbove
	AddRowBelow
	AddColumnBefore
	AddColumnAfter
	Undo
	Redo
	ActionsN
)

var actionNames = [...]string{
	"Copy", "Cut", "Paste", "PasteInto", "Delete", "Duplicate",
	"SelectAll", "SelectNone", "SelectParent", "Trim", "Unwrap",
	"BringToFront", "SendToBack", "BringForward", "SendBackward",
	"UseComputedSizes", "FitToParent",
	"AddRowAbove", "AddRowBelow", "AddColumnBefore", "AddColumnAfter",
	"Undo", "Redo",
}

func (a Actions) String() string {
	if a >= 0 && a < ActionsN {
		return actionNames[a]
	}
	return "Actions(" + strconv.Itoa(int(a)) + ")"
}

// ParseAction returns the action with the given name, ignoring case.
func ParseAction(s string) (Actions, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, s) {
			return Actions(i), nil
		}
	}
	return ActionsN, fmt.Errorf("%q is not a valid action", s)
}

// CanPerform returns whether the action can be performed now.
func (ed *Editor) CanPerform(a Actions) bool {
	switch a {
	case Copy:
		return ed.Selection.Objects() != nil
	case SelectAll:
		return ed.document.Root() != nil
	case SelectNone:
		return !ed.Selection.IsEmpty()
	case SelectParent:
		return ed.Selection.Ancestor() != nil
	case Undo:
		return ed.Undo.IsUndoAvail()
	case Redo:
		return ed.Undo.IsRedoAvail()
	}
	j := ed.jobFor(a)
	return j != nil && j.IsExecutable()
}

// Perform performs the action, returning false if it cannot be
// performed now.
func (ed *Editor) Perform(a Actions) bool {
	switch a {
	case Copy:
		ok, err := job.Copy(ed.ctx)
		if err != nil {
			slog.Error("editor: copy", "err", err)
			return false
		}
		return ok
	case SelectAll:
		return ed.selectAll()
	case SelectNone:
		if ed.Selection.IsEmpty() {
			return false
		}
		ed.Selection.Clear()
		return true
	case SelectParent:
		anc := ed.Selection.Ancestor()
		if anc == nil {
			return false
		}
		ed.Selection.SelectObjects(anc)
		return true
	case Undo:
		if ed.Undo.Undo() == nil {
			return false
		}
		ed.Selection.Revalidate(ed.document)
		return true
	case Redo:
		if ed.Undo.Redo() == nil {
			return false
		}
		ed.Selection.Revalidate(ed.document)
		return true
	}
	j := ed.jobFor(a)
	if j == nil {
		return false
	}
	return ed.Execute(j)
}

// jobFor returns the job of an undoable action, or nil.
func (ed *Editor) jobFor(a Actions) job.Job {
	ctx := ed.ctx
	switch a {
	case Cut:
		return job.NewCut(ctx)
	case Paste:
		return job.NewPaste(ctx)
	case PasteInto:
		return job.NewPasteInto(ctx)
	case Delete:
		return job.NewDeleteSelection(ctx)
	case Duplicate:
		return job.NewDuplicate(ctx)
	case Trim:
		return job.NewTrim(ctx)
	case Unwrap:
		return job.NewUnwrap(ctx)
	case BringToFront:
		return job.NewReIndexSelection(ctx, job.BringToFront)
	case SendToBack:
		return job.NewReIndexSelection(ctx, job.SendToBack)
	case BringForward:
		return job.NewReIndexSelection(ctx, job.BringForward)
	case SendBackward:
		return job.NewReIndexSelection(ctx, job.SendBackward)
	case UseComputedSizes:
		return job.NewUseComputedSizes(ctx)
	case FitToParent:
		return job.NewFitToParent(ctx)
	case AddRowAbove, AddRowBelow, AddColumnBefore, AddColumnAfter:
		course := selection.Row
		if a == AddColumnBefore || a == AddColumnAfter {
			course = selection.Column
		}
		grid, index, ok := ed.gridLine(course, a == AddRowBelow || a == AddColumnAfter)
		if !ok {
			return nil
		}
		return job.NewInsertGridLine(ctx, grid, course, index)
	}
	return nil
}

// gridLine returns the GridPane and the index at which a line of the
// given course is inserted next to the selection: the selected rows or
// columns, or the single selected child of a GridPane.
func (ed *Editor) gridLine(course selection.Courses, after bool) (*fxom.Instance, int, bool) {
	var grid *fxom.Instance
	var indexes []int
	switch g := ed.Selection.Group().(type) {
	case *selection.GridGroup:
		if g.Course() != course || len(g.Indexes()) == 0 {
			return nil, 0, false
		}
		grid, indexes = g.Grid(), g.Indexes()
	case *selection.ObjectGroup:
		if g.Len() != 1 {
			return nil, 0, false
		}
		child := g.Items()[0]
		parent, ok := child.AsObject().ParentObject().(*fxom.Instance)
		if !ok || !ed.Catalog.IsAssignable(parent.Type, "GridPane") {
			return nil, 0, false
		}
		grid, indexes = parent, []int{course.ChildIndex(child, ed.Catalog)}
	default:
		return nil, 0, false
	}
	if after {
		return grid, slices.Max(indexes) + 1, true
	}
	return grid, slices.Min(indexes), true
}

// selectAll selects the siblings of the selected objects within their
// accessory, or the root when nothing or the root is selected.
func (ed *Editor) selectAll() bool {
	root := ed.document.Root()
	if root == nil {
		return false
	}
	anc := ed.Selection.Ancestor()
	if anc == nil {
		ed.Selection.SelectObjects(root)
		return true
	}
	m := mask.New(anc, ed.Catalog)
	var acc *metadata.Accessory
	if og := ed.Selection.Objects(); og != nil {
		acc = m.AccessoryOf(og.Items()[0])
	}
	objs := m.SubComponents(acc)
	if len(objs) == 0 {
		return false
	}
	ed.Selection.SelectObjects(objs...)
	return true
}
