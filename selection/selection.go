// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection holds what is selected in a document: a set of
// objects or a set of GridPane rows or columns.
package selection

import (
	"log/slog"
	"slices"

	"cogentcore.org/builder/fxom"
)

// Selection is the current selection of a document. Changes made
// between [Selection.BeginUpdate] and [Selection.EndUpdate] notify
// listeners once.
type Selection struct {
	group       Group
	revision    int
	updateDepth int
	changed     bool
	listeners   []func(s *Selection)
}

// New returns a new empty selection.
func New() *Selection {
	return &Selection{}
}

// Group returns the selected group, or nil if nothing is selected.
func (s *Selection) Group() Group {
	return s.group
}

// Revision returns the number of committed selection changes.
func (s *Selection) Revision() int {
	return s.revision
}

// OnChange adds a function called after each committed change.
func (s *Selection) OnChange(fun func(s *Selection)) {
	s.listeners = append(s.listeners, fun)
}

// IsEmpty returns whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return s.group == nil
}

// IsSelected returns whether the object is selected.
func (s *Selection) IsSelected(obj fxom.Object) bool {
	if og, ok := s.group.(*ObjectGroup); ok {
		return og.Contains(obj)
	}
	return false
}

// Objects returns the selected object group, or nil if the
// selection is empty or holds GridPane rows or columns.
func (s *Selection) Objects() *ObjectGroup {
	og, _ := s.group.(*ObjectGroup)
	return og
}

// Ancestor returns the common ancestor of the selected group, or nil.
func (s *Selection) Ancestor() fxom.Object {
	if s.group == nil {
		return nil
	}
	return s.group.Ancestor()
}

// Select replaces the selection with the given group. A nil group
// or an empty object group clears the selection.
func (s *Selection) Select(g Group) {
	if og, ok := g.(*ObjectGroup); ok && (og == nil || og.Len() == 0) {
		g = nil
	}
	s.BeginUpdate()
	s.group = g
	s.changed = true
	s.EndUpdate()
}

// SelectObjects selects the given objects.
func (s *Selection) SelectObjects(objs ...fxom.Object) {
	s.Select(Objects(objs...))
}

// Toggle adds the object to the selected objects, or removes it
// if it is already selected.
func (s *Selection) Toggle(obj fxom.Object) {
	og := s.Objects()
	if og == nil {
		s.SelectObjects(obj)
		return
	}
	items := og.Items()
	hit := obj
	if i := slices.Index(items, obj); i >= 0 {
		items = slices.Delete(items, i, i+1)
		hit = nil
	} else {
		items = append(items, obj)
	}
	s.Select(NewObjectGroup(items, hit, nil))
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.Select(nil)
}

// BeginUpdate starts a transaction. Calls nest.
func (s *Selection) BeginUpdate() {
	s.updateDepth++
}

// EndUpdate ends a transaction. The outermost call notifies listeners
// if the selection changed.
func (s *Selection) EndUpdate() {
	if s.updateDepth <= 0 {
		panic("selection.EndUpdate: no update is ongoing")
	}
	s.updateDepth--
	if s.updateDepth > 0 || !s.changed {
		return
	}
	s.changed = false
	s.revision++
	for _, fun := range s.listeners {
		fun(s)
	}
}

// Revalidate drops the selected objects that are no longer part of
// the given document. It is meant to be called after the document
// changed outside of the editing jobs, such as a reload.
func (s *Selection) Revalidate(d *fxom.Document) {
	switch g := s.group.(type) {
	case *ObjectGroup:
		items := slices.DeleteFunc(g.Items(), func(obj fxom.Object) bool {
			return !inDocument(obj, d)
		})
		if len(items) != g.Len() {
			slog.Debug("selection: dropping stale objects", "n", g.Len()-len(items))
			hit := g.Hit()
			if !slices.Contains(items, hit) {
				hit = nil
			}
			s.Select(NewObjectGroup(items, hit, g.Extra()))
		}
	case *GridGroup:
		if !inDocument(g.Grid(), d) {
			s.Clear()
		}
	}
}

func inDocument(obj fxom.Object, d *fxom.Document) bool {
	ob := obj.AsObject()
	if ob.Document() != d || d.Root() == nil {
		return false
	}
	return ob.IsRoot() || ob.IsDescendantOf(d.Root())
}
