// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/metadata"
)

// Group is an immutable set of selected things: objects,
// or rows or columns of a GridPane.
type Group interface {
	fmt.Stringer

	// Items returns the objects of the group.
	Items() []fxom.Object

	// Ancestor returns the closest object containing every item
	// of the group, or nil if the group includes the root.
	Ancestor() fxom.Object

	isGroup()
}

// ObjectGroup is a group of selected objects, with the object
// that was hit to make the selection.
type ObjectGroup struct {
	items []fxom.Object
	hit   fxom.Object
	extra any
}

// NewObjectGroup returns a group of the given objects. The hit object
// defaults to the first item and extra is opaque hit detail.
func NewObjectGroup(items []fxom.Object, hit fxom.Object, extra any) *ObjectGroup {
	og := &ObjectGroup{items: slices.Clone(items), hit: hit, extra: extra}
	if og.hit == nil && len(items) > 0 {
		og.hit = items[0]
	}
	return og
}

// Objects returns a group of the given objects.
func Objects(items ...fxom.Object) *ObjectGroup {
	return NewObjectGroup(items, nil, nil)
}

func (og *ObjectGroup) isGroup() {}

func (og *ObjectGroup) String() string {
	var b strings.Builder
	b.WriteString("selection.Objects(")
	for i, it := range og.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.AsObject().String())
	}
	b.WriteString(")")
	return b.String()
}

// Items returns the selected objects in selection order.
func (og *ObjectGroup) Items() []fxom.Object {
	return slices.Clone(og.items)
}

// Len returns the number of selected objects.
func (og *ObjectGroup) Len() int {
	return len(og.items)
}

// Hit returns the object that was hit to make the selection.
func (og *ObjectGroup) Hit() fxom.Object {
	return og.hit
}

// Extra returns the hit detail recorded with the selection.
func (og *ObjectGroup) Extra() any {
	return og.extra
}

// Contains returns whether the object is one of the items.
func (og *ObjectGroup) Contains(obj fxom.Object) bool {
	return slices.Contains(og.items, obj)
}

// SortedItems returns the items in document order.
func (og *ObjectGroup) SortedItems() []fxom.Object {
	items := slices.Clone(og.items)
	if len(items) < 2 {
		return items
	}
	order := map[fxom.Object]int{}
	for i, obj := range items[0].AsObject().Document().CollectObjects() {
		order[obj] = i
	}
	slices.SortStableFunc(items, func(a, b fxom.Object) int {
		return order[a] - order[b]
	})
	return items
}

// FlattenedItems returns the items in document order, without the
// items that are descendants of other items.
func (og *ObjectGroup) FlattenedItems() []fxom.Object {
	items := og.SortedItems()
	return slices.DeleteFunc(items, func(obj fxom.Object) bool {
		return slices.ContainsFunc(og.items, func(o fxom.Object) bool {
			return o != obj && obj.AsObject().IsDescendantOf(o)
		})
	})
}

// HasSingleParent returns whether all the items share the same parent object.
func (og *ObjectGroup) HasSingleParent() bool {
	if len(og.items) == 0 {
		return false
	}
	p := og.items[0].AsObject().ParentObject()
	for _, it := range og.items[1:] {
		if it.AsObject().ParentObject() != p {
			return false
		}
	}
	return p != nil || len(og.items) == 1
}

// Ancestor returns the deepest object that is a strict ancestor of
// every item, or nil if an item is the root.
func (og *ObjectGroup) Ancestor() fxom.Object {
	if len(og.items) == 0 {
		return nil
	}
	var chain []fxom.Object
	for p := og.items[0].AsObject().ParentObject(); p != nil; p = p.AsObject().ParentObject() {
		chain = append(chain, p)
	}
	for _, c := range chain {
		if !slices.ContainsFunc(og.items, func(it fxom.Object) bool { return !it.AsObject().IsDescendantOf(c) }) {
			return c
		}
	}
	return nil
}

// Courses is the kind of GridPane line selected by a [GridGroup].
type Courses int32

const (
	// Row selects rows.
	Row Courses = iota

	// Column selects columns.
	Column

	// CoursesN is the number of courses.
	CoursesN
)

func (c Courses) String() string {
	switch c {
	case Row:
		return "Row"
	case Column:
		return "Column"
	}
	return "Courses(" + strconv.Itoa(int(c)) + ")"
}

// GridGroup is a group of selected rows or columns of a GridPane.
type GridGroup struct {
	grid    *fxom.Instance
	course  Courses
	indexes []int
}

// NewGridGroup returns a group of the given rows or columns of the grid.
func NewGridGroup(grid *fxom.Instance, course Courses, indexes ...int) *GridGroup {
	idx := slices.Clone(indexes)
	slices.Sort(idx)
	return &GridGroup{grid: grid, course: course, indexes: slices.Compact(idx)}
}

func (gg *GridGroup) isGroup() {}

func (gg *GridGroup) String() string {
	return fmt.Sprintf("selection.Grid(%s %s %v)", gg.grid, gg.course, gg.indexes)
}

// Grid returns the GridPane.
func (gg *GridGroup) Grid() *fxom.Instance {
	return gg.grid
}

// Course returns whether rows or columns are selected.
func (gg *GridGroup) Course() Courses {
	return gg.course
}

// Indexes returns the sorted selected row or column indexes.
func (gg *GridGroup) Indexes() []int {
	return slices.Clone(gg.indexes)
}

// Items returns the GridPane.
func (gg *GridGroup) Items() []fxom.Object {
	return []fxom.Object{gg.grid}
}

// Ancestor returns the GridPane.
func (gg *GridGroup) Ancestor() fxom.Object {
	return gg.grid
}

// IndexProperty returns the static property giving the row or column
// index of a GridPane child.
func (c Courses) IndexProperty() fxom.PropertyName {
	if c == Column {
		return fxom.StaticPropName("GridPane", "columnIndex")
	}
	return fxom.StaticPropName("GridPane", "rowIndex")
}

// ConstraintsAccessory returns the name of the GridPane accessory
// holding the constraints of the course.
func (c Courses) ConstraintsAccessory() string {
	if c == Column {
		return "columnConstraints"
	}
	return "rowConstraints"
}

// ChildIndex returns the row or column index of a GridPane child.
func (c Courses) ChildIndex(child fxom.Object, cat *metadata.Catalog) int {
	inst, ok := child.(*fxom.Instance)
	if !ok {
		return 0
	}
	vp := cat.QueryValueProperty(inst, c.IndexProperty())
	if vp == nil {
		return 0
	}
	return int(vp.Float(inst))
}

// SelectedChildren returns the children of the GridPane lying in
// the selected rows or columns.
func (gg *GridGroup) SelectedChildren(cat *metadata.Catalog) []fxom.Object {
	pc := gg.grid.PropertyC(fxom.PropName("children"))
	if pc == nil {
		return nil
	}
	var res []fxom.Object
	for _, c := range pc.Values() {
		if slices.Contains(gg.indexes, gg.course.ChildIndex(c, cat)) {
			res = append(res, c)
		}
	}
	return res
}
