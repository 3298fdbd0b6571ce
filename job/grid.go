// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/selection"
)

const (
	// GridFuzz is how much two items may overlap along a course and
	// still start a new row or column.
	GridFuzz = 5.0

	// GridMinSize is the minimum size of a computed row or column.
	GridMinSize = 10.0
)

// GridPlacement is the row and column layout inferred from the bounds
// of items to be placed in a GridPane.
type GridPlacement struct {

	// Columns is the column index of each item.
	Columns []int

	// Rows is the row index of each item.
	Rows []int

	// ColumnWidths is the width of each column.
	ColumnWidths []float64

	// RowHeights is the height of each row.
	RowHeights []float64
}

// NewGridPlacement clusters the items with the given bounds into rows
// and columns. Items are visited column by column to assign columns,
// and row by row to assign rows; an item starts a new column when its
// left edge is past the right edge of the current column minus
// [GridFuzz], and likewise for rows. Sizes are floored at [GridMinSize].
func NewGridPlacement(bounds []geom.Box2) *GridPlacement {
	gp := &GridPlacement{}
	gp.Columns, gp.ColumnWidths = placeCourse(bounds,
		func(b geom.Box2) (float64, float64, float64) { return b.Min.X, b.Max.X, b.Min.Y })
	gp.Rows, gp.RowHeights = placeCourse(bounds,
		func(b geom.Box2) (float64, float64, float64) { return b.Min.Y, b.Max.Y, b.Min.X })
	return gp
}

// placeCourse assigns course indices to the bounds; extent returns the
// start and end of a box along the course and its start across it.
func placeCourse(bounds []geom.Box2, extent func(b geom.Box2) (lo, hi, across float64)) ([]int, []float64) {
	order := make([]int, len(bounds))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		alo, _, aac := extent(bounds[a])
		blo, _, bac := extent(bounds[b])
		if c := cmp.Compare(alo, blo); c != 0 {
			return c
		}
		return cmp.Compare(aac, bac)
	})
	index := make([]int, len(bounds))
	var sizes []float64
	course := -1
	end := math.Inf(-1)
	for _, i := range order {
		lo, hi, _ := extent(bounds[i])
		if course < 0 || lo >= end-GridFuzz {
			course++
			end = hi
			sizes = append(sizes, GridMinSize)
		} else {
			end = max(end, hi)
		}
		index[i] = course
		sizes[course] = max(sizes[course], hi-lo)
	}
	return index, sizes
}

// NumColumns returns the number of columns.
func (gp *GridPlacement) NumColumns() int {
	return len(gp.ColumnWidths)
}

// NumRows returns the number of rows.
func (gp *GridPlacement) NumRows() int {
	return len(gp.RowHeights)
}

// constraints returns the constraints objects of the placement, built
// in the document of the grid.
func (gp *GridPlacement) constraints(d *fxom.Document) (cols, rows []fxom.Object) {
	for _, w := range gp.ColumnWidths {
		cols = append(cols, newConstraints(d, selection.Column, w))
	}
	for _, h := range gp.RowHeights {
		rows = append(rows, newConstraints(d, selection.Row, h))
	}
	return
}

// newConstraints returns a column or row constraints object growing
// sometimes, with the minimum size and the given preferred size.
func newConstraints(d *fxom.Document, course selection.Courses, size float64) *fxom.Instance {
	typ, grow, minName, prefName := "RowConstraints", "vgrow", "minHeight", "prefHeight"
	if course == selection.Column {
		typ, grow, minName, prefName = "ColumnConstraints", "hgrow", "minWidth", "prefWidth"
	}
	inst := fxom.NewInstance(d, typ)
	fxom.NewPropertyT(d, fxom.PropName(grow), "SOMETIMES").AddToParentInstance(-1, inst)
	fxom.NewPropertyT(d, fxom.PropName(minName), metadata.FormatDouble(GridMinSize)).AddToParentInstance(-1, inst)
	fxom.NewPropertyT(d, fxom.PropName(prefName), metadata.FormatDouble(max(size, GridMinSize))).AddToParentInstance(-1, inst)
	return inst
}

// gridChildren returns the children of the GridPane.
func gridChildren(grid *fxom.Instance) []fxom.Object {
	if pc := grid.PropertyC(fxom.PropName("children")); pc != nil {
		return pc.Values()
	}
	return nil
}

// NewInsertGridLine returns a job inserting an empty row or column in
// the GridPane at the given index, moving the children at or after it.
func NewInsertGridLine(ctx *Context, grid *fxom.Instance, course selection.Courses, index int) *Batch {
	desc := fmt.Sprintf("Insert %s", course)
	return NewBatch(ctx, desc, func() []Job {
		if grid.Document() != ctx.Document || !ctx.Catalog.IsAssignable(grid.Type, "GridPane") || index < 0 {
			return nil
		}
		var res []Job
		for _, c := range gridChildren(grid) {
			inst, ok := c.(*fxom.Instance)
			if !ok {
				continue
			}
			if ci := course.ChildIndex(c, ctx.Catalog); ci >= index {
				res = append(res, NewModifyObject(ctx, inst, course.IndexProperty(), strconv.Itoa(ci+1)))
			}
		}
		pc := grid.PropertyC(fxom.PropName(course.ConstraintsAccessory()))
		if pc != nil && index <= pc.NumValues() {
			scratch := fxom.NewDocument()
			cons := newConstraints(scratch, course, GridMinSize)
			cons.MoveToDocument(ctx.Document)
			res = append(res, NewAddPropertyValue(ctx, cons, pc, index))
		}
		if len(res) == 0 {
			// an empty line past the last one changes nothing
			return nil
		}
		return append(res, NewUpdateSelection(ctx, selection.NewGridGroup(grid, course, index)))
	})
}

// NewDeleteGridLines returns a job deleting the selected rows or
// columns of a GridPane with their children, moving the following
// children back.
func NewDeleteGridLines(ctx *Context, gg *selection.GridGroup) *Batch {
	course := gg.Course()
	grid := gg.Grid()
	deleted := gg.Indexes()
	desc := fmt.Sprintf("Delete %s", course)
	if len(deleted) > 1 {
		desc += "s"
	}
	return NewBatch(ctx, desc, func() []Job {
		if len(deleted) == 0 || grid.Document() != ctx.Document {
			return nil
		}
		var res []Job
		for _, c := range gridChildren(grid) {
			ci := course.ChildIndex(c, ctx.Catalog)
			if slices.Contains(deleted, ci) {
				del := NewDeleteObject(ctx, c)
				if !del.IsExecutable() {
					return nil
				}
				res = append(res, del)
				continue
			}
			before := 0
			for _, di := range deleted {
				if di < ci {
					before++
				}
			}
			if inst, ok := c.(*fxom.Instance); ok && before > 0 {
				res = append(res, NewModifyObject(ctx, inst, course.IndexProperty(), strconv.Itoa(ci-before)))
			}
		}
		if pc := grid.PropertyC(fxom.PropName(course.ConstraintsAccessory())); pc != nil {
			for i, cons := range pc.Values() {
				if slices.Contains(deleted, i) {
					res = append(res, NewRemovePropertyValue(ctx, cons))
				}
			}
		}
		if len(res) == 0 {
			return nil
		}
		return append(res, NewUpdateSelection(ctx, nil))
	})
}
