// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"time"

	"golang.org/x/exp/maps"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/scenegraph"
	"cogentcore.org/builder/selection"
)

// Merger is implemented by jobs that can absorb the job executed right
// after them into a single undo step.
type Merger interface {
	Job

	// Merge absorbs the next job and returns whether it did. The next
	// job must then be dropped by the caller.
	Merge(next Job) bool
}

// Relocate moves objects to new layout positions. In an AnchorPane the
// anchors an object already has are recomputed from its new position.
// Two relocations of the same objects executed within the merge window
// of the context merge into one.
type Relocate struct {
	Base
	moves map[fxom.Object]geom.Vector2
	jobs  []*ModifyObject
	time  time.Time
}

// NewRelocate returns a job moving each object to its new layout position.
func NewRelocate(ctx *Context, moves map[fxom.Object]geom.Vector2) *Relocate {
	r := &Relocate{moves: moves}
	r.init(r, ctx)
	return r
}

// Description returns the description of the job.
func (r *Relocate) Description() string {
	if len(r.moves) == 1 {
		return "Relocate"
	}
	return fmt.Sprintf("Relocate %d Objects", len(r.moves))
}

var anchorNames = []string{"topAnchor", "rightAnchor", "bottomAnchor", "leftAnchor"}

func (r *Relocate) build() bool {
	objs := selection.Objects(maps.Keys(r.moves)...).SortedItems()
	for _, obj := range objs {
		inst, ok := obj.(*fxom.Instance)
		if !ok || inst.Document() != r.ctx.Document {
			continue
		}
		pos := r.moves[obj]
		for _, j := range setLayout(r.ctx, inst, pos.X, pos.Y) {
			r.add(j.(*ModifyObject))
		}
		parent, _ := inst.ParentObject().(*fxom.Instance)
		if parent == nil || !r.ctx.Catalog.IsAssignable(parent.Type, "AnchorPane") {
			continue
		}
		anchors := anchorsAt(inst, parent, pos)
		for _, name := range anchorNames {
			pn := fxom.StaticPropName("AnchorPane", name)
			if inst.PropertyT(pn) == nil {
				continue
			}
			r.add(NewModifyObject(r.ctx, inst, pn, anchors[name]))
		}
	}
	return len(r.jobs) > 0
}

func (r *Relocate) add(j *ModifyObject) {
	if j.IsExecutable() {
		r.jobs = append(r.jobs, j)
	}
}

// anchorsAt returns the anchor values of the instance placed at the
// given position in the parent.
func anchorsAt(inst, parent *fxom.Instance, pos geom.Vector2) map[string]string {
	var lb, plb geom.Box2
	if n := scenegraph.NodeOf(inst); n != nil {
		lb = n.LayoutBounds()
	}
	if pn := scenegraph.NodeOf(parent); pn != nil {
		plb = pn.LayoutBounds()
	}
	return map[string]string{
		"leftAnchor":   metadata.FormatDouble(pos.X + lb.Min.X - plb.Min.X),
		"topAnchor":    metadata.FormatDouble(pos.Y + lb.Min.Y - plb.Min.Y),
		"rightAnchor":  metadata.FormatDouble(plb.Max.X - (pos.X + lb.Max.X)),
		"bottomAnchor": metadata.FormatDouble(plb.Max.Y - (pos.Y + lb.Max.Y)),
	}
}

func (r *Relocate) execute() {
	r.time = r.ctx.now()
	for _, j := range r.jobs {
		j.Execute()
	}
}

func (r *Relocate) undo() {
	for i := len(r.jobs) - 1; i >= 0; i-- {
		r.jobs[i].Undo()
	}
}

func (r *Relocate) redo() {
	for _, j := range r.jobs {
		j.Redo()
	}
}

// Merge absorbs the next job if it is an applied relocation of the
// same objects executed within the merge window. The merged job undoes
// to the positions before this job and redoes to the positions after
// the next one.
func (r *Relocate) Merge(next Job) bool {
	n, ok := next.(*Relocate)
	if !ok || n == r || r.state != Applied || n.state != Applied {
		return false
	}
	if len(r.moves) != len(n.moves) {
		return false
	}
	for _, obj := range maps.Keys(n.moves) {
		if _, has := r.moves[obj]; !has {
			return false
		}
	}
	if dt := n.time.Sub(r.time); dt < 0 || dt >= r.ctx.mergeWindow() {
		return false
	}
	for _, nj := range n.jobs {
		merged := false
		for _, rj := range r.jobs {
			if rj.instance == nj.instance && rj.name == nj.name {
				rj.value = nj.value
				merged = true
				break
			}
		}
		if !merged {
			r.jobs = append(r.jobs, nj)
		}
	}
	r.moves = n.moves
	r.time = n.time
	return true
}
