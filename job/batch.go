// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"slices"

	"cogentcore.org/builder/selection"
)

// Batch is a job made of sub-jobs computed when the batch is built.
// Sub-jobs run in order on execute and redo, and in reverse order on
// undo. A batch without sub-jobs is not executable. A sub-job that is
// not executable when its turn comes is skipped.
type Batch struct {
	Base
	description string
	makeSubJobs func() []Job
	subJobs     []Job
	applied     []Job
}

// NewBatch returns a batch whose sub-jobs are made by the given function.
func NewBatch(ctx *Context, description string, makeSubJobs func() []Job) *Batch {
	b := &Batch{description: description, makeSubJobs: makeSubJobs}
	b.init(b, ctx)
	return b
}

// Description returns the description of the batch.
func (b *Batch) Description() string {
	return b.description
}

// SubJobs returns the sub-jobs of a built batch.
func (b *Batch) SubJobs() []Job {
	return slices.Clone(b.subJobs)
}

func (b *Batch) build() bool {
	b.subJobs = slices.DeleteFunc(b.makeSubJobs(), func(j Job) bool { return j == nil })
	return len(b.subJobs) > 0
}

func (b *Batch) execute() {
	b.applied = b.applied[:0]
	for _, j := range b.subJobs {
		if j.IsExecutable() {
			j.Execute()
			b.applied = append(b.applied, j)
		}
	}
}

func (b *Batch) undo() {
	for i := len(b.applied) - 1; i >= 0; i-- {
		b.applied[i].Undo()
	}
}

func (b *Batch) redo() {
	for _, j := range b.applied {
		j.Redo()
	}
}

// Inline is a job whose sub-jobs are made while it executes, so that
// later sub-jobs can depend on the effect of earlier ones. Undo and
// redo replay the recorded sub-jobs like a [Batch].
type Inline struct {
	Base
	description string
	check       func() bool
	run         func(do func(j Job) bool)
	applied     []Job
}

// NewInline returns an inline job. The check function decides whether
// the job is executable. The run function executes sub-jobs through
// the do function it receives, which runs and records a sub-job if it
// is executable and returns whether it did.
func NewInline(ctx *Context, description string, check func() bool, run func(do func(j Job) bool)) *Inline {
	in := &Inline{description: description, check: check, run: run}
	in.init(in, ctx)
	return in
}

// Description returns the description of the job.
func (in *Inline) Description() string {
	return in.description
}

// SubJobs returns the sub-jobs executed so far.
func (in *Inline) SubJobs() []Job {
	return slices.Clone(in.applied)
}

func (in *Inline) build() bool {
	return in.check()
}

func (in *Inline) execute() {
	in.applied = in.applied[:0]
	in.run(func(j Job) bool {
		if j == nil || !j.IsExecutable() {
			return false
		}
		j.Execute()
		in.applied = append(in.applied, j)
		return true
	})
}

func (in *Inline) undo() {
	for i := len(in.applied) - 1; i >= 0; i-- {
		in.applied[i].Undo()
	}
}

func (in *Inline) redo() {
	for _, j := range in.applied {
		j.Redo()
	}
}

// UpdateSelection selects a group and restores the previous
// selection on undo.
type UpdateSelection struct {
	Base
	group selection.Group
	old   selection.Group
}

// NewUpdateSelection returns a job selecting the given group;
// nil clears the selection.
func NewUpdateSelection(ctx *Context, group selection.Group) *UpdateSelection {
	us := &UpdateSelection{group: group}
	us.init(us, ctx)
	return us
}

// Description returns the description of the job.
func (us *UpdateSelection) Description() string {
	return "Update Selection"
}

func (us *UpdateSelection) build() bool {
	return us.ctx.Selection != nil
}

func (us *UpdateSelection) execute() {
	us.old = us.ctx.Selection.Group()
	us.ctx.Selection.Select(us.group)
}

func (us *UpdateSelection) undo() {
	us.ctx.Selection.Select(us.old)
}

func (us *UpdateSelection) redo() {
	us.ctx.Selection.Select(us.group)
}
