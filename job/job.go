// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package job provides the undoable edits of a document. Every edit is a
// [Job]: atomic jobs make one reversible change of the document graph,
// and batch and inline jobs compose other jobs into one user action.
//
// A job is planned by its constructor, built the first time
// [Job.IsExecutable] is called, and then executed, undone and redone
// in that cyclic order. Calling [Job.Execute] on a job that is not
// executable, or calling the methods out of order, panics.
package job

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"cogentcore.org/builder/clipboard"
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/selection"
)

// DefaultMergeWindow is the maximum delay between two relocations
// of the same objects for them to merge into one undo step.
const DefaultMergeWindow = 1000 * time.Millisecond

// Context is the editing state every job operates on.
type Context struct {

	// Document is the edited document.
	Document *fxom.Document

	// Selection is the selection of the document. It may be nil
	// when no selection is tracked.
	Selection *selection.Selection

	// Catalog describes the component classes.
	Catalog *metadata.Catalog

	// Clipboard is used by cut and paste.
	Clipboard clipboard.Clipboard

	// Now returns the current time; nil means [time.Now].
	Now func() time.Time

	// MergeWindow is the relocate merge window; 0 means [DefaultMergeWindow].
	MergeWindow time.Duration
}

// NewContext returns a context editing the given document with a new
// selection, the built-in catalog and an in-memory clipboard.
func NewContext(d *fxom.Document) *Context {
	return &Context{Document: d, Selection: selection.New(), Catalog: metadata.NewCatalog(), Clipboard: &clipboard.Memory{}}
}

func (ctx *Context) now() time.Time {
	if ctx.Now != nil {
		return ctx.Now()
	}
	return time.Now()
}

func (ctx *Context) mergeWindow() time.Duration {
	if ctx.MergeWindow > 0 {
		return ctx.MergeWindow
	}
	return DefaultMergeWindow
}

func (ctx *Context) beginUpdate() {
	ctx.Document.BeginUpdate()
	if ctx.Selection != nil {
		ctx.Selection.BeginUpdate()
	}
}

func (ctx *Context) endUpdate() {
	if ctx.Selection != nil {
		ctx.Selection.EndUpdate()
	}
	ctx.Document.EndUpdate()
}

// Job is an undoable edit of a document.
type Job interface {

	// IsExecutable returns whether the job can be executed. The first
	// call builds the job; later calls return the same answer.
	IsExecutable() bool

	// Execute applies the job.
	Execute()

	// Undo reverts the job.
	Undo()

	// Redo applies the job again after it was undone.
	Redo()

	// Description returns a short description of the job for menus.
	Description() string

	// State returns the lifecycle state of the job.
	State() States
}

// States are the lifecycle states of a [Job].
type States int32

const (
	// Planned jobs have their parameters set.
	Planned States = iota

	// Built jobs know their sub-jobs and whether they are executable.
	Built

	// Applied jobs have been executed or redone.
	Applied

	// Undone jobs have been undone.
	Undone

	// StatesN is the number of states.
	StatesN
)

var stateNames = [...]string{"Planned", "Built", "Applied", "Undone"}

func (s States) String() string {
	if s >= 0 && s < StatesN {
		return stateNames[s]
	}
	return "States(" + strconv.Itoa(int(s)) + ")"
}

// impl is implemented by every concrete job.
type impl interface {
	Job

	// build checks preconditions and captures the state needed to undo.
	build() bool
	execute()
	undo()
	redo()
}

// Base implements the lifecycle of [Job]. Concrete jobs embed it and
// provide build, execute, undo and redo.
type Base struct {
	ctx        *Context
	this       impl
	state      States
	executable bool
}

func (b *Base) init(this impl, ctx *Context) {
	b.this = this
	b.ctx = ctx
}

// Context returns the context of the job.
func (b *Base) Context() *Context {
	return b.ctx
}

// State returns the lifecycle state of the job.
func (b *Base) State() States {
	return b.state
}

// IsExecutable returns whether the job can be executed.
func (b *Base) IsExecutable() bool {
	if b.state == Planned {
		b.executable = b.this.build()
		b.state = Built
	}
	return b.executable
}

// Execute applies the job inside one document update.
func (b *Base) Execute() {
	if !b.IsExecutable() {
		panic(fmt.Sprintf("job.Execute: %s is not executable", b.this.Description()))
	}
	b.transition(Built, Applied, "execute", b.this.execute)
}

// Undo reverts the job inside one document update.
func (b *Base) Undo() {
	b.transition(Applied, Undone, "undo", b.this.undo)
}

// Redo applies the job again inside one document update.
func (b *Base) Redo() {
	b.transition(Undone, Applied, "redo", b.this.redo)
}

func (b *Base) transition(from, to States, verb string, fun func()) {
	if b.state != from {
		panic(fmt.Sprintf("job.%s: %s is %s, not %s", verb, b.this.Description(), b.state, from))
	}
	b.ctx.beginUpdate()
	fun()
	b.ctx.endUpdate()
	b.state = to
	slog.Debug("job: "+verb, "job", b.this.Description())
}

// redo defaults to execute.
func (b *Base) redo() {
	b.this.execute()
}
