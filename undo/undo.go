// Copyright (c) 2021, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides the undo manager of an editor: the stack of
// executed jobs that can be undone and redone.
package undo

import (
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"cogentcore.org/builder/job"
)

// DefaultLimit is the default maximum number of undo records.
var DefaultLimit = 100

// Rec is one undo record, associated with one job that changed the
// document from one state to the next.
type Rec struct {

	// ID identifies the record.
	ID ulid.ULID

	// Job is the executed job.
	Job job.Job

	// Time is when the job was executed.
	Time time.Time
}

// Action returns the description of the job, for the user to see.
func (r *Rec) Action() string {
	return r.Job.Description()
}

// Mgr is the undo manager, managing the undo / redo process
type Mgr struct {

	// Idx is the current index in the undo records: this is the record
	// that will be undone if the user hits undo, or -1 if there is none.
	Idx int

	// Recs is the list of saved job records.
	Recs []*Rec

	// Limit is the maximum number of records kept; 0 means [DefaultLimit].
	Limit int

	// Mu is the mutex that protects updates.
	Mu sync.Mutex

	revision  int
	listeners []func(um *Mgr)
}

// New returns a new empty undo manager.
func New() *Mgr {
	return &Mgr{Idx: -1}
}

func (um *Mgr) limit() int {
	if um.Limit > 0 {
		return um.Limit
	}
	return DefaultLimit
}

// Revision returns a counter that increases every time the records or
// the index change.
func (um *Mgr) Revision() int {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.revision
}

// OnChange adds a function called after the records or the index change.
func (um *Mgr) OnChange(fun func(um *Mgr)) {
	um.Mu.Lock()
	um.listeners = append(um.listeners, fun)
	um.Mu.Unlock()
}

// changed bumps the revision and returns the listeners to call once the
// lock is released. Must be called under lock.
func (um *Mgr) changed() []func(um *Mgr) {
	um.revision++
	return um.listeners
}

func (um *Mgr) notify(ls []func(um *Mgr)) {
	for _, fun := range ls {
		fun(um)
	}
}

// Execute executes the given job and saves it as the next record to be
// undone, dropping the records that could be redone. A job that merges
// into the current record does not add one. It returns false, without
// doing anything, if the job is not executable.
func (um *Mgr) Execute(j job.Job) bool {
	if !j.IsExecutable() {
		slog.Debug("undo: job is not executable", "job", j.Description())
		return false
	}
	j.Execute()

	um.Mu.Lock()
	if um.Idx >= 0 && um.Idx == len(um.Recs)-1 {
		cur := um.Recs[um.Idx]
		if m, ok := cur.Job.(job.Merger); ok && m.Merge(j) {
			cur.Time = time.Now()
			ls := um.changed()
			um.Mu.Unlock()
			um.notify(ls)
			return true
		}
	}
	// recs will be [old..., Idx] after this
	um.Recs = append(um.Recs[:um.Idx+1], &Rec{ID: ulid.Make(), Job: j, Time: time.Now()})
	if over := len(um.Recs) - um.limit(); over > 0 {
		um.Recs = um.Recs[over:]
	}
	um.Idx = len(um.Recs) - 1
	ls := um.changed()
	um.Mu.Unlock()
	um.notify(ls)
	return true
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr) IsUndoAvail() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Idx >= 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr) IsRedoAvail() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Idx < len(um.Recs)-1
}

// UndoAction returns the description of the job that would be undone,
// or "" if there is none.
func (um *Mgr) UndoAction() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx < 0 {
		return ""
	}
	return um.Recs[um.Idx].Action()
}

// RedoAction returns the description of the job that would be redone,
// or "" if there is none.
func (um *Mgr) RedoAction() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx >= len(um.Recs)-1 {
		return ""
	}
	return um.Recs[um.Idx+1].Action()
}

// Current returns the record that would be undone, or nil.
func (um *Mgr) Current() *Rec {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx < 0 {
		return nil
	}
	return um.Recs[um.Idx]
}

// Undo undoes the job at the current index and decrements the index to
// point to the previous record. It returns the undone record, or nil if
// already at the start (Idx = -1).
func (um *Mgr) Undo() *Rec {
	um.Mu.Lock()
	if um.Idx < 0 {
		um.Mu.Unlock()
		return nil
	}
	rec := um.Recs[um.Idx]
	um.Idx--
	ls := um.changed()
	um.Mu.Unlock()
	rec.Job.Undo()
	um.notify(ls)
	return rec
}

// Redo redoes the job at the next index, returning nil if already at
// the end of the saved records.
func (um *Mgr) Redo() *Rec {
	um.Mu.Lock()
	if um.Idx >= len(um.Recs)-1 {
		um.Mu.Unlock()
		return nil
	}
	um.Idx++
	rec := um.Recs[um.Idx]
	ls := um.changed()
	um.Mu.Unlock()
	rec.Job.Redo()
	um.notify(ls)
	return rec
}

// Reset drops all the records, as when a new document is loaded.
func (um *Mgr) Reset() {
	um.Mu.Lock()
	um.Recs = nil
	um.Idx = -1
	ls := um.changed()
	um.Mu.Unlock()
	um.notify(ls)
}
