// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fxom provides the FXOM document model: a graph of
// [Object] nodes connected through [Property] values that mirrors
// a loaded FXML user interface definition, together with the
// begin / end update transactions that keep the derived live
// objects and observers consistent.
package fxom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Resolver rebuilds the live objects of a document. It is called
// at the end of each outermost update transaction.
type Resolver func(d *Document)

// Document is the root container of the FXOM graph.
type Document struct {

	// Location is the file path or URL the document was loaded from, if any.
	Location string

	// Version is the toolkit version declared by the default xmlns
	// of the document, if any.
	Version *semver.Version

	// Imports are the declared import processing instructions, in order.
	Imports []string

	root        Object
	revision    int
	updateDepth int
	resolver    Resolver
	listeners   []func(d *Document)
}

// NewDocument returns a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// Root returns the root object of the document, which is nil
// when the document is empty.
func (d *Document) Root() Object {
	return d.root
}

// SetRoot makes the given object the root of the document.
// The object must belong to this document and be detached.
// A nil object empties the document.
func (d *Document) SetRoot(obj Object) {
	if obj != nil {
		ob := obj.AsObject()
		if ob.document != d {
			panic("fxom.Document.SetRoot: object belongs to another document")
		}
		if ob.IsAttached() {
			panic("fxom.Document.SetRoot: object is attached to a parent")
		}
	}
	d.BeginUpdate()
	d.root = obj
	d.EndUpdate()
}

// SetResolver sets the function used to rebuild live objects.
func (d *Document) SetResolver(r Resolver) {
	d.resolver = r
	d.Refresh()
}

// OnChange adds a function called once at the end of each
// outermost update transaction.
func (d *Document) OnChange(fun func(d *Document)) {
	d.listeners = append(d.listeners, fun)
}

// SceneGraphRevision returns the revision counter, which is
// incremented once per committed update transaction.
func (d *Document) SceneGraphRevision() int {
	return d.revision
}

// BeginUpdate starts an update transaction. Calls nest; see [Document.EndUpdate].
func (d *Document) BeginUpdate() {
	d.updateDepth++
}

// EndUpdate ends an update transaction. Only the outermost call
// re-resolves live objects, bumps the revision and notifies listeners.
func (d *Document) EndUpdate() {
	if d.updateDepth <= 0 {
		panic("fxom.Document.EndUpdate: no update is ongoing")
	}
	d.updateDepth--
	if d.updateDepth > 0 {
		return
	}
	d.Refresh()
	d.revision++
	for _, fun := range d.listeners {
		fun(d)
	}
}

// IsUpdateOngoing returns whether an update transaction is open.
func (d *Document) IsUpdateOngoing() bool {
	return d.updateDepth > 0
}

// Refresh re-resolves live objects without bumping the revision.
func (d *Document) Refresh() {
	if d.resolver != nil {
		d.resolver(d)
	}
}

// Walk calls the given function on every object of the document
// in document order, starting with the root.
func (d *Document) Walk(fun func(obj Object) bool) {
	if d.root == nil {
		return
	}
	d.root.AsObject().WalkDown(fun)
}

// CollectObjects returns all objects of the document in document order.
func (d *Document) CollectObjects() []Object {
	var objs []Object
	d.Walk(func(obj Object) bool {
		objs = append(objs, obj)
		return Continue
	})
	return objs
}

// SearchWithFxID returns the first object with the given fx:id, or nil.
func (d *Document) SearchWithFxID(id string) Object {
	var res Object
	d.Walk(func(obj Object) bool {
		if obj.AsObject().fxID == id {
			res = obj
			return Break
		}
		return Continue
	})
	return res
}

// CollectFxIDs returns all the fx:id values of the document
// mapped to the first object holding each.
func (d *Document) CollectFxIDs() map[string]Object {
	ids := map[string]Object{}
	d.Walk(func(obj Object) bool {
		id := obj.AsObject().fxID
		if _, has := ids[id]; id != "" && !has {
			ids[id] = obj
		}
		return Continue
	})
	return ids
}

// UniqueFxID returns an fx:id derived from the given base that
// is not used by any object of the document.
func (d *Document) UniqueFxID(base string) string {
	return UniqueID(base, d.CollectFxIDs())
}

// UniqueID returns base if it is not a key of ids, or else base with
// its trailing digits replaced by the first number that is not.
func UniqueID(base string, ids map[string]Object) string {
	if _, has := ids[base]; !has && base != "" {
		return base
	}
	stem := strings.TrimRightFunc(base, func(r rune) bool { return r >= '0' && r <= '9' })
	if stem == "" {
		stem = "id"
	}
	for i := 1; ; i++ {
		id := stem + strconv.Itoa(i)
		if _, has := ids[id]; !has {
			return id
		}
	}
}

// String returns a short description of the document.
func (d *Document) String() string {
	if d.root == nil {
		return "fxom.Document(empty)"
	}
	return fmt.Sprintf("fxom.Document(%s)", d.root)
}
