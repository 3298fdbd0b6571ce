// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"fmt"
	"slices"

	"cogentcore.org/builder/base/findfast"
)

const (
	// Continue = true can be returned from walk functions to continue.
	Continue = true

	// Break = false can be returned from walk functions to stop walking
	// down the current branch or the whole walk.
	Break = false
)

// Object is a node of the FXOM graph. The core functionality is
// defined on [ObjectBase], which every object kind embeds, and
// [Object.AsObject] gives access to it.
type Object interface {

	// AsObject returns the [ObjectBase] of this Object.
	AsObject() *ObjectBase

	// Children returns the objects directly owned by this
	// object, in document order.
	Children() []Object
}

// ObjectBase holds the state shared by all object kinds.
type ObjectBase struct {

	// This is the Object as its true underlying type.
	This Object

	document         *Document
	parentProperty   *PropertyC
	parentCollection *Collection
	fxID             string
	fxController     string
	live             any

	// index is the last known index among the siblings, used as the
	// starting point of sibling searches.
	index int
}

func (ob *ObjectBase) init(this Object, d *Document) {
	ob.This = this
	ob.document = d
}

// AsObject returns the [ObjectBase] of this Object.
func (ob *ObjectBase) AsObject() *ObjectBase {
	return ob
}

// Children returns nil; object kinds owning other objects override it.
func (ob *ObjectBase) Children() []Object {
	return nil
}

// String returns the type and fx:id of the object.
func (ob *ObjectBase) String() string {
	name := ""
	switch o := ob.This.(type) {
	case *Instance:
		name = o.Type
	case *Intrinsic:
		name = "fx:" + o.Kind.String()
	case *Collection:
		name = o.Type + "[]"
	case *Virtual:
		name = "(" + o.Type + ")"
	}
	if ob.fxID != "" {
		return fmt.Sprintf("%s#%s", name, ob.fxID)
	}
	return name
}

// Document returns the document this object belongs to.
func (ob *ObjectBase) Document() *Document {
	return ob.document
}

// FxID returns the fx:id of the object, or "".
func (ob *ObjectBase) FxID() string {
	return ob.fxID
}

// SetFxID sets the fx:id of the object.
func (ob *ObjectBase) SetFxID(id string) {
	ob.document.BeginUpdate()
	ob.fxID = id
	ob.document.EndUpdate()
}

// FxController returns the controller class of the object, or "".
func (ob *ObjectBase) FxController() string {
	return ob.fxController
}

// SetFxController sets the controller class of the object.
func (ob *ObjectBase) SetFxController(c string) {
	ob.document.BeginUpdate()
	ob.fxController = c
	ob.document.EndUpdate()
}

// LiveObject returns the live object resolved for this object,
// which is nil when the object could not be resolved.
func (ob *ObjectBase) LiveObject() any {
	return ob.live
}

// SetLiveObject sets the live object; it is used by resolvers.
func (ob *ObjectBase) SetLiveObject(live any) {
	ob.live = live
}

// IsRoot returns whether the object is the root of its document.
func (ob *ObjectBase) IsRoot() bool {
	return ob.document != nil && ob.document.root == ob.This
}

// IsAttached returns whether the object has a parent property or collection.
func (ob *ObjectBase) IsAttached() bool {
	return ob.parentProperty != nil || ob.parentCollection != nil
}

// ParentProperty returns the property holding this object, or nil.
func (ob *ObjectBase) ParentProperty() *PropertyC {
	return ob.parentProperty
}

// ParentCollection returns the collection holding this object, or nil.
func (ob *ObjectBase) ParentCollection() *Collection {
	return ob.parentCollection
}

// ParentObject returns the object owning this object, or nil.
func (ob *ObjectBase) ParentObject() Object {
	if ob.parentCollection != nil {
		return ob.parentCollection
	}
	if ob.parentProperty == nil || ob.parentProperty.parentInstance == nil {
		return nil
	}
	return ob.parentProperty.parentInstance
}

func (ob *ObjectBase) siblings() []Object {
	switch {
	case ob.parentProperty != nil:
		return ob.parentProperty.values
	case ob.parentCollection != nil:
		return ob.parentCollection.items
	}
	return nil
}

// IndexInParentProperty returns the index of the object among its
// siblings, or -1 if it is detached.
func (ob *ObjectBase) IndexInParentProperty() int {
	idx := findfast.Index(ob.siblings(), ob.This, ob.index)
	if idx >= 0 {
		ob.index = idx
	}
	return idx
}

// NextSibling returns the next object in the parent, or nil.
func (ob *ObjectBase) NextSibling() Object {
	sibs := ob.siblings()
	idx := ob.IndexInParentProperty()
	if idx < 0 || idx+1 >= len(sibs) {
		return nil
	}
	return sibs[idx+1]
}

// PreviousSibling returns the previous object in the parent, or nil.
func (ob *ObjectBase) PreviousSibling() Object {
	idx := ob.IndexInParentProperty()
	if idx <= 0 {
		return nil
	}
	return ob.siblings()[idx-1]
}

// AddToParentProperty attaches the object to the given property at
// the given index; -1 appends. The object must be detached.
func (ob *ObjectBase) AddToParentProperty(index int, p *PropertyC) {
	if ob.IsAttached() {
		panic(fmt.Sprintf("fxom.AddToParentProperty: %s is already attached", ob))
	}
	if ob.IsRoot() {
		panic(fmt.Sprintf("fxom.AddToParentProperty: %s is the document root", ob))
	}
	if p.document != ob.document {
		panic(fmt.Sprintf("fxom.AddToParentProperty: %s and property %s belong to different documents", ob, p.name))
	}
	if index < 0 || index > len(p.values) {
		if index != -1 {
			panic(fmt.Sprintf("fxom.AddToParentProperty: index %d out of range for %d values", index, len(p.values)))
		}
		index = len(p.values)
	}
	ob.document.BeginUpdate()
	p.values = slices.Insert(p.values, index, ob.This)
	ob.parentProperty = p
	ob.index = index
	ob.document.EndUpdate()
}

// RemoveFromParentProperty detaches the object from its parent property.
func (ob *ObjectBase) RemoveFromParentProperty() {
	p := ob.parentProperty
	if p == nil {
		panic(fmt.Sprintf("fxom.RemoveFromParentProperty: %s is not attached", ob))
	}
	ob.document.BeginUpdate()
	idx := ob.IndexInParentProperty()
	p.values = slices.Delete(p.values, idx, idx+1)
	ob.parentProperty = nil
	ob.document.EndUpdate()
}

// MoveBeforeSibling moves the object immediately before the given
// sibling in its parent property; a nil sibling moves it to the end.
func (ob *ObjectBase) MoveBeforeSibling(sibling Object) {
	p := ob.parentProperty
	if p == nil {
		panic(fmt.Sprintf("fxom.MoveBeforeSibling: %s is not attached", ob))
	}
	if sibling != nil && sibling.AsObject().parentProperty != p {
		panic(fmt.Sprintf("fxom.MoveBeforeSibling: %s is not a sibling of %s", sibling, ob))
	}
	ob.document.BeginUpdate()
	idx := ob.IndexInParentProperty()
	p.values = slices.Delete(p.values, idx, idx+1)
	if sibling == nil {
		p.values = append(p.values, ob.This)
	} else {
		sidx := slices.Index(p.values, sibling)
		p.values = slices.Insert(p.values, sidx, ob.This)
	}
	ob.document.EndUpdate()
}

// MoveToDocument moves the object and all its descendants to the
// given document. The object must be detached and not a root.
func (ob *ObjectBase) MoveToDocument(d *Document) {
	if ob.IsAttached() || ob.IsRoot() {
		panic(fmt.Sprintf("fxom.MoveToDocument: %s must be detached", ob))
	}
	ob.WalkDown(func(obj Object) bool {
		o := obj.AsObject()
		o.document = d
		if inst, ok := obj.(*Instance); ok {
			for _, p := range inst.properties.Values {
				p.AsProperty().document = d
			}
		}
		return Continue
	})
}

// IsDescendantOf returns whether the object is strictly below the given one.
func (ob *ObjectBase) IsDescendantOf(other Object) bool {
	for p := ob.ParentObject(); p != nil; p = p.AsObject().ParentObject() {
		if p == other {
			return true
		}
	}
	return false
}

// WalkDown calls the given function on this object and all of its
// descendants in document order. Returning [Break] from the function
// ends the walk.
func (ob *ObjectBase) WalkDown(fun func(obj Object) bool) bool {
	if !fun(ob.This) {
		return Break
	}
	for _, c := range ob.This.Children() {
		if !c.AsObject().WalkDown(fun) {
			return Break
		}
	}
	return Continue
}

// CollectDescendants returns all the objects strictly below this one.
func (ob *ObjectBase) CollectDescendants() []Object {
	var objs []Object
	ob.WalkDown(func(obj Object) bool {
		if obj != ob.This {
			objs = append(objs, obj)
		}
		return Continue
	})
	return objs
}
