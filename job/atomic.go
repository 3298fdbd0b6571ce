// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"unicode"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/metadata"
)

// AddPropertyValue attaches a detached object to a complex property.
type AddPropertyValue struct {
	Base
	value    fxom.Object
	property *fxom.PropertyC
	index    int
}

// NewAddPropertyValue returns a job adding the value to the property
// at the given index; -1 appends.
func NewAddPropertyValue(ctx *Context, value fxom.Object, property *fxom.PropertyC, index int) *AddPropertyValue {
	j := &AddPropertyValue{value: value, property: property, index: index}
	j.init(j, ctx)
	return j
}

func (j *AddPropertyValue) Description() string {
	return fmt.Sprintf("Add %s to %s", j.value, j.property.Name())
}

func (j *AddPropertyValue) build() bool {
	ob := j.value.AsObject()
	return !ob.IsAttached() && !ob.IsRoot() && ob.Document() == j.property.Document() &&
		j.index <= j.property.NumValues()
}

func (j *AddPropertyValue) execute() {
	j.value.AsObject().AddToParentProperty(j.index, j.property)
}

func (j *AddPropertyValue) undo() {
	j.value.AsObject().RemoveFromParentProperty()
}

// RemovePropertyValue detaches an object from its parent property.
// Removing the last value of a property attached to an instance also
// removes the property.
type RemovePropertyValue struct {
	Base
	value          fxom.Object
	property       *fxom.PropertyC
	index          int
	removeProperty *RemoveProperty
}

// NewRemovePropertyValue returns a job detaching the value from its
// parent property.
func NewRemovePropertyValue(ctx *Context, value fxom.Object) *RemovePropertyValue {
	j := &RemovePropertyValue{value: value}
	j.init(j, ctx)
	return j
}

func (j *RemovePropertyValue) Description() string {
	return fmt.Sprintf("Remove %s", j.value)
}

func (j *RemovePropertyValue) build() bool {
	ob := j.value.AsObject()
	j.property = ob.ParentProperty()
	if j.property == nil {
		return false
	}
	j.index = ob.IndexInParentProperty()
	if j.property.NumValues() == 1 && j.property.ParentInstance() != nil {
		j.removeProperty = NewRemoveProperty(j.ctx, j.property)
	}
	return true
}

func (j *RemovePropertyValue) execute() {
	j.value.AsObject().RemoveFromParentProperty()
	if j.removeProperty != nil {
		if j.removeProperty.State() == Undone {
			j.removeProperty.Redo()
		} else {
			j.removeProperty.Execute()
		}
	}
}

func (j *RemovePropertyValue) undo() {
	if j.removeProperty != nil {
		j.removeProperty.Undo()
	}
	j.value.AsObject().AddToParentProperty(j.index, j.property)
}

// AddProperty attaches a detached property to an instance.
type AddProperty struct {
	Base
	property fxom.Property
	instance *fxom.Instance
	index    int
}

// NewAddProperty returns a job adding the property to the instance at
// the given index; -1 appends.
func NewAddProperty(ctx *Context, property fxom.Property, instance *fxom.Instance, index int) *AddProperty {
	j := &AddProperty{property: property, instance: instance, index: index}
	j.init(j, ctx)
	return j
}

func (j *AddProperty) Description() string {
	return fmt.Sprintf("Add %s to %s", j.property.AsProperty().Name(), j.instance)
}

func (j *AddProperty) build() bool {
	pb := j.property.AsProperty()
	return pb.ParentInstance() == nil && pb.Document() == j.instance.Document() &&
		j.instance.Property(pb.Name()) == nil && j.index <= j.instance.NumProperties()
}

func (j *AddProperty) execute() {
	j.property.AsProperty().AddToParentInstance(j.index, j.instance)
}

func (j *AddProperty) undo() {
	j.property.AsProperty().RemoveFromParentInstance()
}

// RemoveProperty detaches a property from its instance.
type RemoveProperty struct {
	Base
	property fxom.Property
	instance *fxom.Instance
	index    int
}

// NewRemoveProperty returns a job detaching the property from its instance.
func NewRemoveProperty(ctx *Context, property fxom.Property) *RemoveProperty {
	j := &RemoveProperty{property: property}
	j.init(j, ctx)
	return j
}

func (j *RemoveProperty) Description() string {
	return fmt.Sprintf("Remove %s", j.property.AsProperty().Name())
}

func (j *RemoveProperty) build() bool {
	pb := j.property.AsProperty()
	j.instance = pb.ParentInstance()
	j.index = pb.IndexInParentInstance()
	return j.instance != nil
}

func (j *RemoveProperty) execute() {
	j.property.AsProperty().RemoveFromParentInstance()
}

func (j *RemoveProperty) undo() {
	j.property.AsProperty().AddToParentInstance(j.index, j.instance)
}

// RemoveCollectionItem detaches an item from its collection.
type RemoveCollectionItem struct {
	Base
	item       fxom.Object
	collection *fxom.Collection
	index      int
}

// NewRemoveCollectionItem returns a job detaching the item from its collection.
func NewRemoveCollectionItem(ctx *Context, item fxom.Object) *RemoveCollectionItem {
	j := &RemoveCollectionItem{item: item}
	j.init(j, ctx)
	return j
}

func (j *RemoveCollectionItem) Description() string {
	return fmt.Sprintf("Remove %s", j.item)
}

func (j *RemoveCollectionItem) build() bool {
	ob := j.item.AsObject()
	j.collection = ob.ParentCollection()
	j.index = ob.IndexInParentProperty()
	return j.collection != nil
}

func (j *RemoveCollectionItem) execute() {
	j.collection.RemoveItem(j.item)
}

func (j *RemoveCollectionItem) undo() {
	j.collection.AddItem(j.index, j.item)
}

// ModifyObject sets a value property of an instance through the
// catalog. The previous raw token is captured when the job is built.
type ModifyObject struct {
	Base
	instance *fxom.Instance
	name     fxom.PropertyName
	value    string
	vp       *metadata.ValueProperty
	old      metadata.TokenState
}

// NewModifyObject returns a job setting the named value property of
// the instance to the given value.
func NewModifyObject(ctx *Context, instance *fxom.Instance, name fxom.PropertyName, value string) *ModifyObject {
	j := &ModifyObject{instance: instance, name: name, value: value}
	j.init(j, ctx)
	return j
}

func (j *ModifyObject) Description() string {
	return fmt.Sprintf("Set %s of %s", j.name, j.instance)
}

// Instance returns the modified instance.
func (j *ModifyObject) Instance() *fxom.Instance {
	return j.instance
}

// Name returns the modified property name.
func (j *ModifyObject) Name() fxom.PropertyName {
	return j.name
}

// Value returns the new value.
func (j *ModifyObject) Value() string {
	return j.value
}

func (j *ModifyObject) build() bool {
	j.vp = j.ctx.Catalog.QueryValueProperty(j.instance, j.name)
	if j.vp == nil || !j.vp.IsReadWrite() || j.vp.Validate(j.value) != nil {
		return false
	}
	j.old = j.vp.TokenState(j.instance)
	return !j.vp.Equal(j.vp.Value(j.instance), j.value)
}

func (j *ModifyObject) execute() {
	j.vp.SetValue(j.instance, j.value)
}

func (j *ModifyObject) undo() {
	j.vp.Restore(j.instance, j.old)
}

// ModifyFxID sets the fx:id of an object.
type ModifyFxID struct {
	Base
	object fxom.Object
	id     string
	old    string
}

// NewModifyFxID returns a job setting the fx:id of the object;
// "" removes it.
func NewModifyFxID(ctx *Context, object fxom.Object, id string) *ModifyFxID {
	j := &ModifyFxID{object: object, id: id}
	j.init(j, ctx)
	return j
}

func (j *ModifyFxID) Description() string {
	if j.id == "" {
		return "Remove fx:id"
	}
	return "Set fx:id " + j.id
}

func (j *ModifyFxID) build() bool {
	ob := j.object.AsObject()
	j.old = ob.FxID()
	if j.id == j.old {
		return false
	}
	if j.id == "" {
		return true
	}
	if !IsIdentifier(j.id) {
		return false
	}
	other := ob.Document().SearchWithFxID(j.id)
	return other == nil || other == j.object
}

func (j *ModifyFxID) execute() {
	j.object.AsObject().SetFxID(j.id)
}

func (j *ModifyFxID) undo() {
	j.object.AsObject().SetFxID(j.old)
}

// IsIdentifier returns whether s can be used as an fx:id: a letter,
// underscore or dollar followed by letters, digits, underscores and dollars.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// ModifyFxController sets the controller class of an object.
type ModifyFxController struct {
	Base
	object     fxom.Object
	controller string
	old        string
}

// NewModifyFxController returns a job setting the controller class of
// the object; "" removes it.
func NewModifyFxController(ctx *Context, object fxom.Object, controller string) *ModifyFxController {
	j := &ModifyFxController{object: object, controller: controller}
	j.init(j, ctx)
	return j
}

func (j *ModifyFxController) Description() string {
	return "Set Controller"
}

func (j *ModifyFxController) build() bool {
	j.old = j.object.AsObject().FxController()
	return j.old != j.controller
}

func (j *ModifyFxController) execute() {
	j.object.AsObject().SetFxController(j.controller)
}

func (j *ModifyFxController) undo() {
	j.object.AsObject().SetFxController(j.old)
}

// ToggleFxRoot flips the fx:root flag of an instance.
type ToggleFxRoot struct {
	Base
	instance *fxom.Instance
}

// NewToggleFxRoot returns a job flipping the fx:root flag of the instance.
func NewToggleFxRoot(ctx *Context, instance *fxom.Instance) *ToggleFxRoot {
	j := &ToggleFxRoot{instance: instance}
	j.init(j, ctx)
	return j
}

func (j *ToggleFxRoot) Description() string {
	return "Toggle fx:root"
}

func (j *ToggleFxRoot) build() bool {
	return true
}

func (j *ToggleFxRoot) execute() {
	j.instance.SetFxRoot(!j.instance.IsFxRoot())
}

func (j *ToggleFxRoot) undo() {
	j.execute()
}

// ReIndexObject moves an object before a sibling in its parent property.
type ReIndexObject struct {
	Base
	object  fxom.Object
	before  fxom.Object
	oldNext fxom.Object
}

// NewReIndexObject returns a job moving the object immediately before
// the given sibling; nil moves it to the end.
func NewReIndexObject(ctx *Context, object, before fxom.Object) *ReIndexObject {
	j := &ReIndexObject{object: object, before: before}
	j.init(j, ctx)
	return j
}

func (j *ReIndexObject) Description() string {
	return fmt.Sprintf("Move %s", j.object)
}

func (j *ReIndexObject) build() bool {
	ob := j.object.AsObject()
	p := ob.ParentProperty()
	if p == nil || j.before == j.object {
		return false
	}
	if j.before != nil && j.before.AsObject().ParentProperty() != p {
		return false
	}
	j.oldNext = ob.NextSibling()
	return j.oldNext != j.before
}

func (j *ReIndexObject) execute() {
	j.object.AsObject().MoveBeforeSibling(j.before)
}

func (j *ReIndexObject) undo() {
	j.object.AsObject().MoveBeforeSibling(j.oldNext)
}

// ReplaceObject puts an object in place of another one: in the same
// parent property at the same index, or as the document root.
type ReplaceObject struct {
	Base
	original    fxom.Object
	replacement fxom.Object
	property    *fxom.PropertyC
	index       int
}

// NewReplaceObject returns a job replacing the original object by the
// detached replacement.
func NewReplaceObject(ctx *Context, original, replacement fxom.Object) *ReplaceObject {
	j := &ReplaceObject{original: original, replacement: replacement}
	j.init(j, ctx)
	return j
}

func (j *ReplaceObject) Description() string {
	return fmt.Sprintf("Replace %s", j.original)
}

func (j *ReplaceObject) build() bool {
	rb := j.replacement.AsObject()
	if rb.IsAttached() || rb.IsRoot() || rb.Document() != j.original.AsObject().Document() {
		return false
	}
	ob := j.original.AsObject()
	j.property = ob.ParentProperty()
	j.index = ob.IndexInParentProperty()
	return j.property != nil || ob.IsRoot()
}

func (j *ReplaceObject) execute() {
	j.swap(j.original, j.replacement)
}

func (j *ReplaceObject) undo() {
	j.swap(j.replacement, j.original)
}

func (j *ReplaceObject) swap(out, in fxom.Object) {
	if j.property == nil {
		out.AsObject().Document().SetRoot(in)
		return
	}
	out.AsObject().RemoveFromParentProperty()
	in.AsObject().AddToParentProperty(j.index, j.property)
}

// SetDocumentRoot makes an object the root of the document.
type SetDocumentRoot struct {
	Base
	root    fxom.Object
	oldRoot fxom.Object
}

// NewSetDocumentRoot returns a job making the detached object the
// document root; nil empties the document.
func NewSetDocumentRoot(ctx *Context, root fxom.Object) *SetDocumentRoot {
	j := &SetDocumentRoot{root: root}
	j.init(j, ctx)
	return j
}

func (j *SetDocumentRoot) Description() string {
	return "Set Document Root"
}

func (j *SetDocumentRoot) build() bool {
	d := j.ctx.Document
	j.oldRoot = d.Root()
	if j.root == j.oldRoot {
		return false
	}
	if j.root == nil {
		return true
	}
	rb := j.root.AsObject()
	return rb.Document() == d && !rb.IsAttached()
}

func (j *SetDocumentRoot) execute() {
	j.ctx.Document.SetRoot(j.root)
}

func (j *SetDocumentRoot) undo() {
	j.ctx.Document.SetRoot(j.oldRoot)
}
