// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/builder/base/keylist"
)

// Instance is an object created from a concrete component type,
// holding ordered named properties.
type Instance struct {
	ObjectBase

	// Type is the declared type of the instance, as written in the document.
	Type string

	// FxValue is the fx:value attribute, if any.
	FxValue string

	// FxConstant is the fx:constant attribute, if any.
	FxConstant string

	properties *keylist.List[PropertyName, Property]
	fxRoot     bool
}

// NewInstance returns a new detached instance of the given type.
func NewInstance(d *Document, typ string) *Instance {
	inst := &Instance{Type: typ, properties: keylist.New[PropertyName, Property]()}
	inst.init(inst, d)
	return inst
}

// SimpleType returns the type without its package qualifier.
func (inst *Instance) SimpleType() string {
	return SimpleTypeName(inst.Type)
}

// SimpleTypeName returns the given type name without its package qualifier.
func SimpleTypeName(typ string) string {
	if i := strings.LastIndexByte(typ, '.'); i >= 0 {
		return typ[i+1:]
	}
	return typ
}

// IsFxRoot returns whether the instance is written as fx:root.
func (inst *Instance) IsFxRoot() bool {
	return inst.fxRoot
}

// SetFxRoot sets whether the instance is written as fx:root.
func (inst *Instance) SetFxRoot(root bool) {
	inst.document.BeginUpdate()
	inst.fxRoot = root
	inst.document.EndUpdate()
}

// Property returns the property with the given name, or nil.
func (inst *Instance) Property(name PropertyName) Property {
	p, _ := inst.properties.AtTry(name)
	return p
}

// Properties returns the properties of the instance in order.
func (inst *Instance) Properties() []Property {
	return slices.Clone(inst.properties.Values)
}

// NumProperties returns the number of properties of the instance.
func (inst *Instance) NumProperties() int {
	return inst.properties.Len()
}

// PropertyC returns the complex property with the given name, or nil.
func (inst *Instance) PropertyC(name PropertyName) *PropertyC {
	pc, _ := inst.Property(name).(*PropertyC)
	return pc
}

// PropertyT returns the token property with the given name, or nil.
func (inst *Instance) PropertyT(name PropertyName) *PropertyT {
	pt, _ := inst.Property(name).(*PropertyT)
	return pt
}

// Children returns the values of all complex properties in order.
func (inst *Instance) Children() []Object {
	var cs []Object
	for _, p := range inst.properties.Values {
		if pc, ok := p.(*PropertyC); ok {
			cs = append(cs, pc.values...)
		}
	}
	return cs
}

// IntrinsicKind is the kind of an [Intrinsic] object.
type IntrinsicKind int32

const (
	// Include is an fx:include of another document.
	Include IntrinsicKind = iota

	// Reference is an fx:reference to an object of the same document.
	Reference

	// Copy is an fx:copy of an object of the same document.
	Copy
)

func (k IntrinsicKind) String() string {
	switch k {
	case Include:
		return "include"
	case Reference:
		return "reference"
	case Copy:
		return "copy"
	}
	return fmt.Sprintf("IntrinsicKind(%d)", int32(k))
}

// Intrinsic is an fx:include, fx:reference or fx:copy object.
type Intrinsic struct {
	ObjectBase

	// Kind is the intrinsic kind.
	Kind IntrinsicKind

	// Source is the source attribute: a file path for [Include]
	// and an fx:id for [Reference] and [Copy].
	Source string
}

// NewIntrinsic returns a new detached intrinsic object.
func NewIntrinsic(d *Document, kind IntrinsicKind, source string) *Intrinsic {
	it := &Intrinsic{Kind: kind, Source: source}
	it.init(it, d)
	return it
}

// Collection is a bare list of objects, written with fx:factory.
type Collection struct {
	ObjectBase

	// Type is the declared type of the collection.
	Type string

	// Factory is the fx:factory method.
	Factory string

	items []Object
}

// NewCollection returns a new detached empty collection.
func NewCollection(d *Document, typ, factory string) *Collection {
	c := &Collection{Type: typ, Factory: factory}
	c.init(c, d)
	return c
}

// Items returns the items of the collection.
func (c *Collection) Items() []Object {
	return slices.Clone(c.items)
}

// Children returns the items of the collection.
func (c *Collection) Children() []Object {
	return c.items
}

// AddItem adds the given detached object to the collection at the
// given index; -1 appends.
func (c *Collection) AddItem(index int, obj Object) {
	ob := obj.AsObject()
	if ob.IsAttached() || ob.IsRoot() {
		panic(fmt.Sprintf("fxom.Collection.AddItem: %s must be detached", ob))
	}
	if index < 0 || index > len(c.items) {
		index = len(c.items)
	}
	c.document.BeginUpdate()
	c.items = slices.Insert(c.items, index, obj)
	ob.parentCollection = c
	c.document.EndUpdate()
}

// RemoveItem removes the given object from the collection.
func (c *Collection) RemoveItem(obj Object) {
	ob := obj.AsObject()
	if ob.parentCollection != c {
		panic(fmt.Sprintf("fxom.Collection.RemoveItem: %s is not an item of %s", ob, c))
	}
	c.document.BeginUpdate()
	idx := slices.Index(c.items, obj)
	c.items = slices.Delete(c.items, idx, idx+1)
	ob.parentCollection = nil
	c.document.EndUpdate()
}

// Virtual is a structural placeholder object. It resolves to a
// live object of its placeholder type but is never written.
type Virtual struct {
	ObjectBase

	// Type is the placeholder type.
	Type string
}

// NewVirtual returns a new detached placeholder of the given type.
func NewVirtual(d *Document, typ string) *Virtual {
	v := &Virtual{Type: typ}
	v.init(v, d)
	return v
}
