// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"fmt"
	"slices"
	"strings"
)

// PropertyName identifies a property. Residence is the owner class
// of a static property (e.g. GridPane for GridPane.rowIndex), or "".
type PropertyName struct {
	Name      string
	Residence string
}

// PropName returns the name of a regular property.
func PropName(name string) PropertyName {
	return PropertyName{Name: name}
}

// StaticPropName returns the name of a static property.
func StaticPropName(residence, name string) PropertyName {
	return PropertyName{Name: name, Residence: residence}
}

// ParsePropertyName parses a property name as written in FXML,
// where static properties are written Residence.name.
func ParsePropertyName(s string) PropertyName {
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		return PropertyName{Name: s[i+1:], Residence: SimpleTypeName(s[:i])}
	}
	return PropertyName{Name: s}
}

// IsStatic returns whether the property is a static property.
func (pn PropertyName) IsStatic() bool {
	return pn.Residence != ""
}

func (pn PropertyName) String() string {
	if pn.Residence != "" {
		return pn.Residence + "." + pn.Name
	}
	return pn.Name
}

// Property is a named attribute of an [Instance]: either a
// [PropertyT] holding a token value or a [PropertyC] holding
// an ordered list of child objects.
type Property interface {

	// AsProperty returns the [PropertyBase] of this Property.
	AsProperty() *PropertyBase
}

// PropertyBase holds the state shared by both property kinds.
type PropertyBase struct {

	// This is the Property as its true underlying type.
	This Property

	name           PropertyName
	document       *Document
	parentInstance *Instance
}

// AsProperty returns the [PropertyBase] of this Property.
func (pb *PropertyBase) AsProperty() *PropertyBase {
	return pb
}

// Name returns the name of the property.
func (pb *PropertyBase) Name() PropertyName {
	return pb.name
}

// Document returns the document of the property.
func (pb *PropertyBase) Document() *Document {
	return pb.document
}

// ParentInstance returns the instance owning the property, or nil.
func (pb *PropertyBase) ParentInstance() *Instance {
	return pb.parentInstance
}

// IndexInParentInstance returns the index of the property in its
// owning instance, or -1 if detached.
func (pb *PropertyBase) IndexInParentInstance() int {
	if pb.parentInstance == nil {
		return -1
	}
	return pb.parentInstance.properties.IndexByKey(pb.name)
}

// AddToParentInstance attaches the property to the given instance
// at the given index; -1 appends. The property must be detached and
// the instance must not already hold a property with the same name.
func (pb *PropertyBase) AddToParentInstance(index int, inst *Instance) {
	if pb.parentInstance != nil {
		panic(fmt.Sprintf("fxom.AddToParentInstance: property %s is already attached", pb.name))
	}
	if inst.document != pb.document {
		panic(fmt.Sprintf("fxom.AddToParentInstance: property %s and %s belong to different documents", pb.name, inst))
	}
	if index > inst.properties.Len() {
		panic(fmt.Sprintf("fxom.AddToParentInstance: index %d out of range for %d properties", index, inst.properties.Len()))
	}
	pb.document.BeginUpdate()
	if err := inst.properties.Insert(index, pb.name, pb.This); err != nil {
		panic("fxom.AddToParentInstance: " + err.Error())
	}
	pb.parentInstance = inst
	pb.document.EndUpdate()
}

// RemoveFromParentInstance detaches the property from its instance.
func (pb *PropertyBase) RemoveFromParentInstance() {
	inst := pb.parentInstance
	if inst == nil {
		panic(fmt.Sprintf("fxom.RemoveFromParentInstance: property %s is not attached", pb.name))
	}
	pb.document.BeginUpdate()
	inst.properties.DeleteByKey(pb.name)
	pb.parentInstance = nil
	pb.document.EndUpdate()
}

// PropertyT is a property holding a single token value.
type PropertyT struct {
	PropertyBase
	value string
}

// NewPropertyT returns a new detached token property.
func NewPropertyT(d *Document, name PropertyName, value string) *PropertyT {
	pt := &PropertyT{value: value}
	pt.This = pt
	pt.name = name
	pt.document = d
	return pt
}

// Value returns the token value.
func (pt *PropertyT) Value() string {
	return pt.value
}

// SetValue sets the token value.
func (pt *PropertyT) SetValue(v string) {
	pt.document.BeginUpdate()
	pt.value = v
	pt.document.EndUpdate()
}

// PropertyC is a property holding an ordered list of child objects.
type PropertyC struct {
	PropertyBase
	values []Object
}

// NewPropertyC returns a new detached complex property without values.
func NewPropertyC(d *Document, name PropertyName) *PropertyC {
	pc := &PropertyC{}
	pc.This = pc
	pc.name = name
	pc.document = d
	return pc
}

// Values returns the child objects of the property.
func (pc *PropertyC) Values() []Object {
	return slices.Clone(pc.values)
}

// NumValues returns the number of child objects.
func (pc *PropertyC) NumValues() int {
	return len(pc.values)
}

// Value returns the child object at the given index.
func (pc *PropertyC) Value(i int) Object {
	return pc.values[i]
}
