// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mask answers structural questions about a document object
// using the catalog: which accessories it has, whether they accept
// given candidates and which children they currently hold.
package mask

import (
	"fmt"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/metadata"
)

// Mask is a structural view of one object of a document.
type Mask struct {
	obj   fxom.Object
	cat   *metadata.Catalog
	class *metadata.Class
}

// New returns the mask of the given object.
func New(obj fxom.Object, cat *metadata.Catalog) *Mask {
	return &Mask{obj: obj, cat: cat, class: cat.ClassOf(obj)}
}

func (m *Mask) String() string {
	return fmt.Sprintf("mask.Mask(%s)", m.obj)
}

// Object returns the masked object.
func (m *Mask) Object() fxom.Object {
	return m.obj
}

// Class returns the class of the masked object, or nil if it is unknown.
func (m *Mask) Class() *metadata.Class {
	return m.class
}

// Accessories returns the accessories of the object class.
func (m *Mask) Accessories() []*metadata.Accessory {
	if m.class == nil {
		return nil
	}
	return m.class.Accessories
}

// Accessory returns the accessory with the given name, or nil.
func (m *Mask) Accessory(name string) *metadata.Accessory {
	if m.class == nil {
		return nil
	}
	return m.class.Accessory(name)
}

// MainAccessory returns the main accessory of the object class, or nil.
func (m *Mask) MainAccessory() *metadata.Accessory {
	if m.class == nil {
		return nil
	}
	return m.class.MainAccessory()
}

// IsFreeChildPositioning returns whether children of the object are
// positioned by their layout coordinates.
func (m *Mask) IsFreeChildPositioning() bool {
	return m.class != nil && m.class.FreeChildPositioning
}

// PropertyNameForAccessory returns the name of the property holding
// the given accessory.
func (m *Mask) PropertyNameForAccessory(acc *metadata.Accessory) fxom.PropertyName {
	return acc.PropertyName()
}

// AccessoryProperty returns the complex property currently holding
// the given accessory, or nil.
func (m *Mask) AccessoryProperty(acc *metadata.Accessory) *fxom.PropertyC {
	inst, ok := m.obj.(*fxom.Instance)
	if !ok || acc == nil {
		return nil
	}
	return inst.PropertyC(acc.PropertyName())
}

// SubComponents returns the objects held by the given accessory;
// a nil accessory means the main accessory.
func (m *Mask) SubComponents(acc *metadata.Accessory) []fxom.Object {
	if acc == nil {
		acc = m.MainAccessory()
	}
	if pc := m.AccessoryProperty(acc); pc != nil {
		return pc.Values()
	}
	return nil
}

// SubComponentCount returns the number of objects held by the given
// accessory; a nil accessory means the main accessory. If recursive
// is true, their descendants are counted too.
func (m *Mask) SubComponentCount(acc *metadata.Accessory, recursive bool) int {
	subs := m.SubComponents(acc)
	if !recursive {
		return len(subs)
	}
	n := 0
	for _, s := range subs {
		n += 1 + len(s.AsObject().CollectDescendants())
	}
	return n
}

// IsAccessoryFree returns whether the given single valued accessory
// holds no object.
func (m *Mask) IsAccessoryFree(acc *metadata.Accessory) bool {
	return m.SubComponentCount(acc, false) == 0
}

// AccessoryOf returns the accessory holding the given child of the
// masked object, or nil.
func (m *Mask) AccessoryOf(child fxom.Object) *metadata.Accessory {
	p := child.AsObject().ParentProperty()
	if p == nil || p.ParentInstance() != m.obj {
		return nil
	}
	return m.Accessory(p.Name().Name)
}

// IsAcceptingAccessory returns whether the given accessory of the
// object can receive all the candidates: they must be assignable to
// the accepted class, and a single valued accessory takes at most one.
// Occupancy is not checked; see [Mask.IsAccessoryFree].
func (m *Mask) IsAcceptingAccessory(acc *metadata.Accessory, candidates ...fxom.Object) bool {
	if acc == nil || m.class == nil || m.class.Accessory(acc.Name) == nil {
		return false
	}
	if !acc.Collection && len(candidates) > 1 {
		return false
	}
	for _, c := range candidates {
		if c == m.obj || m.obj.AsObject().IsDescendantOf(c) {
			return false
		}
		if !m.accepts(acc, c) {
			return false
		}
	}
	return true
}

// IsAcceptingSubComponent returns whether the main accessory of the
// object is a collection that can receive all the candidates.
func (m *Mask) IsAcceptingSubComponent(candidates ...fxom.Object) bool {
	main := m.MainAccessory()
	return main != nil && main.Collection && m.IsAcceptingAccessory(main, candidates...)
}

// accepts returns whether a single candidate fits the accessory.
// Included documents and unknown classes are assumed to be nodes.
func (m *Mask) accepts(acc *metadata.Accessory, c fxom.Object) bool {
	switch o := c.(type) {
	case *fxom.Intrinsic:
		return o.Kind == fxom.Include && acc.Accepts == "Node"
	case *fxom.Collection:
		return false
	}
	cl := m.cat.ClassOf(c)
	if cl == nil {
		return acc.Accepts == "Node"
	}
	return m.cat.IsAssignable(cl.Name, acc.Accepts)
}
