// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

// Clone returns a detached deep copy of the given object bound to
// the target document. Live objects are not copied.
func Clone(obj Object, target *Document) Object {
	ob := obj.AsObject()
	var res Object
	switch o := obj.(type) {
	case *Instance:
		ni := NewInstance(target, o.Type)
		ni.FxValue = o.FxValue
		ni.FxConstant = o.FxConstant
		ni.fxRoot = o.fxRoot
		for _, p := range o.properties.Values {
			np := cloneProperty(p, target)
			ni.properties.Set(np.AsProperty().name, np)
			np.AsProperty().parentInstance = ni
		}
		res = ni
	case *Intrinsic:
		res = NewIntrinsic(target, o.Kind, o.Source)
	case *Collection:
		nc := NewCollection(target, o.Type, o.Factory)
		for _, it := range o.items {
			ci := Clone(it, target)
			ci.AsObject().parentCollection = nc
			nc.items = append(nc.items, ci)
		}
		res = nc
	case *Virtual:
		res = NewVirtual(target, o.Type)
	default:
		panic("fxom.Clone: unknown object kind")
	}
	nb := res.AsObject()
	nb.fxID = ob.fxID
	nb.fxController = ob.fxController
	return res
}

func cloneProperty(p Property, target *Document) Property {
	switch pp := p.(type) {
	case *PropertyT:
		return NewPropertyT(target, pp.name, pp.value)
	case *PropertyC:
		np := NewPropertyC(target, pp.name)
		for _, v := range pp.values {
			cv := Clone(v, target)
			cv.AsObject().parentProperty = np
			np.values = append(np.values, cv)
		}
		return np
	}
	panic("fxom.Clone: unknown property kind")
}
