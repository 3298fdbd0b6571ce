// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"fmt"

	"cogentcore.org/builder/base/errors"
)

// Check verifies the structural consistency of the document and
// returns all the problems found, joined. It returns nil for a
// consistent document.
func (d *Document) Check() error {
	var errs []error
	if d.root != nil {
		rb := d.root.AsObject()
		if rb.IsAttached() {
			errs = append(errs, fmt.Errorf("root %s is attached to a parent", rb))
		}
	}
	ids := map[string]Object{}
	d.Walk(func(obj Object) bool {
		ob := obj.AsObject()
		if ob.document != d {
			errs = append(errs, fmt.Errorf("%s belongs to another document", ob))
		}
		if ob.fxID != "" {
			if prev, has := ids[ob.fxID]; has {
				errs = append(errs, fmt.Errorf("fx:id %q is used by both %s and %s", ob.fxID, prev, ob))
			}
			ids[ob.fxID] = obj
		}
		if !ob.IsRoot() && ob.fxController != "" {
			errs = append(errs, fmt.Errorf("%s is not the root but has fx:controller %q", ob, ob.fxController))
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return Continue
		}
		if inst.fxRoot && !inst.IsRoot() {
			errs = append(errs, fmt.Errorf("%s is not the root but is marked fx:root", ob))
		}
		for _, p := range inst.properties.Values {
			pb := p.AsProperty()
			if pb.parentInstance != inst {
				errs = append(errs, fmt.Errorf("property %s of %s has a wrong parent", pb.name, ob))
			}
			pc, ok := p.(*PropertyC)
			if !ok {
				continue
			}
			if len(pc.values) == 0 {
				errs = append(errs, fmt.Errorf("property %s of %s has no values", pb.name, ob))
			}
			for _, v := range pc.values {
				if v.AsObject().parentProperty != pc {
					errs = append(errs, fmt.Errorf("%s in property %s of %s has a wrong parent", v, pb.name, ob))
				}
			}
		}
		return Continue
	})
	return errors.Join(errs...)
}
