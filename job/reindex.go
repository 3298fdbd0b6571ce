// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"slices"
	"strconv"

	"cogentcore.org/builder/fxom"
)

// Orders are the ways of moving the selected objects among their siblings.
type Orders int32

const (
	// BringToFront moves the objects after all their siblings.
	BringToFront Orders = iota

	// SendToBack moves the objects before all their siblings.
	SendToBack

	// BringForward moves each object after its next sibling.
	BringForward

	// SendBackward moves each object before its previous sibling.
	SendBackward

	OrdersN
)

var orderNames = [...]string{"Bring to Front", "Send to Back", "Bring Forward", "Send Backward"}

func (o Orders) String() string {
	if o >= 0 && o < OrdersN {
		return orderNames[o]
	}
	return "Orders(" + strconv.Itoa(int(o)) + ")"
}

// forward returns whether the order moves objects toward the end.
func (o Orders) forward() bool {
	return o == BringToFront || o == BringForward
}

// NewReIndexSelection returns a job changing the order of the selected
// objects among their siblings. Selected siblings keep their relative order.
func NewReIndexSelection(ctx *Context, order Orders) *Inline {
	og := ctx.Selection.Objects()
	var items []fxom.Object
	if og != nil {
		items = og.SortedItems()
	}
	if order == SendToBack || order == BringForward {
		// keeps the relative order of the moved items
		slices.Reverse(items)
	}
	return NewInline(ctx, order.String(), func() bool {
		for _, obj := range items {
			if obj.AsObject().ParentProperty() == nil {
				return false
			}
		}
		for _, obj := range items {
			if !isBlocked(obj, order, items) {
				return true
			}
		}
		return false
	}, func(do func(j Job) bool) {
		for _, obj := range items {
			if isBlocked(obj, order, items) {
				continue
			}
			ob := obj.AsObject()
			var before fxom.Object
			switch order {
			case BringToFront:
			case SendToBack:
				before = ob.ParentProperty().Value(0)
			case BringForward:
				before = ob.NextSibling().AsObject().NextSibling()
			case SendBackward:
				before = ob.PreviousSibling()
			}
			do(NewReIndexObject(ctx, obj, before))
		}
	})
}

// isBlocked returns whether the object cannot move in the given order:
// it is at the end it moves to, or behind selected siblings that are.
func isBlocked(obj fxom.Object, order Orders, selected []fxom.Object) bool {
	ob := obj.AsObject()
	for {
		var next fxom.Object
		if order.forward() {
			next = ob.NextSibling()
		} else {
			next = ob.PreviousSibling()
		}
		if next == nil {
			return true
		}
		if !slices.Contains(selected, next) {
			return false
		}
		ob = next.AsObject()
	}
}
