// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/selection"
)

// printTree prints the object tree of the document, one object per
// line, marking the selected objects with a star.
func printTree(w io.Writer, d *fxom.Document, sel *selection.Selection) {
	out := termenv.NewOutput(w)
	if d.Root() == nil {
		fmt.Fprintln(w, out.String("(empty document)").Faint())
		return
	}
	printObject(w, out, d.Root(), sel, 0)
}

func printObject(w io.Writer, out *termenv.Output, obj fxom.Object, sel *selection.Selection, depth int) {
	ob := obj.AsObject()
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	b.WriteString(indent)
	switch o := obj.(type) {
	case *fxom.Instance:
		b.WriteString(out.String(o.Type).Foreground(out.Color("#8be9fd")).String())
	case *fxom.Intrinsic:
		b.WriteString(out.String("fx:" + o.Kind.String()).Foreground(out.Color("#bd93f9")).String())
		if o.Source != "" {
			b.WriteString(" " + o.Source)
		}
	default:
		b.WriteString(ob.String())
	}
	if id := ob.FxID(); id != "" {
		b.WriteString(" " + out.String("#"+id).Bold().String())
	}
	if sel != nil && sel.IsSelected(obj) {
		b.WriteString(" " + out.String("*").Foreground(out.Color("#f1c40f")).String())
	}
	fmt.Fprintln(w, b.String())

	inst, ok := obj.(*fxom.Instance)
	if !ok {
		for _, c := range obj.Children() {
			printObject(w, out, c, sel, depth+1)
		}
		return
	}
	for _, p := range inst.Properties() {
		pc, ok := p.(*fxom.PropertyC)
		if !ok {
			continue
		}
		fmt.Fprintln(w, indent+"  "+out.String(pc.Name().String()).Faint().String())
		for _, c := range pc.Values() {
			printObject(w, out, c, sel, depth+2)
		}
	}
}
