// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cogentcore.org/builder/fxom"
)

// Accessory is a named structural slot of a container class,
// holding child objects in a complex property of the same name.
type Accessory struct {

	// Name is the name of the accessory and of its property.
	Name string `yaml:"name"`

	// Accepts is the class that children must be assignable to.
	Accepts string `yaml:"accepts"`

	// Collection is whether the accessory holds any number of
	// children; otherwise it holds at most one.
	Collection bool `yaml:"collection"`

	// Main is whether this is the main accessory of the class.
	Main bool `yaml:"main"`
}

var titler = cases.Title(language.English)

// Label returns the accessory name formatted for display,
// with camel case words separated: xAxis is X Axis.
func (a *Accessory) Label() string {
	var b strings.Builder
	for i, r := range a.Name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titler.String(b.String())
}

// PropertyName returns the name of the property holding the accessory.
func (a *Accessory) PropertyName() fxom.PropertyName {
	return fxom.PropName(a.Name)
}

func (a *Accessory) String() string {
	return a.Name
}
