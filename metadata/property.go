// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"

	"cogentcore.org/builder/fxom"
)

// InspectorPath locates a property in the inspector.
type InspectorPath struct {
	Section    string `yaml:"section"`
	Subsection string `yaml:"subsection"`
	Order      int    `yaml:"order"`
}

// LiveValueSetter is implemented by live objects that mirror
// property values set through [ValueProperty.SetValue].
type LiveValueSetter interface {
	SetLiveValue(name fxom.PropertyName, value string)
}

// ValueProperty describes a token property of a class: its kind,
// default value and inspector location. It reads and writes the
// value of instances in the document and their live objects.
type ValueProperty struct {

	// Name is the property name.
	Name string `yaml:"name"`

	// Residence is the owner class of a static property.
	Residence string `yaml:"-"`

	// Kind is the value kind.
	Kind Kinds `yaml:"kind"`

	// Default is the default value, written in FXML syntax.
	Default string `yaml:"default"`

	// Values are the allowed values of an [Enum] property.
	Values []string `yaml:"values"`

	// ReadOnly properties cannot be edited.
	ReadOnly bool `yaml:"readOnly"`

	// Path is the location of the property in the inspector.
	Path InspectorPath `yaml:",inline"`
}

// PropertyName returns the document name of the property.
func (vp *ValueProperty) PropertyName() fxom.PropertyName {
	return fxom.PropertyName{Name: vp.Name, Residence: vp.Residence}
}

func (vp *ValueProperty) String() string {
	return vp.PropertyName().String()
}

// IsReadWrite returns whether the property can be edited.
func (vp *ValueProperty) IsReadWrite() bool {
	return !vp.ReadOnly
}

// DefaultValue returns the default value of the property.
func (vp *ValueProperty) DefaultValue() string {
	return vp.Default
}

// InspectorPath returns the location of the property in the inspector.
func (vp *ValueProperty) InspectorPath() InspectorPath {
	return vp.Path
}

// TokenState is the raw state of a token property on an instance:
// its value, whether the instance has it and its index.
type TokenState struct {
	Value   string
	Present bool
	Index   int
}

// Token returns the raw token value of the property on the instance
// and whether the instance has it.
func (vp *ValueProperty) Token(inst *fxom.Instance) (string, bool) {
	pt := inst.PropertyT(vp.PropertyName())
	if pt == nil {
		return "", false
	}
	return pt.Value(), true
}

// TokenState returns the raw state of the property on the instance.
func (vp *ValueProperty) TokenState(inst *fxom.Instance) TokenState {
	pt := inst.PropertyT(vp.PropertyName())
	if pt == nil {
		return TokenState{Index: -1}
	}
	return TokenState{Value: pt.Value(), Present: true, Index: pt.IndexInParentInstance()}
}

// Value returns the value of the property on the instance,
// which is the default value when the instance does not have it.
func (vp *ValueProperty) Value(inst *fxom.Instance) string {
	if v, ok := vp.Token(inst); ok {
		return v
	}
	return vp.Default
}

// IsDefault returns whether the instance holds the default value.
func (vp *ValueProperty) IsDefault(inst *fxom.Instance) bool {
	return vp.Equal(vp.Value(inst), vp.Default)
}

// SetValue sets the value of the property on the instance and its
// live object. Setting the default value removes the token property.
func (vp *ValueProperty) SetValue(inst *fxom.Instance, v string) {
	if vp.Equal(v, vp.Default) {
		vp.Restore(inst, TokenState{Index: -1})
		return
	}
	vp.Restore(inst, TokenState{Value: v, Present: true, Index: -1})
}

// Restore puts the property of the instance back in the given raw
// state, mirroring the resulting value into the live object. A
// token that is re-created is inserted at the state index; -1 appends.
func (vp *ValueProperty) Restore(inst *fxom.Instance, ts TokenState) {
	d := inst.Document()
	d.BeginUpdate()
	defer d.EndUpdate()
	name := vp.PropertyName()
	pt := inst.PropertyT(name)
	v := ts.Value
	switch {
	case !ts.Present:
		if pt != nil {
			pt.RemoveFromParentInstance()
		}
		v = vp.Default
	case pt != nil:
		pt.SetValue(v)
	default:
		if inst.Property(name) != nil {
			panic(fmt.Sprintf("metadata.Restore: %s of %s is not a token property", name, inst))
		}
		idx := ts.Index
		if idx > inst.NumProperties() {
			idx = -1
		}
		fxom.NewPropertyT(d, name, v).AddToParentInstance(idx, inst)
	}
	if ls, ok := inst.LiveObject().(LiveValueSetter); ok {
		ls.SetLiveValue(name, v)
	}
}

// Equal returns whether the two values are the same value of this
// property; numbers compare numerically so 10 equals 10.0.
func (vp *ValueProperty) Equal(a, b string) bool {
	switch vp.Kind {
	case Double:
		fa, erra := strconv.ParseFloat(a, 64)
		fb, errb := strconv.ParseFloat(b, 64)
		if erra == nil && errb == nil {
			return fa == fb
		}
	case Integer:
		ia, erra := strconv.Atoi(a)
		ib, errb := strconv.Atoi(b)
		if erra == nil && errb == nil {
			return ia == ib
		}
	case Boolean, Enum:
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Validate returns an error if the value is not a valid value of
// this property.
func (vp *ValueProperty) Validate(v string) error {
	switch vp.Kind {
	case Double:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%s: %q is not a number", vp, v)
		}
	case Integer:
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("%s: %q is not an integer", vp, v)
		}
	case Boolean:
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%s: %q is not true or false", vp, v)
		}
	case Enum:
		if !slices.ContainsFunc(vp.Values, func(e string) bool { return strings.EqualFold(e, v) }) {
			return fmt.Errorf("%s: %q is not one of %s", vp, v, strings.Join(vp.Values, ", "))
		}
	case Style:
		if _, err := parser.ParseDeclarations(v); err != nil {
			return fmt.Errorf("%s: invalid style: %w", vp, err)
		}
	}
	return nil
}

// Float returns the value of a numeric property on the instance,
// or 0 if it does not parse.
func (vp *ValueProperty) Float(inst *fxom.Instance) float64 {
	f, _ := strconv.ParseFloat(vp.Value(inst), 64)
	return f
}

// FormatDouble formats a number the way FXML writes doubles,
// always with a fractional part.
func FormatDouble(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseDouble parses a double value, returning 0 for invalid values.
func ParseDouble(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
