// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"fmt"
	"strings"
)

// Kinds are the value kinds of value properties.
type Kinds int32

const (
	// String is free text.
	String Kinds = iota

	// Double is a floating point number.
	Double

	// Integer is a whole number.
	Integer

	// Boolean is true or false.
	Boolean

	// Enum is one of a fixed set of names.
	Enum

	// Style is a list of CSS declarations.
	Style

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [...]string{"string", "double", "integer", "boolean", "enum", "style"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its name.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindNames {
		if strings.EqualFold(nm, s) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value kind", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kinds) UnmarshalText(text []byte) error {
	return k.SetString(string(text))
}
