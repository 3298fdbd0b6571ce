// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

const (
	// FxNamespace is the namespace of the fx: prefix.
	FxNamespace = "http://javafx.com/fxml/1"

	// ToolkitNamespace is the prefix of the default namespace,
	// followed by the toolkit version.
	ToolkitNamespace = "http://javafx.com/javafx/"

	// DefineProperty is the name of the pseudo property holding
	// fx:define content of an instance.
	DefineProperty = "fx:define"
)

// ReadOptions configures FXML reading.
type ReadOptions struct {

	// DefaultProperty returns the default property of the given
	// type, which receives child objects written directly inside
	// an instance element. If nil, "children" is used.
	DefaultProperty func(typ string) string
}

func (o *ReadOptions) defaultProperty(typ string) string {
	if o != nil && o.DefaultProperty != nil {
		if dp := o.DefaultProperty(typ); dp != "" {
			return dp
		}
	}
	return "children"
}

// Read reads a document from the given FXML source.
func Read(r io.Reader, opts *ReadOptions) (*Document, error) {
	d := NewDocument()
	d.BeginUpdate()
	defer d.EndUpdate()
	rd := &reader{dec: xml.NewDecoder(r), doc: d, opts: opts}
	for {
		t, err := rd.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fxom.Read: %w", err)
		}
		switch tv := t.(type) {
		case xml.ProcInst:
			if tv.Target == "import" {
				d.Imports = append(d.Imports, strings.TrimSpace(string(tv.Inst)))
			}
		case xml.StartElement:
			if d.root != nil {
				return nil, fmt.Errorf("fxom.Read: more than one root element: %s", tv.Name.Local)
			}
			d.Version = readVersion(tv)
			obj, err := rd.readObject(tv)
			if err != nil {
				return nil, err
			}
			d.root = obj
		}
	}
	return d, nil
}

// ReadBytes reads a document from the given FXML bytes.
func ReadBytes(b []byte, opts *ReadOptions) (*Document, error) {
	return Read(bytes.NewReader(b), opts)
}

// ReadFragment reads detached objects bound to the given document
// from a fragment, which is either a single object element or an
// fx:define element holding any number of objects.
func ReadFragment(r io.Reader, d *Document, opts *ReadOptions) ([]Object, error) {
	scratch := NewDocument()
	rd := &reader{dec: xml.NewDecoder(r), doc: scratch, opts: opts}
	var objs []Object
	for {
		t, err := rd.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fxom.ReadFragment: %w", err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if isFx(se.Name) && se.Name.Local == "define" {
			defs, err := rd.readObjects()
			if err != nil {
				return nil, err
			}
			objs = append(objs, defs...)
			continue
		}
		obj, err := rd.readObject(se)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	for _, obj := range objs {
		obj.AsObject().MoveToDocument(d)
	}
	return objs, nil
}

type reader struct {
	dec  *xml.Decoder
	doc  *Document
	opts *ReadOptions
}

func isFx(n xml.Name) bool {
	return n.Space == FxNamespace || n.Space == "fx"
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}

func readVersion(se xml.StartElement) *semver.Version {
	for _, a := range se.Attr {
		if a.Name.Space != "" || a.Name.Local != "xmlns" || !strings.HasPrefix(a.Value, ToolkitNamespace) {
			continue
		}
		v, err := semver.NewVersion(strings.TrimPrefix(a.Value, ToolkitNamespace))
		if err != nil {
			slog.Debug("fxom: ignoring toolkit version", "xmlns", a.Value, "err", err)
			return nil
		}
		return v
	}
	return nil
}

// propertyElementName returns the property name of a property
// element; element names whose last segment starts with a lower
// case letter are properties.
func propertyElementName(n xml.Name) (PropertyName, bool) {
	if isFx(n) {
		return PropName(DefineProperty), n.Local == "define"
	}
	last := n.Local
	if i := strings.LastIndexByte(last, '.'); i >= 0 {
		last = last[i+1:]
	}
	if last == "" || !unicode.IsLower([]rune(last)[0]) {
		return PropertyName{}, false
	}
	return ParsePropertyName(n.Local), true
}

func attrValue(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func fxAttrValue(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if isFx(a.Name) && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func (r *reader) readObject(se xml.StartElement) (Object, error) {
	if isFx(se.Name) {
		switch se.Name.Local {
		case "include":
			return r.readIntrinsic(se, Include)
		case "reference":
			return r.readIntrinsic(se, Reference)
		case "copy":
			return r.readIntrinsic(se, Copy)
		case "root":
			typ := attrValue(se, "type")
			if typ == "" {
				return nil, fmt.Errorf("fxom.Read: fx:root without type")
			}
			inst := NewInstance(r.doc, typ)
			inst.fxRoot = true
			return inst, r.readInstance(inst, se)
		}
		return nil, fmt.Errorf("fxom.Read: unexpected element fx:%s", se.Name.Local)
	}
	if factory := fxAttrValue(se, "factory"); factory != "" {
		c := NewCollection(r.doc, se.Name.Local, factory)
		c.fxID = fxAttrValue(se, "id")
		objs, err := r.readObjects()
		if err != nil {
			return nil, err
		}
		for _, obj := range objs {
			c.AddItem(-1, obj)
		}
		return c, nil
	}
	inst := NewInstance(r.doc, se.Name.Local)
	return inst, r.readInstance(inst, se)
}

func (r *reader) readIntrinsic(se xml.StartElement, kind IntrinsicKind) (Object, error) {
	it := NewIntrinsic(r.doc, kind, attrValue(se, "source"))
	it.fxID = fxAttrValue(se, "id")
	if err := r.dec.Skip(); err != nil {
		return nil, fmt.Errorf("fxom.Read: %w", err)
	}
	return it, nil
}

// readObjects reads object elements up to the end of the current element.
func (r *reader) readObjects() ([]Object, error) {
	var objs []Object
	for {
		t, err := r.dec.Token()
		if err != nil {
			return nil, fmt.Errorf("fxom.Read: %w", err)
		}
		switch tv := t.(type) {
		case xml.StartElement:
			obj, err := r.readObject(tv)
			if err != nil {
				return nil, err
			}
			objs = append(objs, obj)
		case xml.EndElement:
			return objs, nil
		}
	}
}

func (r *reader) readInstance(inst *Instance, se xml.StartElement) error {
	for _, a := range se.Attr {
		switch {
		case isNamespaceDecl(a.Name):
		case isFx(a.Name):
			switch a.Name.Local {
			case "id":
				inst.fxID = a.Value
			case "controller":
				inst.fxController = a.Value
			case "value":
				inst.FxValue = a.Value
			case "constant":
				inst.FxConstant = a.Value
			}
		case inst.fxRoot && a.Name.Local == "type":
		default:
			name := ParsePropertyName(a.Name.Local)
			if inst.Property(name) != nil {
				return fmt.Errorf("fxom.Read: duplicate property %s on %s", name, inst.Type)
			}
			NewPropertyT(r.doc, name, a.Value).AddToParentInstance(-1, inst)
		}
	}
	for {
		t, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("fxom.Read: %w", err)
		}
		switch tv := t.(type) {
		case xml.StartElement:
			if name, ok := propertyElementName(tv.Name); ok {
				if err := r.readPropertyElement(inst, name); err != nil {
					return err
				}
				continue
			}
			child, err := r.readObject(tv)
			if err != nil {
				return err
			}
			if err := r.addValue(inst, PropName(r.opts.defaultProperty(inst.SimpleType())), child); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (r *reader) readPropertyElement(inst *Instance, name PropertyName) error {
	var objs []Object
	var text strings.Builder
loop:
	for {
		t, err := r.dec.Token()
		if err != nil {
			return fmt.Errorf("fxom.Read: %w", err)
		}
		switch tv := t.(type) {
		case xml.StartElement:
			obj, err := r.readObject(tv)
			if err != nil {
				return err
			}
			objs = append(objs, obj)
		case xml.CharData:
			text.Write(tv)
		case xml.EndElement:
			break loop
		}
	}
	if len(objs) > 0 {
		for _, obj := range objs {
			if err := r.addValue(inst, name, obj); err != nil {
				return err
			}
		}
		return nil
	}
	if s := strings.TrimSpace(text.String()); s != "" {
		if inst.Property(name) != nil {
			return fmt.Errorf("fxom.Read: duplicate property %s on %s", name, inst.Type)
		}
		NewPropertyT(r.doc, name, s).AddToParentInstance(-1, inst)
	}
	return nil
}

func (r *reader) addValue(inst *Instance, name PropertyName, obj Object) error {
	pc := inst.PropertyC(name)
	if pc == nil {
		if inst.Property(name) != nil {
			return fmt.Errorf("fxom.Read: property %s on %s is both a value and a list", name, inst.Type)
		}
		pc = NewPropertyC(r.doc, name)
		pc.AddToParentInstance(-1, inst)
	}
	obj.AsObject().AddToParentProperty(-1, pc)
	return nil
}
