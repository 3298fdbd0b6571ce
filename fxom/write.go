// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fxom

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Write writes the document as FXML.
func Write(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	if len(d.Imports) > 0 {
		bw.WriteString("\n")
		for _, imp := range d.Imports {
			fmt.Fprintf(bw, "<?import %s?>\n", imp)
		}
	}
	if d.root != nil {
		bw.WriteString("\n")
		wr := newWriter(bw)
		var ns []xml.Attr
		if d.Version != nil {
			ns = append(ns, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: ToolkitNamespace + d.Version.Original()})
		}
		ns = append(ns, xml.Attr{Name: xml.Name{Local: "xmlns:fx"}, Value: FxNamespace})
		if err := wr.writeObject(d.root, ns); err != nil {
			return err
		}
		if err := wr.enc.Flush(); err != nil {
			return err
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteBytes returns the document written as FXML.
func WriteBytes(d *Document) ([]byte, error) {
	var b bytes.Buffer
	err := Write(&b, d)
	return b.Bytes(), err
}

// WriteFragment writes the given objects inside an fx:define element.
func WriteFragment(w io.Writer, objs []Object) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	wr := newWriter(bw)
	start := xml.StartElement{Name: xml.Name{Local: "fx:define"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:fx"}, Value: FxNamespace}}}
	if err := wr.enc.EncodeToken(start); err != nil {
		return err
	}
	for _, obj := range objs {
		if err := wr.writeObject(obj, nil); err != nil {
			return err
		}
	}
	if err := wr.enc.EncodeToken(start.End()); err != nil {
		return err
	}
	if err := wr.enc.Flush(); err != nil {
		return err
	}
	bw.WriteString("\n")
	return bw.Flush()
}

type writer struct {
	enc *xml.Encoder
}

func newWriter(w io.Writer) *writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	return &writer{enc: enc}
}

func fxAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: "fx:" + local}, Value: value}
}

func (w *writer) writeObject(obj Object, attrs []xml.Attr) error {
	ob := obj.AsObject()
	var start xml.StartElement
	switch o := obj.(type) {
	case *Virtual:
		return nil
	case *Intrinsic:
		start.Name.Local = "fx:" + o.Kind.String()
		start.Attr = append(attrs, xml.Attr{Name: xml.Name{Local: "source"}, Value: o.Source})
		if ob.fxID != "" {
			start.Attr = append(start.Attr, fxAttr("id", ob.fxID))
		}
		if err := w.enc.EncodeToken(start); err != nil {
			return err
		}
		return w.enc.EncodeToken(start.End())
	case *Collection:
		start.Name.Local = o.Type
		start.Attr = append(attrs, fxAttr("factory", o.Factory))
		if ob.fxID != "" {
			start.Attr = append(start.Attr, fxAttr("id", ob.fxID))
		}
		if err := w.enc.EncodeToken(start); err != nil {
			return err
		}
		for _, it := range o.items {
			if err := w.writeObject(it, nil); err != nil {
				return err
			}
		}
		return w.enc.EncodeToken(start.End())
	}
	inst := obj.(*Instance)
	start.Name.Local = inst.Type
	start.Attr = attrs
	if inst.fxRoot {
		start.Name.Local = "fx:root"
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: inst.Type})
	}
	if ob.fxID != "" {
		start.Attr = append(start.Attr, fxAttr("id", ob.fxID))
	}
	if ob.fxController != "" {
		start.Attr = append(start.Attr, fxAttr("controller", ob.fxController))
	}
	if inst.FxValue != "" {
		start.Attr = append(start.Attr, fxAttr("value", inst.FxValue))
	}
	if inst.FxConstant != "" {
		start.Attr = append(start.Attr, fxAttr("constant", inst.FxConstant))
	}
	for _, p := range inst.properties.Values {
		if pt, ok := p.(*PropertyT); ok {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: pt.name.String()}, Value: pt.value})
		}
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range inst.properties.Values {
		pc, ok := p.(*PropertyC)
		if !ok {
			continue
		}
		pstart := xml.StartElement{Name: xml.Name{Local: pc.name.String()}}
		if err := w.enc.EncodeToken(pstart); err != nil {
			return err
		}
		for _, v := range pc.values {
			if err := w.writeObject(v, nil); err != nil {
				return err
			}
		}
		if err := w.enc.EncodeToken(pstart.End()); err != nil {
			return err
		}
	}
	return w.enc.EncodeToken(start.End())
}
