// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides the component catalog: which classes
// exist, their value properties with defaults and inspector paths,
// and the accessories through which containers hold children.
package metadata

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jinzhu/copier"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/base/iox/yamlx"
	"cogentcore.org/builder/fxom"
)

//go:embed catalog.yaml
var catalogFS embed.FS

// SuggestThreshold is the minimum similarity of a class name
// returned by [Catalog.Suggest].
var SuggestThreshold = 0.5

// Class describes one component class.
type Class struct {

	// Name is the simple class name.
	Name string `yaml:"name"`

	// Super is the name of the superclass, if any.
	Super string `yaml:"super"`

	// Package is the package of the class, used for imports.
	Package string `yaml:"package"`

	// Abstract classes cannot be instantiated.
	Abstract bool `yaml:"abstract"`

	// DefaultProperty receives children written without a property element.
	DefaultProperty string `yaml:"defaultProperty"`

	// DefaultWidth is the width of a new instance without explicit size.
	DefaultWidth float64 `yaml:"defaultWidth"`

	// DefaultHeight is the height of a new instance without explicit size.
	DefaultHeight float64 `yaml:"defaultHeight"`

	// SizeProperties are the properties holding the explicit size:
	// width and height, or a single radius.
	SizeProperties []string `yaml:"sizeProperties"`

	// FreeChildPositioning is whether children are positioned by
	// their layout coordinates rather than by the container.
	FreeChildPositioning bool `yaml:"freeChildPositioning"`

	// Properties are the value properties, including inherited ones.
	Properties []*ValueProperty `yaml:"properties"`

	// Statics are the static properties this class defines on its children.
	Statics []*ValueProperty `yaml:"statics"`

	// Accessories are the structural slots, including inherited ones.
	Accessories []*Accessory `yaml:"accessories"`

	flattened bool
}

func (cl *Class) String() string {
	return cl.Name
}

// Property returns the value property with the given name, or nil.
func (cl *Class) Property(name string) *ValueProperty {
	i := slices.IndexFunc(cl.Properties, func(vp *ValueProperty) bool { return vp.Name == name })
	if i < 0 {
		return nil
	}
	return cl.Properties[i]
}

// Static returns the static property with the given name, or nil.
func (cl *Class) Static(name string) *ValueProperty {
	i := slices.IndexFunc(cl.Statics, func(vp *ValueProperty) bool { return vp.Name == name })
	if i < 0 {
		return nil
	}
	return cl.Statics[i]
}

// Accessory returns the accessory with the given name, or nil.
func (cl *Class) Accessory(name string) *Accessory {
	i := slices.IndexFunc(cl.Accessories, func(a *Accessory) bool { return a.Name == name })
	if i < 0 {
		return nil
	}
	return cl.Accessories[i]
}

// MainAccessory returns the main accessory, or nil.
func (cl *Class) MainAccessory() *Accessory {
	i := slices.IndexFunc(cl.Accessories, func(a *Accessory) bool { return a.Main })
	if i < 0 {
		return nil
	}
	return cl.Accessories[i]
}

// Catalog is a set of component classes.
type Catalog struct {
	Classes []*Class `yaml:"classes"`

	byName map[string]*Class
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return errors.Must1(OpenCatalogFS(catalogFS, "catalog.yaml"))
}

// ReadCatalog reads a catalog from YAML bytes.
func ReadCatalog(b []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yamlx.ReadBytes(c, b); err != nil {
		return nil, fmt.Errorf("metadata.ReadCatalog: %w", err)
	}
	return c, c.init()
}

// OpenCatalog reads a catalog from a YAML file.
func OpenCatalog(filename string) (*Catalog, error) {
	c := &Catalog{}
	if err := yamlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("metadata.OpenCatalog: %w", err)
	}
	return c, c.init()
}

// OpenCatalogFS reads a catalog from a YAML file in the filesystem.
func OpenCatalogFS(fsys fs.FS, filename string) (*Catalog, error) {
	c := &Catalog{}
	if err := yamlx.OpenFS(c, fsys, filename); err != nil {
		return nil, fmt.Errorf("metadata.OpenCatalogFS: %w", err)
	}
	return c, c.init()
}

func (c *Catalog) init() error {
	c.byName = make(map[string]*Class, len(c.Classes))
	for _, cl := range c.Classes {
		if _, has := c.byName[cl.Name]; has {
			return fmt.Errorf("metadata: class %s is declared twice", cl.Name)
		}
		c.byName[cl.Name] = cl
		for _, st := range cl.Statics {
			st.Residence = cl.Name
		}
	}
	for _, cl := range c.Classes {
		if err := c.flatten(cl, nil); err != nil {
			return err
		}
	}
	return nil
}

// flatten merges the inherited descriptors of the superclass chain
// into the class. Inherited descriptors are deep copies so that
// subclasses can override defaults.
func (c *Catalog) flatten(cl *Class, visiting []string) error {
	if cl.flattened || cl.Super == "" {
		cl.flattened = true
		return nil
	}
	if slices.Contains(visiting, cl.Name) {
		return fmt.Errorf("metadata: class %s inherits from itself", cl.Name)
	}
	sup := c.byName[cl.Super]
	if sup == nil {
		return fmt.Errorf("metadata: superclass %s of %s is not declared", cl.Super, cl.Name)
	}
	if err := c.flatten(sup, append(visiting, cl.Name)); err != nil {
		return err
	}
	var props []*ValueProperty
	if err := copier.CopyWithOption(&props, &sup.Properties, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	for _, vp := range cl.Properties {
		if i := slices.IndexFunc(props, func(p *ValueProperty) bool { return p.Name == vp.Name }); i >= 0 {
			props[i] = vp
		} else {
			props = append(props, vp)
		}
	}
	cl.Properties = props

	var accs []*Accessory
	if err := copier.CopyWithOption(&accs, &sup.Accessories, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	for _, a := range cl.Accessories {
		if a.Main {
			for _, ia := range accs {
				ia.Main = false
			}
		}
		if i := slices.IndexFunc(accs, func(p *Accessory) bool { return p.Name == a.Name }); i >= 0 {
			accs[i] = a
		} else {
			accs = append(accs, a)
		}
	}
	cl.Accessories = accs

	if cl.DefaultProperty == "" {
		cl.DefaultProperty = sup.DefaultProperty
	}
	if cl.SizeProperties == nil {
		cl.SizeProperties = sup.SizeProperties
	}
	if cl.DefaultWidth == 0 && cl.DefaultHeight == 0 {
		cl.DefaultWidth, cl.DefaultHeight = sup.DefaultWidth, sup.DefaultHeight
	}
	if cl.Package == "" {
		cl.Package = sup.Package
	}
	cl.flattened = true
	return nil
}

// Class returns the class of the given type name, which may be
// package qualified, or nil if it is unknown.
func (c *Catalog) Class(typ string) *Class {
	return c.byName[fxom.SimpleTypeName(typ)]
}

// ClassOf returns the class of the given object, or nil.
func (c *Catalog) ClassOf(obj fxom.Object) *Class {
	switch o := obj.(type) {
	case *fxom.Instance:
		return c.Class(o.Type)
	case *fxom.Virtual:
		return c.Class(o.Type)
	}
	return nil
}

// IsAssignable returns whether the type is the given superclass or
// inherits from it.
func (c *Catalog) IsAssignable(typ, super string) bool {
	super = fxom.SimpleTypeName(super)
	for cl := c.Class(typ); cl != nil; cl = c.byName[cl.Super] {
		if cl.Name == super {
			return true
		}
	}
	return false
}

// IsNode returns whether the type is a scene graph node class.
func (c *Catalog) IsNode(typ string) bool {
	return c.IsAssignable(typ, "Node")
}

// Suggest returns the known class name most similar to the given
// name, or "" if none is similar enough.
func (c *Catalog) Suggest(name string) string {
	name = fxom.SimpleTypeName(name)
	best, bestSim := "", SuggestThreshold
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	for _, cl := range c.Classes {
		if cl.Abstract {
			continue
		}
		if sim := strutil.Similarity(name, cl.Name, lev); sim > bestSim {
			best, bestSim = cl.Name, sim
		}
	}
	return best
}

// DefaultProperty returns the default property of the given type.
func (c *Catalog) DefaultProperty(typ string) string {
	if cl := c.Class(typ); cl != nil {
		return cl.DefaultProperty
	}
	return ""
}

// ReadOptions returns the FXML read options for this catalog.
func (c *Catalog) ReadOptions() *fxom.ReadOptions {
	return &fxom.ReadOptions{DefaultProperty: c.DefaultProperty}
}

// QueryValueProperty returns the value property of the instance with
// the given name, or nil if the instance class or static residence
// does not declare it.
func (c *Catalog) QueryValueProperty(inst *fxom.Instance, name fxom.PropertyName) *ValueProperty {
	if name.IsStatic() {
		if cl := c.Class(name.Residence); cl != nil {
			return cl.Static(name.Name)
		}
		return nil
	}
	if cl := c.Class(inst.Type); cl != nil {
		return cl.Property(name.Name)
	}
	return nil
}

// ValueProperties returns the value properties of the instance class.
func (c *Catalog) ValueProperties(inst *fxom.Instance) []*ValueProperty {
	if cl := c.Class(inst.Type); cl != nil {
		return cl.Properties
	}
	return nil
}

// StaticProperties returns the static properties of the given residence.
func (c *Catalog) StaticProperties(residence string) []*ValueProperty {
	if cl := c.Class(residence); cl != nil {
		return cl.Statics
	}
	return nil
}

// IsPropertyTrimmingNeeded returns whether a property with the given
// name must be removed from an object placed in a parent of the given
// type; an empty parent type means the object becomes the root.
// Static properties only survive under their residence class.
func (c *Catalog) IsPropertyTrimmingNeeded(name fxom.PropertyName, parentType string) bool {
	if !name.IsStatic() {
		return false
	}
	return parentType == "" || !c.IsAssignable(parentType, name.Residence)
}

// Imports returns the sorted import list of the classes used by the document.
func (c *Catalog) Imports(d *fxom.Document) []string {
	set := map[string]bool{}
	d.Walk(func(obj fxom.Object) bool {
		typ := ""
		switch o := obj.(type) {
		case *fxom.Instance:
			typ = o.Type
		case *fxom.Collection:
			typ = o.Type
		}
		if typ == "" {
			return fxom.Continue
		}
		if strings.Contains(typ, ".") {
			set[typ] = true
		} else if cl := c.Class(typ); cl != nil && cl.Package != "" {
			set[cl.Package+"."+cl.Name] = true
		}
		return fxom.Continue
	})
	imps := make([]string, 0, len(set))
	for imp := range set {
		imps = append(imps, imp)
	}
	sort.Strings(imps)
	return imps
}
