// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"strconv"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/mask"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/scenegraph"
	"cogentcore.org/builder/selection"
)

// ContainerKinds are the kinds of container the selection can be
// wrapped in.
type ContainerKinds int32

const (
	AnchorPane ContainerKinds = iota
	BorderPane
	DialogPane
	FlowPane
	GridPane
	Group
	HBox
	Pane
	ScrollPane
	SplitPane
	StackPane
	TabPane
	TextFlow
	TilePane
	TitledPane
	ToolBar
	VBox

	// Scene wraps a single parent node as the root of a new scene.
	Scene

	// Stage wraps a single parent node in a new scene of a new stage.
	Stage

	ContainerKindsN
)

var containerNames = [...]string{
	"AnchorPane", "BorderPane", "DialogPane", "FlowPane", "GridPane", "Group",
	"HBox", "Pane", "ScrollPane", "SplitPane", "StackPane", "TabPane",
	"TextFlow", "TilePane", "TitledPane", "ToolBar", "VBox", "Scene", "Stage",
}

// String returns the class name of the container.
func (k ContainerKinds) String() string {
	if k >= 0 && k < ContainerKindsN {
		return containerNames[k]
	}
	return "ContainerKinds(" + strconv.Itoa(int(k)) + ")"
}

// ParseContainerKind returns the container kind with the given class name.
func ParseContainerKind(s string) (ContainerKinds, error) {
	for i, n := range containerNames {
		if n == s {
			return ContainerKinds(i), nil
		}
	}
	return ContainerKindsN, fmt.Errorf("job: %q is not a container kind", s)
}

// wrapStrategy describes how the children go into a new container.
type wrapStrategy struct {

	// accessory holds the children; empty means the main accessory.
	accessory string

	// accepts overrides the class the children must be assignable to.
	accepts string

	// single kinds wrap exactly one object.
	single bool

	// assemble adds the fixed structure of the container in the
	// scratch document.
	assemble func(ctx *Context, container *fxom.Instance, w *wrapping)

	// wrapChildren returns the jobs placing the detached children.
	wrapChildren func(ctx *Context, container *fxom.Instance, w *wrapping) []Job
}

// wrapping is the state shared by the steps of one wrap.
type wrapping struct {
	children []fxom.Object
	bounds   []geom.Box2

	// slot is the object the children go under when it is not the
	// container itself: the new tab, or the placeholder of a scene.
	slot fxom.Object

	placement *GridPlacement
}

var wrapStrategies = map[ContainerKinds]*wrapStrategy{
	BorderPane: {accessory: "center", single: true},
	DialogPane: {accessory: "content", single: true},
	ScrollPane: {single: true},
	TitledPane: {single: true},
	TabPane:    {single: true, accepts: "Node", assemble: assembleTab, wrapChildren: wrapInTab},
	GridPane:   {assemble: assembleGrid, wrapChildren: wrapInGrid},
	Scene:      {single: true, accepts: "Parent", assemble: assembleScene, wrapChildren: replacePlaceholder},
	Stage:      {single: true, accepts: "Parent", assemble: assembleStage, wrapChildren: replacePlaceholder},
}

func strategyOf(kind ContainerKinds) *wrapStrategy {
	if s, ok := wrapStrategies[kind]; ok {
		return s
	}
	return &wrapStrategy{}
}

// accessoryOf returns the accessory of the container that holds the
// wrapped children, or nil for kinds that use a slot object.
func (s *wrapStrategy) accessoryOf(m *mask.Mask) *metadata.Accessory {
	if s.accepts != "" {
		return nil
	}
	if s.accessory != "" {
		return m.Accessory(s.accessory)
	}
	return m.MainAccessory()
}

// placeChildren returns the jobs adding the children, in order, to the
// named complex property of the parent, which gets the property if it
// does not have it yet.
func placeChildren(ctx *Context, parent *fxom.Instance, name fxom.PropertyName, children []fxom.Object) []Job {
	var res []Job
	pc := parent.PropertyC(name)
	attached := pc != nil
	if !attached {
		pc = fxom.NewPropertyC(ctx.Document, name)
	}
	for i, c := range children {
		res = append(res, NewAddPropertyValue(ctx, c, pc, pc.NumValues()+i))
	}
	if !attached {
		res = append(res, NewAddProperty(ctx, pc, parent, -1))
	}
	return res
}

func assembleTab(ctx *Context, container *fxom.Instance, w *wrapping) {
	d := container.Document()
	tab := fxom.NewInstance(d, "Tab")
	fxom.NewPropertyT(d, fxom.PropName("text"), "Untitled Tab 1").AddToParentInstance(-1, tab)
	tabs := fxom.NewPropertyC(d, fxom.PropName("tabs"))
	tab.AddToParentProperty(-1, tabs)
	tabs.AddToParentInstance(-1, container)
	w.slot = tab
}

func wrapInTab(ctx *Context, container *fxom.Instance, w *wrapping) []Job {
	return placeChildren(ctx, w.slot.(*fxom.Instance), fxom.PropName("content"), w.children)
}

func assembleGrid(ctx *Context, container *fxom.Instance, w *wrapping) {
	d := container.Document()
	w.placement = NewGridPlacement(w.bounds)
	cols, rows := w.placement.constraints(d)
	for _, c := range []struct {
		name string
		objs []fxom.Object
	}{{"columnConstraints", cols}, {"rowConstraints", rows}} {
		pc := fxom.NewPropertyC(d, fxom.PropName(c.name))
		for _, obj := range c.objs {
			obj.AsObject().AddToParentProperty(-1, pc)
		}
		pc.AddToParentInstance(-1, container)
	}
}

func wrapInGrid(ctx *Context, container *fxom.Instance, w *wrapping) []Job {
	res := placeChildren(ctx, container, fxom.PropName("children"), w.children)
	for i, c := range w.children {
		inst, ok := c.(*fxom.Instance)
		if !ok {
			continue
		}
		res = append(res,
			NewModifyObject(ctx, inst, selection.Column.IndexProperty(), strconv.Itoa(w.placement.Columns[i])),
			NewModifyObject(ctx, inst, selection.Row.IndexProperty(), strconv.Itoa(w.placement.Rows[i])))
	}
	return res
}

// addPlaceholder puts a placeholder pane as the root of the scene.
func addPlaceholder(scene *fxom.Instance, w *wrapping) {
	d := scene.Document()
	ph := fxom.NewVirtual(d, "Pane")
	root := fxom.NewPropertyC(d, fxom.PropName("root"))
	ph.AddToParentProperty(-1, root)
	root.AddToParentInstance(-1, scene)
	w.slot = ph
}

func assembleScene(ctx *Context, container *fxom.Instance, w *wrapping) {
	addPlaceholder(container, w)
}

func assembleStage(ctx *Context, container *fxom.Instance, w *wrapping) {
	d := container.Document()
	scene := fxom.NewInstance(d, "Scene")
	pc := fxom.NewPropertyC(d, fxom.PropName("scene"))
	scene.AddToParentProperty(-1, pc)
	pc.AddToParentInstance(-1, container)
	addPlaceholder(scene, w)
}

func replacePlaceholder(ctx *Context, container *fxom.Instance, w *wrapping) []Job {
	return []Job{NewReplaceObject(ctx, w.slot, w.children[0])}
}

// place returns the jobs putting the detached children in the container.
func (s *wrapStrategy) place(ctx *Context, container *fxom.Instance, w *wrapping) []Job {
	if s.wrapChildren != nil {
		return s.wrapChildren(ctx, container, w)
	}
	acc := s.accessoryOf(mask.New(container, ctx.Catalog))
	return placeChildren(ctx, container, acc.PropertyName(), w.children)
}

// boundsInParent returns the bounds of the object in its parent, using
// the layout position alone when the object has no live node.
func boundsInParent(ctx *Context, obj fxom.Object) geom.Box2 {
	if n := scenegraph.NodeOf(obj); n != nil && n.IsNode() {
		return n.BoundsInParent()
	}
	x, y := layoutOf(ctx, obj)
	return geom.B2(x, y, x, y)
}

// layoutOf returns the layout position of the object.
func layoutOf(ctx *Context, obj fxom.Object) (x, y float64) {
	inst, ok := obj.(*fxom.Instance)
	if !ok {
		return
	}
	if vp := ctx.Catalog.QueryValueProperty(inst, fxom.PropName("layoutX")); vp != nil {
		x = vp.Float(inst)
	}
	if vp := ctx.Catalog.QueryValueProperty(inst, fxom.PropName("layoutY")); vp != nil {
		y = vp.Float(inst)
	}
	return
}

// setLayout returns the jobs moving the instance to the given position.
func setLayout(ctx *Context, obj fxom.Object, x, y float64) []Job {
	inst, ok := obj.(*fxom.Instance)
	if !ok || ctx.Catalog.QueryValueProperty(inst, fxom.PropName("layoutX")) == nil {
		return nil
	}
	return []Job{
		NewModifyObject(ctx, inst, fxom.PropName("layoutX"), metadata.FormatDouble(x)),
		NewModifyObject(ctx, inst, fxom.PropName("layoutY"), metadata.FormatDouble(y)),
	}
}

// NewWrapIn returns a job wrapping the selected objects in a new
// container of the given kind. The objects must be nodes sharing one
// parent property, or the single document root.
func NewWrapIn(ctx *Context, kind ContainerKinds) *Batch {
	return NewBatch(ctx, "Wrap in "+kind.String(), func() []Job {
		return wrapIn(ctx, kind)
	})
}

func wrapIn(ctx *Context, kind ContainerKinds) []Job {
	if kind < 0 || kind >= ContainerKindsN {
		return nil
	}
	og := ctx.Selection.Objects()
	if og == nil || !og.HasSingleParent() {
		return nil
	}
	strategy := strategyOf(kind)
	children := og.SortedItems()
	if strategy.single && len(children) != 1 {
		return nil
	}
	for _, c := range children {
		inst, ok := c.(*fxom.Instance)
		if !ok || inst.Document() != ctx.Document || !ctx.Catalog.IsNode(inst.Type) {
			return nil
		}
	}
	first := children[0].AsObject()
	isRoot := first.IsRoot()
	var parent *fxom.Instance
	if isRoot {
		if len(children) != 1 {
			return nil
		}
	} else {
		oldProp := first.ParentProperty()
		if oldProp == nil || oldProp.ParentInstance() == nil {
			return nil
		}
		for _, c := range children {
			if c.AsObject().ParentProperty() != oldProp || isStructuralSlot(ctx, c) {
				return nil
			}
		}
		parent = oldProp.ParentInstance()
		switch {
		case ctx.Catalog.IsAssignable(parent.Type, "BorderPane"), ctx.Catalog.IsAssignable(parent.Type, "DialogPane"):
			if len(children) != 1 {
				return nil
			}
		case ctx.Catalog.IsAssignable(parent.Type, "Accordion"), ctx.Catalog.IsAssignable(parent.Type, "TabPane"):
			return nil
		}
	}

	w := &wrapping{children: children}
	for _, c := range children {
		w.bounds = append(w.bounds, boundsInParent(ctx, c))
	}
	scratch := fxom.NewDocument()
	container := fxom.NewInstance(scratch, kind.String())
	cm := mask.New(container, ctx.Catalog)
	if strategy.accepts != "" {
		for _, c := range children {
			if !ctx.Catalog.IsAssignable(c.(*fxom.Instance).Type, strategy.accepts) {
				return nil
			}
		}
	} else if !cm.IsAcceptingAccessory(strategy.accessoryOf(cm), children...) {
		return nil
	}
	if !isRoot {
		pm := mask.New(parent, ctx.Catalog)
		if !pm.IsAcceptingAccessory(pm.AccessoryOf(children[0]), container) {
			return nil
		}
	}

	union := w.bounds[0]
	for _, b := range w.bounds[1:] {
		union = union.Union(b)
	}
	if !isRoot {
		assembleStatics(ctx, container, children[0].(*fxom.Instance), parent.Type)
		if mask.New(parent, ctx.Catalog).IsFreeChildPositioning() {
			assembleLayout(ctx, container, union.Min)
		}
	}
	if strategy.assemble != nil {
		strategy.assemble(ctx, container, w)
	}
	container.MoveToDocument(ctx.Document)

	var res []Job
	if isRoot {
		res = append(res, moveRootTo(ctx, container)...)
	} else {
		oldProp := first.ParentProperty()
		res = append(res, NewAddPropertyValue(ctx, container, oldProp, first.IndexInParentProperty()))
		for _, c := range children {
			res = append(res, NewRemovePropertyValue(ctx, c))
		}
		for _, c := range children {
			res = append(res, stripStatics(ctx, c, parent.Type)...)
		}
	}
	free := cm.IsFreeChildPositioning()
	for _, c := range children {
		if free {
			x, y := layoutOf(ctx, c)
			res = append(res, setLayout(ctx, c, x-union.Min.X, y-union.Min.Y)...)
		} else {
			res = append(res, setLayout(ctx, c, 0, 0)...)
		}
	}
	res = append(res, strategy.place(ctx, container, w)...)
	for _, c := range children {
		res = append(res, NewPruneProperties(ctx, c, w.parentTypeOf(container)))
	}
	return append(res, NewUpdateSelection(ctx, selection.Objects(container)))
}

// parentTypeOf returns the type of the instance the children end up in.
func (w *wrapping) parentTypeOf(container *fxom.Instance) string {
	if tab, ok := w.slot.(*fxom.Instance); ok {
		return tab.Type
	}
	if w.slot != nil {
		// the placeholder is replaced by the child in the scene root
		return "Scene"
	}
	return container.Type
}

// assembleStatics copies to the container the static properties of the
// first child that belong to the old parent.
func assembleStatics(ctx *Context, container, child *fxom.Instance, parentType string) {
	d := container.Document()
	for _, p := range child.Properties() {
		pt, ok := p.(*fxom.PropertyT)
		if !ok {
			continue
		}
		name := pt.Name()
		if name.IsStatic() && ctx.Catalog.IsAssignable(fxom.SimpleTypeName(parentType), name.Residence) {
			fxom.NewPropertyT(d, name, pt.Value()).AddToParentInstance(-1, container)
		}
	}
}

// assembleLayout positions the container at the given point.
func assembleLayout(ctx *Context, container *fxom.Instance, at geom.Vector2) {
	d := container.Document()
	for _, c := range []struct {
		name string
		v    float64
	}{{"layoutX", at.X}, {"layoutY", at.Y}} {
		vp := ctx.Catalog.QueryValueProperty(container, fxom.PropName(c.name))
		v := metadata.FormatDouble(c.v)
		if vp == nil || vp.Equal(v, vp.DefaultValue()) {
			continue
		}
		fxom.NewPropertyT(d, vp.PropertyName(), v).AddToParentInstance(-1, container)
	}
}
