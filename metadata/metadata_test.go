// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/fxom"
)

type liveRecorder struct {
	values map[fxom.PropertyName]string
}

func (lr *liveRecorder) SetLiveValue(name fxom.PropertyName, value string) {
	lr.values[name] = value
}

func TestCatalogInheritance(t *testing.T) {
	c := NewCatalog()
	button := c.Class("javafx.scene.control.Button")
	require.NotNil(t, button)
	assert.Equal(t, "javafx.scene.control", button.Package)
	assert.Equal(t, "0.0", button.Property("layoutX").Default)
	assert.Equal(t, "CENTER", button.Property("alignment").Default)
	assert.Equal(t, "CENTER_LEFT", c.Class("Label").Property("alignment").Default)
	assert.NotSame(t, button.Property("layoutX"), c.Class("Label").Property("layoutX"))
	assert.Equal(t, []string{"prefWidth", "prefHeight"}, button.SizeProperties)

	assert.True(t, c.IsAssignable("Button", "Node"))
	assert.True(t, c.IsAssignable("AnchorPane", "javafx.scene.layout.Pane"))
	assert.False(t, c.IsAssignable("Tab", "Node"))
	assert.False(t, c.IsAssignable("Unknown", "Node"))
	assert.True(t, c.IsNode("Circle"))
	assert.Nil(t, c.Class("MyCustomControl"))
}

func TestAccessories(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "children", c.Class("Pane").MainAccessory().Name)
	assert.Equal(t, "content", c.Class("TitledPane").MainAccessory().Name)
	assert.False(t, c.Class("TitledPane").Accessory("graphic").Main)
	assert.True(t, c.Class("Label").Accessory("graphic").Main)
	assert.Nil(t, c.Class("BorderPane").MainAccessory())
	assert.Nil(t, c.Class("LineChart").MainAccessory())
	assert.NotNil(t, c.Class("GridPane").Accessory("children"))
	assert.NotNil(t, c.Class("GridPane").Accessory("columnConstraints"))
	assert.NotNil(t, c.Class("Button").Accessory("tooltip"))

	assert.Equal(t, "X Axis", c.Class("LineChart").Accessory("xAxis").Label())
	assert.Equal(t, "Column Constraints", c.Class("GridPane").Accessory("columnConstraints").Label())
	assert.Equal(t, fxom.PropName("content"), c.Class("Tab").MainAccessory().PropertyName())
	assert.Equal(t, "content", c.DefaultProperty("ScrollPane"))
}

func TestSuggest(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "Button", c.Suggest("Buton"))
	assert.Equal(t, "AnchorPane", c.Suggest("anchorpane"))
	assert.Equal(t, "", c.Suggest("Qwxyzzz"))
}

func TestValueProperty(t *testing.T) {
	c := NewCatalog()
	d := fxom.NewDocument()
	inst := fxom.NewInstance(d, "Button")
	d.SetRoot(inst)
	live := &liveRecorder{values: map[fxom.PropertyName]string{}}
	inst.SetLiveObject(live)

	vp := c.QueryValueProperty(inst, fxom.PropName("layoutX"))
	require.NotNil(t, vp)
	assert.True(t, vp.IsReadWrite())
	assert.Equal(t, "0.0", vp.DefaultValue())
	assert.Equal(t, InspectorPath{Section: "Layout", Subsection: "Position", Order: 1}, vp.InspectorPath())
	assert.True(t, vp.IsDefault(inst))

	vp.SetValue(inst, "10.0")
	assert.Equal(t, "10.0", vp.Value(inst))
	assert.Equal(t, "10.0", live.values[fxom.PropName("layoutX")])
	assert.Equal(t, 10.0, vp.Float(inst))
	tok, ok := vp.Token(inst)
	assert.True(t, ok)
	assert.Equal(t, "10.0", tok)

	vp.SetValue(inst, "0")
	_, ok = vp.Token(inst)
	assert.False(t, ok)
	assert.Nil(t, inst.Property(fxom.PropName("layoutX")))
	assert.Equal(t, "0.0", live.values[fxom.PropName("layoutX")])

	fxom.NewPropertyT(d, fxom.PropName("text"), "OK").AddToParentInstance(-1, inst)
	vp.Restore(inst, TokenState{Value: "0.0", Present: true, Index: 0})
	ts := vp.TokenState(inst)
	assert.Equal(t, TokenState{Value: "0.0", Present: true, Index: 0}, ts)
	assert.Equal(t, fxom.PropName("text"), inst.Properties()[1].AsProperty().Name())
	vp.Restore(inst, TokenState{Index: -1})
	assert.False(t, vp.TokenState(inst).Present)

	assert.Nil(t, c.QueryValueProperty(inst, fxom.PropName("bogus")))
	st := c.QueryValueProperty(inst, fxom.StaticPropName("AnchorPane", "leftAnchor"))
	require.NotNil(t, st)
	assert.Equal(t, "AnchorPane", st.Residence)
	assert.Equal(t, "AnchorPane.leftAnchor", st.String())
	assert.Len(t, c.StaticProperties("GridPane"), 9)
}

func TestValidateAndEqual(t *testing.T) {
	c := NewCatalog()
	button := c.Class("Button")
	assert.NoError(t, button.Property("layoutX").Validate("12.5"))
	assert.Error(t, button.Property("layoutX").Validate("abc"))
	assert.NoError(t, button.Property("visible").Validate("false"))
	assert.Error(t, button.Property("visible").Validate("maybe"))
	assert.NoError(t, button.Property("alignment").Validate("center"))
	assert.Error(t, button.Property("alignment").Validate("MIDDLE"))
	assert.NoError(t, button.Property("style").Validate("-fx-background-color: red; -fx-padding: 4;"))
	assert.NoError(t, c.Class("TilePane").Property("prefColumns").Validate("3"))
	assert.Error(t, c.Class("TilePane").Property("prefColumns").Validate("3.5"))

	assert.True(t, button.Property("layoutX").Equal("10", "10.0"))
	assert.False(t, button.Property("layoutX").Equal("10", "11"))
	assert.True(t, button.Property("visible").Equal("TRUE", "true"))
	assert.False(t, button.Property("text").Equal("a", "A"))

	assert.Equal(t, "10.0", FormatDouble(10))
	assert.Equal(t, "-2.5", FormatDouble(-2.5))
	assert.Equal(t, 3.25, ParseDouble("3.25"))
}

func TestTrimmingAndImports(t *testing.T) {
	c := NewCatalog()
	row := fxom.StaticPropName("GridPane", "rowIndex")
	assert.True(t, c.IsPropertyTrimmingNeeded(row, "AnchorPane"))
	assert.False(t, c.IsPropertyTrimmingNeeded(row, "GridPane"))
	assert.True(t, c.IsPropertyTrimmingNeeded(row, ""))
	assert.False(t, c.IsPropertyTrimmingNeeded(fxom.PropName("text"), ""))

	d, err := fxom.ReadBytes([]byte(`<AnchorPane><children><Button/><my.pkg.Custom/></children></AnchorPane>`), c.ReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"javafx.scene.control.Button", "javafx.scene.layout.AnchorPane", "my.pkg.Custom"}, c.Imports(d))
}

func TestReadCatalogErrors(t *testing.T) {
	_, err := ReadCatalog([]byte("classes:\n  - name: A\n  - name: A\n"))
	assert.ErrorContains(t, err, "declared twice")
	_, err = ReadCatalog([]byte("classes:\n  - name: A\n    super: B\n"))
	assert.ErrorContains(t, err, "not declared")
	_, err = ReadCatalog([]byte("classes:\n  - name: A\n    properties:\n      - {name: x, kind: color}\n"))
	assert.Error(t, err)

	var k Kinds
	assert.NoError(t, k.UnmarshalText([]byte("Double")))
	assert.Equal(t, Double, k)
	assert.Equal(t, "style", Style.String())
}

func TestOpenCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"small.yaml": {Data: []byte("classes:\n  - name: Node\n  - name: Pane\n    super: Node\n")},
	}
	c, err := OpenCatalogFS(fsys, "small.yaml")
	require.NoError(t, err)
	assert.True(t, c.IsAssignable("Pane", "Node"))
	assert.False(t, c.IsAssignable("Node", "Pane"))

	_, err = OpenCatalogFS(fsys, "missing.yaml")
	assert.Error(t, err)
	assert.NotNil(t, NewCatalog().Class("Button"))
}
