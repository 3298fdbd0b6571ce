// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/metadata"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<BorderPane xmlns:fx="http://javafx.com/fxml/1">
    <center>
        <VBox fx:id="box">
            <Button fx:id="ok" text="OK"/>
            <HBox fx:id="row">
                <Label fx:id="l1"/>
                <Label fx:id="l2"/>
            </HBox>
        </VBox>
    </center>
    <bottom>
        <LineChart fx:id="chart">
            <xAxis>
                <NumberAxis fx:id="x"/>
            </xAxis>
        </LineChart>
    </bottom>
</BorderPane>
`

func readSample(t *testing.T, cat *metadata.Catalog) *fxom.Document {
	d, err := fxom.ReadBytes([]byte(sample), cat.ReadOptions())
	require.NoError(t, err)
	return d
}

func TestAccessories(t *testing.T) {
	cat := metadata.NewCatalog()
	d := readSample(t, cat)

	root := New(d.Root(), cat)
	assert.Nil(t, root.MainAccessory())
	assert.Len(t, root.Accessories(), 5)
	assert.False(t, root.IsFreeChildPositioning())

	center := root.Accessory("center")
	require.NotNil(t, center)
	assert.False(t, root.IsAccessoryFree(center))
	assert.True(t, root.IsAccessoryFree(root.Accessory("top")))
	assert.Equal(t, fxom.PropName("center"), root.PropertyNameForAccessory(center))

	box := d.SearchWithFxID("box")
	assert.Equal(t, center, root.AccessoryOf(box))
	assert.Nil(t, root.AccessoryOf(d.SearchWithFxID("ok")))

	bm := New(box, cat)
	require.NotNil(t, bm.MainAccessory())
	assert.Equal(t, "children", bm.MainAccessory().Name)
	assert.Equal(t, 2, bm.SubComponentCount(nil, false))
	assert.Equal(t, 4, bm.SubComponentCount(nil, true))
	assert.Equal(t, []fxom.Object{d.SearchWithFxID("ok"), d.SearchWithFxID("row")}, bm.SubComponents(nil))

	assert.True(t, New(fxom.NewInstance(d, "Pane"), cat).IsFreeChildPositioning())
	assert.True(t, New(fxom.NewInstance(d, "AnchorPane"), cat).IsFreeChildPositioning())
	assert.False(t, New(fxom.NewInstance(d, "HBox"), cat).IsFreeChildPositioning())
}

func TestAccepting(t *testing.T) {
	cat := metadata.NewCatalog()
	d := readSample(t, cat)
	root := New(d.Root(), cat)
	box := d.SearchWithFxID("box")
	ok := d.SearchWithFxID("ok")
	row := d.SearchWithFxID("row")

	b1 := fxom.NewInstance(d, "Button")
	b2 := fxom.NewInstance(d, "Button")
	top := root.Accessory("top")
	assert.True(t, root.IsAcceptingAccessory(top, b1))
	assert.False(t, root.IsAcceptingAccessory(top, b1, b2), "single valued")

	bm := New(box, cat)
	assert.True(t, bm.IsAcceptingSubComponent(b1, b2))
	assert.True(t, bm.IsAcceptingSubComponent(fxom.NewInstance(d, "my.Custom")))
	assert.True(t, bm.IsAcceptingSubComponent(fxom.NewIntrinsic(d, fxom.Include, "other.fxml")))
	assert.False(t, bm.IsAcceptingSubComponent(fxom.NewInstance(d, "Tab")), "not a node")
	assert.False(t, New(row, cat).IsAcceptingSubComponent(box), "ancestor")
	assert.False(t, bm.IsAcceptingSubComponent(box), "itself")
	assert.False(t, New(ok, cat).IsAcceptingSubComponent(b1), "graphic is single valued")

	chart := New(d.SearchWithFxID("chart"), cat)
	assert.True(t, chart.IsAcceptingAccessory(chart.Accessory("yAxis"), fxom.NewInstance(d, "CategoryAxis")))
	assert.False(t, chart.IsAcceptingAccessory(chart.Accessory("yAxis"), b1))
	assert.False(t, chart.IsAcceptingAccessory(top, b1), "foreign accessory")

	tp := New(fxom.NewInstance(d, "TabPane"), cat)
	assert.True(t, tp.IsAcceptingSubComponent(fxom.NewInstance(d, "Tab")))
	assert.False(t, tp.IsAcceptingSubComponent(b1))

	unknown := New(fxom.NewInstance(d, "my.Custom"), cat)
	assert.Nil(t, unknown.Class())
	assert.False(t, unknown.IsAcceptingSubComponent(b1))
}
