// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/clipboard"
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/scenegraph"
	"cogentcore.org/builder/selection"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<AnchorPane xmlns:fx="http://javafx.com/fxml/1" fx:id="root" prefWidth="600.0" prefHeight="400.0">
    <Button fx:id="a" layoutX="10.0" layoutY="20.0" text="A"/>
    <Button fx:id="b" layoutX="100.0" layoutY="20.0" text="B"/>
    <HBox fx:id="box" layoutX="10.0" layoutY="100.0">
        <Label fx:id="l1" text="one" HBox.hgrow="ALWAYS"/>
        <Label fx:id="l2" text="two"/>
    </HBox>
    <Label fx:id="anchored" layoutX="300.0" layoutY="50.0" AnchorPane.leftAnchor="300.0" AnchorPane.topAnchor="50.0"/>
</AnchorPane>
`

// newContext returns a context editing the given resolved document.
func newContext(t *testing.T, src string) *Context {
	t.Helper()
	cat := metadata.NewCatalog()
	d, err := fxom.ReadBytes([]byte(src), cat.ReadOptions())
	require.NoError(t, err)
	d.SetResolver(scenegraph.NewResolver(cat))
	ctx := NewContext(d)
	ctx.Catalog = cat
	return ctx
}

func byID(t *testing.T, ctx *Context, id string) fxom.Object {
	t.Helper()
	obj := ctx.Document.SearchWithFxID(id)
	require.NotNil(t, obj, id)
	return obj
}

func inst(t *testing.T, ctx *Context, id string) *fxom.Instance {
	t.Helper()
	in, ok := byID(t, ctx, id).(*fxom.Instance)
	require.True(t, ok, id)
	return in
}

func selectIDs(t *testing.T, ctx *Context, ids ...string) {
	t.Helper()
	var objs []fxom.Object
	for _, id := range ids {
		objs = append(objs, byID(t, ctx, id))
	}
	ctx.Selection.SelectObjects(objs...)
}

func snapshot(t *testing.T, d *fxom.Document) string {
	t.Helper()
	b, err := fxom.WriteBytes(d)
	require.NoError(t, err)
	return string(b)
}

// value returns the value of the named property of the instance.
func value(ctx *Context, in *fxom.Instance, name fxom.PropertyName) string {
	return ctx.Catalog.QueryValueProperty(in, name).Value(in)
}

func childIDs(in *fxom.Instance, name string) []string {
	var ids []string
	if pc := in.PropertyC(fxom.PropName(name)); pc != nil {
		for _, c := range pc.Values() {
			ids = append(ids, c.AsObject().FxID())
		}
	}
	return ids
}

// assertSymmetric executes, undoes and redoes the job, checking that
// undo restores the document and redo matches execute.
func assertSymmetric(t *testing.T, ctx *Context, j Job) {
	t.Helper()
	before := snapshot(t, ctx.Document)
	require.True(t, j.IsExecutable(), j.Description())
	j.Execute()
	assert.Equal(t, Applied, j.State())
	after := snapshot(t, ctx.Document)
	assert.NotEqual(t, before, after, j.Description())
	j.Undo()
	assert.Equal(t, before, snapshot(t, ctx.Document), j.Description())
	j.Redo()
	assert.Equal(t, after, snapshot(t, ctx.Document), j.Description())
	j.Undo()
	assert.Equal(t, before, snapshot(t, ctx.Document), j.Description())
	assert.Equal(t, Undone, j.State())
}

func TestLifecycle(t *testing.T) {
	ctx := newContext(t, sample)
	a := inst(t, ctx, "a")
	j := NewModifyObject(ctx, a, fxom.PropName("text"), "Changed")
	assert.Equal(t, Planned, j.State())
	assert.Panics(t, func() { j.Undo() })

	require.True(t, j.IsExecutable())
	assert.Equal(t, Built, j.State())
	rev := ctx.Document.SceneGraphRevision()
	j.Execute()
	assert.Equal(t, rev+1, ctx.Document.SceneGraphRevision())
	assert.Equal(t, "Changed", value(ctx, a, fxom.PropName("text")))
	assert.Panics(t, func() { j.Redo() })
	j.Undo()
	assert.Equal(t, "A", value(ctx, a, fxom.PropName("text")))

	same := NewModifyObject(ctx, a, fxom.PropName("layoutX"), "10")
	assert.False(t, same.IsExecutable())
	assert.Panics(t, func() { same.Execute() })
	assert.False(t, NewModifyObject(ctx, a, fxom.PropName("layoutX"), "left").IsExecutable())
	assert.False(t, NewModifyObject(ctx, a, fxom.PropName("nothing"), "1").IsExecutable())
	assert.Equal(t, "Built", Built.String())
}

func TestBatchNotifiesOnce(t *testing.T) {
	ctx := newContext(t, sample)
	selectIDs(t, ctx, "a", "b")
	docChanges, selChanges := 0, 0
	ctx.Document.OnChange(func(d *fxom.Document) { docChanges++ })
	ctx.Selection.OnChange(func(s *selection.Selection) { selChanges++ })
	j := NewDeleteSelection(ctx)
	require.True(t, j.IsExecutable())
	assert.Equal(t, "Delete 2 Objects", j.Description())
	j.Execute()
	assert.Equal(t, 1, docChanges)
	assert.Equal(t, 1, selChanges)
	assert.True(t, ctx.Selection.IsEmpty())
	j.Undo()
	assert.Equal(t, 2, docChanges)
	assert.Equal(t, []string{"a", "b", "box", "anchored"}, childIDs(ctx.Document.Root().(*fxom.Instance), "children"))
}

func TestUndoSymmetry(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		job      func(t *testing.T, ctx *Context) Job
	}{
		{"modify", nil, func(t *testing.T, ctx *Context) Job {
			return NewModifyObject(ctx, ctx.Document.SearchWithFxID("a").(*fxom.Instance), fxom.PropName("layoutX"), "0")
		}},
		{"fx:id", nil, func(t *testing.T, ctx *Context) Job { return NewModifyFxID(ctx, ctx.Document.SearchWithFxID("a"), "first") }},
		{"delete", []string{"a", "l1"}, func(t *testing.T, ctx *Context) Job { return NewDeleteSelection(ctx) }},
		{"delete root", []string{"root"}, func(t *testing.T, ctx *Context) Job { return NewDeleteSelection(ctx) }},
		{"wrap in pane", []string{"a", "b"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, Pane) }},
		{"wrap in vbox", []string{"l1", "l2"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, VBox) }},
		{"wrap in tab pane", []string{"anchored"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, TabPane) }},
		{"wrap in scroll pane", []string{"b"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, ScrollPane) }},
		{"wrap root in scene", []string{"root"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, Scene) }},
		{"wrap root in stage", []string{"root"}, func(t *testing.T, ctx *Context) Job { return NewWrapIn(ctx, Stage) }},
		{"unwrap", []string{"box"}, func(t *testing.T, ctx *Context) Job { return NewUnwrap(ctx) }},
		{"trim", []string{"box"}, func(t *testing.T, ctx *Context) Job { return NewTrim(ctx) }},
		{"duplicate", []string{"a", "l2"}, func(t *testing.T, ctx *Context) Job { return NewDuplicate(ctx) }},
		{"bring to front", []string{"a"}, func(t *testing.T, ctx *Context) Job { return NewReIndexSelection(ctx, BringToFront) }},
		{"send backward", []string{"anchored"}, func(t *testing.T, ctx *Context) Job { return NewReIndexSelection(ctx, SendBackward) }},
		{"use computed sizes", []string{"root"}, func(t *testing.T, ctx *Context) Job { return NewUseComputedSizes(ctx) }},
		{"fit to parent", []string{"box"}, func(t *testing.T, ctx *Context) Job { return NewFitToParent(ctx) }},
		{"modify selection", []string{"a", "b", "box"}, func(t *testing.T, ctx *Context) Job {
			return NewModifySelection(ctx, fxom.PropName("text"), "Same")
		}},
		{"paste into", []string{"box"}, func(t *testing.T, ctx *Context) Job {
			require.NoError(t, clipboard.Copy(ctx.Clipboard, []fxom.Object{ctx.Document.SearchWithFxID("a")}))
			return NewPasteInto(ctx)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, sample)
			selectIDs(t, ctx, tt.selected...)
			assertSymmetric(t, ctx, tt.job(t, ctx))
		})
	}
}

func TestDeleteAllOrNothing(t *testing.T) {
	ctx := newContext(t, `<VBox xmlns:fx="http://javafx.com/fxml/1">
    <LineChart fx:id="chart">
        <xAxis>
            <NumberAxis fx:id="x"/>
        </xAxis>
    </LineChart>
    <Label fx:id="l"/>
</VBox>`)
	before := snapshot(t, ctx.Document)
	selectIDs(t, ctx, "l", "x")
	assert.False(t, NewDeleteSelection(ctx).IsExecutable())
	assert.Equal(t, before, snapshot(t, ctx.Document))

	selectIDs(t, ctx, "l")
	del := NewDeleteSelection(ctx)
	require.True(t, del.IsExecutable())
	del.Execute()
	assert.Nil(t, ctx.Document.SearchWithFxID("l"))
	assert.NotNil(t, ctx.Document.SearchWithFxID("x"))
}

func TestInsertThenDelete(t *testing.T) {
	src, err := fxom.ReadBytes([]byte(`<Label xmlns:fx="http://javafx.com/fxml/1" fx:id="hello" text="Hello"/>`), nil)
	require.NoError(t, err)
	ctx := NewContext(fxom.NewDocument())
	require.NoError(t, clipboard.Copy(ctx.Clipboard, []fxom.Object{src.Root()}))

	paste := NewPaste(ctx)
	require.True(t, paste.IsExecutable())
	paste.Execute()
	root := ctx.Document.Root()
	require.NotNil(t, root)
	assert.Equal(t, "hello", root.AsObject().FxID())
	assert.True(t, ctx.Selection.IsSelected(root))

	del := NewDeleteSelection(ctx)
	require.True(t, del.IsExecutable())
	del.Execute()
	assert.Nil(t, ctx.Document.Root())

	del.Undo()
	assert.Same(t, root, ctx.Document.Root())
	paste.Undo()
	assert.Nil(t, ctx.Document.Root())
}

func TestTrim(t *testing.T) {
	ctx := newContext(t, `<VBox xmlns:fx="http://javafx.com/fxml/1" fx:id="top" fx:controller="app.Main">
    <HBox fx:id="mid" VBox.vgrow="ALWAYS">
        <Label fx:id="leaf" text="x"/>
    </HBox>
</VBox>`)
	before := snapshot(t, ctx.Document)
	selectIDs(t, ctx, "mid")
	trim := NewTrim(ctx)
	require.True(t, trim.IsExecutable())
	trim.Execute()

	mid := ctx.Document.Root().(*fxom.Instance)
	assert.Equal(t, "mid", mid.FxID())
	assert.Equal(t, "app.Main", mid.FxController())
	assert.Nil(t, mid.Property(fxom.StaticPropName("VBox", "vgrow")))
	assert.Equal(t, []string{"leaf"}, childIDs(mid, "children"))
	assert.Nil(t, ctx.Document.SearchWithFxID("top"))

	trim.Undo()
	assert.Equal(t, before, snapshot(t, ctx.Document))
	assert.Equal(t, "app.Main", ctx.Document.Root().AsObject().FxController())

	selectIDs(t, ctx, "top")
	assert.False(t, NewTrim(ctx).IsExecutable())
}

func TestWrapUnwrapInverse(t *testing.T) {
	ctx := newContext(t, sample)
	root := ctx.Document.Root().(*fxom.Instance)
	selectIDs(t, ctx, "a", "b")
	wrap := NewWrapIn(ctx, Pane)
	require.True(t, wrap.IsExecutable())
	wrap.Execute()

	pane := root.PropertyC(fxom.PropName("children")).Value(0).(*fxom.Instance)
	assert.Equal(t, "Pane", pane.Type)
	assert.True(t, ctx.Selection.IsSelected(pane))
	assert.Equal(t, []string{"a", "b"}, childIDs(pane, "children"))
	assert.Equal(t, "10.0", value(ctx, pane, fxom.PropName("layoutX")))
	assert.Equal(t, "20.0", value(ctx, pane, fxom.PropName("layoutY")))
	assert.Equal(t, "0.0", value(ctx, inst(t, ctx, "a"), fxom.PropName("layoutX")))
	assert.Equal(t, "90.0", value(ctx, inst(t, ctx, "b"), fxom.PropName("layoutX")))

	unwrap := NewUnwrap(ctx)
	require.True(t, unwrap.IsExecutable())
	unwrap.Execute()
	assert.Equal(t, []string{"a", "b", "box", "anchored"}, childIDs(root, "children"))
	for id, want := range map[string][2]string{"a": {"10.0", "20.0"}, "b": {"100.0", "20.0"}} {
		in := inst(t, ctx, id)
		assert.Equal(t, want[0], value(ctx, in, fxom.PropName("layoutX")), id)
		assert.Equal(t, want[1], value(ctx, in, fxom.PropName("layoutY")), id)
	}
	assert.True(t, ctx.Selection.IsSelected(byID(t, ctx, "a")))
}

func TestWrapPreconditions(t *testing.T) {
	ctx := newContext(t, `<BorderPane xmlns:fx="http://javafx.com/fxml/1" fx:id="bp">
    <center>
        <HBox fx:id="row">
            <Label fx:id="l1" HBox.hgrow="ALWAYS"/>
            <Label fx:id="l2"/>
        </HBox>
    </center>
    <bottom>
        <TabPane fx:id="tabs">
            <tabs>
                <Tab fx:id="tab">
                    <content>
                        <Label fx:id="inTab"/>
                    </content>
                </Tab>
            </tabs>
        </TabPane>
    </bottom>
</BorderPane>`)
	selectIDs(t, ctx, "l1", "l2")
	assert.False(t, NewWrapIn(ctx, TabPane).IsExecutable())
	assert.False(t, NewWrapIn(ctx, ScrollPane).IsExecutable())
	assert.True(t, NewWrapIn(ctx, VBox).IsExecutable())

	selectIDs(t, ctx, "l1", "row")
	assert.False(t, NewWrapIn(ctx, VBox).IsExecutable())

	selectIDs(t, ctx, "tab")
	assert.False(t, NewWrapIn(ctx, VBox).IsExecutable())

	selectIDs(t, ctx, "row")
	wrap := NewWrapIn(ctx, StackPane)
	require.True(t, wrap.IsExecutable())
	wrap.Execute()
	bp := inst(t, ctx, "bp")
	stack := bp.PropertyC(fxom.PropName("center")).Value(0).(*fxom.Instance)
	assert.Equal(t, "StackPane", stack.Type)
	assert.Equal(t, []string{"row"}, childIDs(stack, "children"))

	selectIDs(t, ctx, "l1")
	wrap = NewWrapIn(ctx, VBox)
	require.True(t, wrap.IsExecutable())
	wrap.Execute()
	vbox := inst(t, ctx, "row").PropertyC(fxom.PropName("children")).Value(0).(*fxom.Instance)
	assert.Equal(t, "ALWAYS", value(ctx, vbox, fxom.StaticPropName("HBox", "hgrow")))
	assert.Nil(t, inst(t, ctx, "l1").Property(fxom.StaticPropName("HBox", "hgrow")))

	selectIDs(t, ctx, "tabs")
	unwrap := NewUnwrap(ctx)
	require.True(t, unwrap.IsExecutable())
	unwrap.Execute()
	assert.Equal(t, []string{"inTab"}, childIDs(bp, "bottom"))
}

func TestGridPlacement(t *testing.T) {
	gp := NewGridPlacement([]geom.Box2{
		geom.B2(0, 0, 50, 20),
		geom.B2(60, 0, 110, 20),
		geom.B2(0, 50, 50, 70),
	})
	assert.Equal(t, []int{0, 1, 0}, gp.Columns)
	assert.Equal(t, []int{0, 0, 1}, gp.Rows)
	assert.Equal(t, []float64{50, 50}, gp.ColumnWidths)
	assert.Equal(t, []float64{20, 20}, gp.RowHeights)
	assert.Equal(t, 2, gp.NumColumns())
	assert.Equal(t, 2, gp.NumRows())

	again := NewGridPlacement([]geom.Box2{
		geom.B2(0, 0, 50, 20),
		geom.B2(60, 0, 110, 20),
		geom.B2(0, 50, 50, 70),
	})
	assert.Equal(t, gp, again)

	overlap := NewGridPlacement([]geom.Box2{geom.B2(0, 0, 4, 4), geom.B2(2, 0, 6, 4)})
	assert.Equal(t, []int{0, 0}, overlap.Columns)
	assert.Equal(t, []float64{GridMinSize}, overlap.ColumnWidths)
}

const gridSample = `<AnchorPane xmlns:fx="http://javafx.com/fxml/1" fx:id="root">
    <Rectangle fx:id="r1" width="50.0" height="20.0"/>
    <Rectangle fx:id="r2" layoutX="60.0" width="50.0" height="20.0"/>
    <Rectangle fx:id="r3" layoutY="50.0" width="50.0" height="20.0"/>
</AnchorPane>`

func TestWrapInGridPane(t *testing.T) {
	ctx := newContext(t, gridSample)
	before := snapshot(t, ctx.Document)
	selectIDs(t, ctx, "r1", "r2", "r3")
	wrap := NewWrapIn(ctx, GridPane)
	require.True(t, wrap.IsExecutable())
	wrap.Execute()

	grid := ctx.Document.Root().(*fxom.Instance).PropertyC(fxom.PropName("children")).Value(0).(*fxom.Instance)
	assert.Equal(t, "GridPane", grid.Type)
	assert.Equal(t, []string{"r1", "r2", "r3"}, childIDs(grid, "children"))
	col, row := selection.Column.IndexProperty(), selection.Row.IndexProperty()
	assert.Equal(t, "1", value(ctx, inst(t, ctx, "r2"), col))
	assert.Equal(t, "0", value(ctx, inst(t, ctx, "r2"), row))
	assert.Equal(t, "1", value(ctx, inst(t, ctx, "r3"), row))
	assert.Equal(t, "0.0", value(ctx, inst(t, ctx, "r2"), fxom.PropName("layoutX")))

	cols := grid.PropertyC(fxom.PropName("columnConstraints")).Values()
	require.Len(t, cols, 2)
	c0 := cols[0].(*fxom.Instance)
	assert.Equal(t, "SOMETIMES", value(ctx, c0, fxom.PropName("hgrow")))
	assert.Equal(t, "10.0", value(ctx, c0, fxom.PropName("minWidth")))
	assert.Equal(t, "50.0", value(ctx, c0, fxom.PropName("prefWidth")))
	assert.Len(t, grid.PropertyC(fxom.PropName("rowConstraints")).Values(), 2)

	wrap.Undo()
	assert.Equal(t, before, snapshot(t, ctx.Document))
}

func TestGridLines(t *testing.T) {
	ctx := newContext(t, gridSample)
	selectIDs(t, ctx, "r1", "r2", "r3")
	wrap := NewWrapIn(ctx, GridPane)
	require.True(t, wrap.IsExecutable())
	wrap.Execute()
	grid := ctx.Selection.Objects().Items()[0].(*fxom.Instance)
	col := selection.Column.IndexProperty()

	ins := NewInsertGridLine(ctx, grid, selection.Column, 1)
	assertSymmetric(t, ctx, ins)
	ins.Redo()
	assert.Equal(t, "2", value(ctx, inst(t, ctx, "r2"), col))
	assert.Len(t, grid.PropertyC(fxom.PropName("columnConstraints")).Values(), 3)
	assert.IsType(t, &selection.GridGroup{}, ctx.Selection.Group())

	ctx.Selection.Select(selection.NewGridGroup(grid, selection.Column, 0))
	del := NewDeleteSelection(ctx)
	assert.Equal(t, "Delete Column", del.Description())
	assertSymmetric(t, ctx, del)
	del.Redo()
	assert.Nil(t, ctx.Document.SearchWithFxID("r1"))
	assert.Nil(t, ctx.Document.SearchWithFxID("r3"))
	assert.Equal(t, "1", value(ctx, inst(t, ctx, "r2"), col))
	assert.Len(t, grid.PropertyC(fxom.PropName("columnConstraints")).Values(), 2)
}

func TestDuplicate(t *testing.T) {
	ctx := newContext(t, sample)
	selectIDs(t, ctx, "a")
	dup := NewDuplicate(ctx)
	require.True(t, dup.IsExecutable())
	dup.Execute()
	root := ctx.Document.Root().(*fxom.Instance)
	assert.Equal(t, []string{"a", "a1", "b", "box", "anchored"}, childIDs(root, "children"))
	a1 := inst(t, ctx, "a1")
	assert.Equal(t, "20.0", value(ctx, a1, fxom.PropName("layoutX")))
	assert.Equal(t, "30.0", value(ctx, a1, fxom.PropName("layoutY")))
	assert.True(t, ctx.Selection.IsSelected(a1))

	selectIDs(t, ctx, "root")
	assert.False(t, NewDuplicate(ctx).IsExecutable())
}

func TestCutPaste(t *testing.T) {
	ctx := newContext(t, sample)
	selectIDs(t, ctx, "l2")
	cut := NewCut(ctx)
	require.True(t, cut.IsExecutable())
	cut.Execute()
	assert.Nil(t, ctx.Document.SearchWithFxID("l2"))
	assert.False(t, ctx.Clipboard.IsEmpty())

	selectIDs(t, ctx, "l1")
	paste := NewPaste(ctx)
	require.True(t, paste.IsExecutable())
	paste.Execute()
	assert.Equal(t, []string{"l1", "l2"}, childIDs(inst(t, ctx, "box"), "children"))

	again := NewPaste(ctx)
	require.True(t, again.IsExecutable())
	again.Execute()
	assert.Equal(t, []string{"l1", "l2", "l3"}, childIDs(inst(t, ctx, "box"), "children"))
}

func TestPasteKeepsOrder(t *testing.T) {
	ctx := newContext(t, sample)
	box := inst(t, ctx, "box")
	require.NoError(t, clipboard.Copy(ctx.Clipboard, []fxom.Object{byID(t, ctx, "l1"), byID(t, ctx, "l2")}))
	selectIDs(t, ctx, "l1")
	paste := NewPaste(ctx)
	assertSymmetric(t, ctx, paste)

	paste.Redo()
	assert.Equal(t, []string{"l1", "l2", "l3", "l4"}, childIDs(box, "children"))
	var texts []string
	for _, c := range box.PropertyC(fxom.PropName("children")).Values() {
		texts = append(texts, value(ctx, c.(*fxom.Instance), fxom.PropName("text")))
	}
	assert.Equal(t, []string{"one", "two", "one", "two"}, texts)
}

const fittedSample = `<AnchorPane xmlns:fx="http://javafx.com/fxml/1" fx:id="root" prefWidth="200.0" prefHeight="100.0">
    <Label fx:id="fitted" text="A" AnchorPane.topAnchor="0.0" AnchorPane.rightAnchor="0.0" AnchorPane.bottomAnchor="0.0" AnchorPane.leftAnchor="0.0"/>
</AnchorPane>`

func TestUnchangedEditsNotExecutable(t *testing.T) {
	ctx := newContext(t, sample)
	selectIDs(t, ctx, "a")
	rev := ctx.Document.SceneGraphRevision()
	assert.False(t, NewModifySelection(ctx, fxom.PropName("text"), "A").IsExecutable())
	assert.False(t, NewModifySelection(ctx, fxom.PropName("layoutX"), "10").IsExecutable())
	assert.True(t, NewModifySelection(ctx, fxom.PropName("text"), "Other").IsExecutable())
	assert.Equal(t, rev, ctx.Document.SceneGraphRevision())

	ctx = newContext(t, fittedSample)
	selectIDs(t, ctx, "fitted")
	assert.False(t, NewFitToParent(ctx).IsExecutable())
	assert.False(t, NewUseComputedSizes(ctx).IsExecutable())
}

func TestReIndex(t *testing.T) {
	ctx := newContext(t, sample)
	root := ctx.Document.Root().(*fxom.Instance)
	run := func(order Orders, ids ...string) {
		t.Helper()
		selectIDs(t, ctx, ids...)
		j := NewReIndexSelection(ctx, order)
		require.True(t, j.IsExecutable(), order.String())
		j.Execute()
	}
	run(BringToFront, "a", "b")
	assert.Equal(t, []string{"box", "anchored", "a", "b"}, childIDs(root, "children"))
	run(SendToBack, "a", "b")
	assert.Equal(t, []string{"a", "b", "box", "anchored"}, childIDs(root, "children"))
	run(BringForward, "a", "b")
	assert.Equal(t, []string{"box", "a", "b", "anchored"}, childIDs(root, "children"))
	run(SendBackward, "anchored")
	assert.Equal(t, []string{"box", "a", "anchored", "b"}, childIDs(root, "children"))

	selectIDs(t, ctx, "box")
	assert.False(t, NewReIndexSelection(ctx, SendToBack).IsExecutable())
	assert.False(t, NewReIndexSelection(ctx, SendBackward).IsExecutable())
}

func TestRelocateAnchors(t *testing.T) {
	ctx := newContext(t, sample)
	anchored := inst(t, ctx, "anchored")
	a := inst(t, ctx, "a")
	r := NewRelocate(ctx, map[fxom.Object]geom.Vector2{anchored: geom.Vec2(310, 60), a: geom.Vec2(15, 20)})
	assert.Equal(t, "Relocate 2 Objects", r.Description())
	require.True(t, r.IsExecutable())
	r.Execute()
	left, top := fxom.StaticPropName("AnchorPane", "leftAnchor"), fxom.StaticPropName("AnchorPane", "topAnchor")
	assert.Equal(t, "310.0", value(ctx, anchored, fxom.PropName("layoutX")))
	assert.Equal(t, "310.0", value(ctx, anchored, left))
	assert.Equal(t, "60.0", value(ctx, anchored, top))
	assert.Nil(t, anchored.Property(fxom.StaticPropName("AnchorPane", "rightAnchor")))
	assert.Equal(t, "15.0", value(ctx, a, fxom.PropName("layoutX")))
	assert.Nil(t, a.Property(left))

	r.Undo()
	assert.Equal(t, "300.0", value(ctx, anchored, left))
	assert.Equal(t, "10.0", value(ctx, a, fxom.PropName("layoutX")))

	assert.False(t, NewRelocate(ctx, map[fxom.Object]geom.Vector2{a: geom.Vec2(10, 20)}).IsExecutable())
}

func TestRelocateMerge(t *testing.T) {
	ctx := newContext(t, sample)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx.Now = func() time.Time { return now }
	a, b := inst(t, ctx, "a"), inst(t, ctx, "b")
	move := func(obj fxom.Object, x, y float64) *Relocate {
		r := NewRelocate(ctx, map[fxom.Object]geom.Vector2{obj: geom.Vec2(x, y)})
		require.True(t, r.IsExecutable())
		r.Execute()
		return r
	}

	first := move(a, 15, 20)
	now = now.Add(500 * time.Millisecond)
	second := move(a, 20, 30)
	assert.True(t, first.Merge(second))
	now = now.Add(1500 * time.Millisecond)
	third := move(a, 25, 35)
	assert.False(t, first.Merge(third), "outside the window after the merged move")

	other := move(b, 110, 20)
	assert.False(t, third.Merge(other), "different objects")

	third.Undo()
	first.Undo()
	assert.Equal(t, "10.0", value(ctx, a, fxom.PropName("layoutX")))
	assert.Equal(t, "20.0", value(ctx, a, fxom.PropName("layoutY")))
	first.Redo()
	assert.Equal(t, "20.0", value(ctx, a, fxom.PropName("layoutX")))
	assert.Equal(t, "30.0", value(ctx, a, fxom.PropName("layoutY")))
	assert.False(t, first.Merge(first))
}

// pngHeader is the start of a PNG file.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(img, pngHeader, 0o644))
	part := filepath.Join(dir, "part.fxml")
	require.NoError(t, os.WriteFile(part, []byte(`<HBox xmlns:fx="http://javafx.com/fxml/1" fx:id="a" fx:controller="app.Part"><Label fx:id="b"/></HBox>`), 0o644))
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("just text"), 0o644))

	ctx := newContext(t, sample)
	ctx.Document.Location = filepath.Join(dir, "main.fxml")
	root := ctx.Document.Root().(*fxom.Instance)

	imp := NewImportFile(ctx, img, nil)
	assertSymmetric(t, ctx, imp)
	imp.Redo()
	iv := inst(t, ctx, "photo")
	assert.Equal(t, "ImageView", iv.Type)
	image := iv.PropertyC(fxom.PropName("image")).Value(0).(*fxom.Instance)
	assert.Equal(t, "@photo.png", image.PropertyT(fxom.PropName("url")).Value())

	doc := NewImportFile(ctx, part, root)
	require.True(t, doc.IsExecutable())
	doc.Execute()
	hbox := root.PropertyC(fxom.PropName("children")).Values()
	imported := hbox[len(hbox)-1].(*fxom.Instance)
	assert.Equal(t, "HBox", imported.Type)
	assert.Equal(t, "a1", imported.FxID())
	assert.Equal(t, "", imported.FxController())
	assert.Equal(t, []string{"b1"}, childIDs(imported, "children"))

	inc := NewIncludeFile(ctx, part, root)
	require.True(t, inc.IsExecutable())
	inc.Execute()
	children := root.PropertyC(fxom.PropName("children")).Values()
	include, ok := children[len(children)-1].(*fxom.Intrinsic)
	require.True(t, ok)
	assert.Equal(t, fxom.Include, include.Kind)
	assert.Equal(t, "part.fxml", include.Source)

	assert.False(t, NewImportFile(ctx, notes, root).IsExecutable())
	assert.False(t, NewImportFile(ctx, filepath.Join(dir, "missing.png"), root).IsExecutable())
	assert.False(t, NewIncludeFile(ctx, img, root).IsExecutable())
}
