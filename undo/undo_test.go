// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/job"
)

const sample = `<AnchorPane xmlns:fx="http://javafx.com/fxml/1" fx:id="root">
    <Button fx:id="a" layoutX="10.0" layoutY="20.0" text="A"/>
</AnchorPane>`

func newContext(t *testing.T) (*job.Context, *fxom.Instance) {
	t.Helper()
	d, err := fxom.ReadBytes([]byte(sample), nil)
	require.NoError(t, err)
	ctx := job.NewContext(d)
	return ctx, d.SearchWithFxID("a").(*fxom.Instance)
}

func text(a *fxom.Instance) string {
	if pt := a.PropertyT(fxom.PropName("text")); pt != nil {
		return pt.Value()
	}
	return ""
}

func TestExecuteUndoRedo(t *testing.T) {
	ctx, a := newContext(t)
	um := New()
	changes := 0
	um.OnChange(func(m *Mgr) { changes++ })

	assert.False(t, um.IsUndoAvail())
	assert.Nil(t, um.Undo())
	assert.False(t, um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), "A")))
	assert.Equal(t, 0, changes)

	require.True(t, um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), "B")))
	require.True(t, um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), "C")))
	assert.Equal(t, "C", text(a))
	assert.Equal(t, 2, changes)
	assert.Len(t, um.Recs, 2)
	assert.Equal(t, "Set text of Button#a", um.UndoAction())
	assert.Equal(t, "", um.RedoAction())

	rec := um.Undo()
	require.NotNil(t, rec)
	assert.Equal(t, job.Undone, rec.Job.State())
	assert.Equal(t, "B", text(a))
	assert.True(t, um.IsRedoAvail())
	assert.Equal(t, rec.Action(), um.RedoAction())

	um.Undo()
	assert.Equal(t, "A", text(a))
	assert.Equal(t, -1, um.Idx)
	assert.Nil(t, um.Undo())

	require.NotNil(t, um.Redo())
	assert.Equal(t, "B", text(a))

	// a new job drops the records that could be redone
	require.True(t, um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), "D")))
	assert.Len(t, um.Recs, 2)
	assert.False(t, um.IsRedoAvail())
	assert.Nil(t, um.Redo())
	assert.Equal(t, "D", text(a))
	assert.Equal(t, 6, changes)
	assert.Equal(t, changes, um.Revision())
}

func TestLimit(t *testing.T) {
	ctx, a := newContext(t)
	um := New()
	um.Limit = 3
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.True(t, um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), v)))
	}
	assert.Len(t, um.Recs, 3)
	assert.Equal(t, 2, um.Idx)
	for um.Undo() != nil {
	}
	assert.Equal(t, "2", text(a))
	assert.NotEqual(t, um.Recs[0].ID, um.Recs[1].ID)
}

func TestMergeRelocations(t *testing.T) {
	ctx, a := newContext(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx.Now = func() time.Time { return now }
	um := New()
	move := func(x float64) bool {
		return um.Execute(job.NewRelocate(ctx, map[fxom.Object]geom.Vector2{a: geom.Vec2(x, 20)}))
	}

	require.True(t, move(15))
	now = now.Add(200 * time.Millisecond)
	require.True(t, move(20))
	now = now.Add(200 * time.Millisecond)
	require.True(t, move(25))
	assert.Len(t, um.Recs, 1)

	now = now.Add(2 * time.Second)
	require.True(t, move(30))
	assert.Len(t, um.Recs, 2)

	um.Undo()
	assert.Equal(t, "25.0", a.PropertyT(fxom.PropName("layoutX")).Value())
	um.Undo()
	assert.Equal(t, "10.0", a.PropertyT(fxom.PropName("layoutX")).Value())
	um.Redo()
	assert.Equal(t, "25.0", a.PropertyT(fxom.PropName("layoutX")).Value())
}

func TestReset(t *testing.T) {
	ctx, a := newContext(t)
	um := New()
	um.Execute(job.NewModifyObject(ctx, a, fxom.PropName("text"), "B"))
	require.NotNil(t, um.Current())
	um.Reset()
	assert.Nil(t, um.Current())
	assert.False(t, um.IsUndoAvail())
	assert.Empty(t, um.Recs)
}
