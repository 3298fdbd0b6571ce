// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/fxom"
)

func TestEncodeDecode(t *testing.T) {
	src := fxom.NewDocument()
	b := fxom.NewInstance(src, "Button")
	b.SetFxID("ok")
	fxom.NewPropertyT(src, fxom.PropName("text"), "OK").AddToParentInstance(-1, b)
	l := fxom.NewInstance(src, "Label")

	data, err := Encode([]fxom.Object{b, l})
	require.NoError(t, err)
	assert.Contains(t, string(data), "fx:define")

	dst := fxom.NewDocument()
	objs := Decode(data, dst, nil)
	require.Len(t, objs, 2)
	nb := objs[0].(*fxom.Instance)
	assert.Equal(t, "Button", nb.Type)
	assert.Equal(t, "ok", nb.FxID())
	assert.Equal(t, "OK", nb.PropertyT(fxom.PropName("text")).Value())
	assert.Equal(t, dst, nb.Document())
	assert.False(t, nb.IsAttached())
	assert.Equal(t, "Label", objs[1].(*fxom.Instance).Type)
}

func TestDecodeGarbage(t *testing.T) {
	d := fxom.NewDocument()
	assert.Nil(t, Decode(nil, d, nil))
	assert.Nil(t, Decode([]byte("  \n"), d, nil))
	assert.Nil(t, Decode([]byte("<Button"), d, nil))
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	assert.True(t, m.IsEmpty())

	d := fxom.NewDocument()
	require.NoError(t, Copy(m, []fxom.Object{fxom.NewInstance(d, "Pane")}))
	assert.False(t, m.IsEmpty())

	objs := Paste(m, d, nil)
	require.Len(t, objs, 1)
	assert.Equal(t, "Pane", objs[0].(*fxom.Instance).Type)

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Nil(t, Paste(m, d, nil))
}
