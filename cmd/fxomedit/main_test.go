// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/builder/editor"
	"cogentcore.org/builder/fxom"
)

const sample = `<VBox xmlns:fx="http://javafx.com/fxml/1" fx:id="top">
    <Label fx:id="one" text="One"/>
    <Label fx:id="two" text="Two"/>
</VBox>
`

func writeSample(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "sample.fxml")
	require.NoError(t, os.WriteFile(fname, []byte(sample), 0o644))
	return fname
}

func newShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	set := &editor.Settings{}
	set.Defaults()
	set.Clipboard = editor.MemoryClipboard
	ed := editor.New(set)
	require.NoError(t, ed.Open(writeSample(t)))
	var out bytes.Buffer
	return &shell{ed: ed, out: &out}, &out
}

func TestPrintTree(t *testing.T) {
	sh, out := newShell(t)
	require.True(t, sh.ed.Select("two"))
	require.NoError(t, sh.run("show"))
	want := `VBox #top
  children
    Label #one
    Label #two *
`
	assert.Equal(t, want, out.String())
}

func TestShellCommands(t *testing.T) {
	sh, out := newShell(t)
	for _, line := range []string{
		"",
		"select one two",
		"wrap HBox",
		"set spacing 4",
		"do SelectParent",
		"id main",
		`select one`,
		`set text "Hello world"`,
		"undo",
		"redo",
		"check",
	} {
		require.NoError(t, sh.run(line), line)
	}
	d := sh.ed.Document()
	one := d.SearchWithFxID("one").(*fxom.Instance)
	assert.Equal(t, "Hello world", one.PropertyT(fxom.PropName("text")).Value())
	main := d.SearchWithFxID("main").(*fxom.Instance)
	assert.Equal(t, "VBox", main.Type)
	assert.Contains(t, out.String(), "ok")

	assert.Error(t, sh.run("select nothing"))
	assert.Error(t, sh.run("wrap Window"))
	assert.Error(t, sh.run("do fly"))
	assert.Error(t, sh.run("move 1"))
	assert.Error(t, sh.run("fly away"))
	assert.Error(t, sh.run(`set text "unterminated`))
	assert.Equal(t, errQuit, sh.run("quit"))
}

func TestShellLoop(t *testing.T) {
	sh, out := newShell(t)
	sh.loop(strings.NewReader("select one\ndo delete\nbogus\nquit\nshow\n"))
	assert.Nil(t, sh.ed.Document().SearchWithFxID("one"))
	assert.Contains(t, out.String(), `error: unknown command "bogus"`)
	assert.NotContains(t, out.String(), "Label #two")
}

func TestRun(t *testing.T) {
	fname := writeSample(t)
	settings := filepath.Join(t.TempDir(), "settings.toml")
	parse := func(args ...string) docopt.Opts {
		opts, err := docopt.ParseArgs(usage, append(args, "--settings="+settings), version)
		require.NoError(t, err)
		return opts
	}

	var out bytes.Buffer
	assert.Equal(t, 0, run(parse("check", fname), nil, &out))
	assert.Equal(t, "ok\n", out.String())

	out.Reset()
	assert.Equal(t, 0, run(parse("show", fname), nil, &out))
	assert.Contains(t, out.String(), "Label #one")

	out.Reset()
	assert.Equal(t, 1, run(parse("show", filepath.Join(t.TempDir(), "missing.fxml")), nil, &out))

	out.Reset()
	assert.Equal(t, 0, run(parse("shell", fname), strings.NewReader("select two\ndo delete\nsave\n"), &out))
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "two")
}
