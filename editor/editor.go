// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the editing session of one FXML document:
// the document with its selection, the component catalog, the
// clipboard and the undo manager, with the user actions on top of the
// undoable jobs.
package editor

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/clipboard"
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/job"
	"cogentcore.org/builder/metadata"
	"cogentcore.org/builder/scenegraph"
	"cogentcore.org/builder/selection"
	"cogentcore.org/builder/undo"
)

// Editor is the editing session of one document.
type Editor struct {

	// Settings are the settings the editor was made with.
	Settings *Settings

	// Catalog describes the component classes.
	Catalog *metadata.Catalog

	// Clipboard is used by copy, cut and paste.
	Clipboard clipboard.Clipboard

	// Selection is the selection of the document.
	Selection *selection.Selection

	// Undo is the undo manager of the executed jobs.
	Undo *undo.Mgr

	document *fxom.Document
	ctx      *job.Context

	watcher     *fsnotify.Watcher
	doneWatcher chan bool
}

// New returns an editor of a new empty document, configured by the
// given settings; nil means [Settings.Defaults].
func New(set *Settings) *Editor {
	if set == nil {
		set = &Settings{}
		set.Defaults()
	}
	ed := &Editor{Settings: set, Selection: selection.New(), Undo: undo.New()}
	ed.Undo.Limit = set.UndoLimit
	ed.Catalog = metadata.NewCatalog()
	if set.Catalog != "" {
		if cat, err := metadata.OpenCatalog(set.Catalog); errors.Log(err) == nil {
			ed.Catalog = cat
		}
	}
	if set.Clipboard == SystemClipboard {
		ed.Clipboard = clipboard.System{}
	} else {
		ed.Clipboard = &clipboard.Memory{}
	}
	ed.SetDocument(fxom.NewDocument())
	return ed
}

// Document returns the edited document.
func (ed *Editor) Document() *fxom.Document {
	return ed.document
}

// Context returns the job context of the editor, for making jobs
// that are not covered by the editor methods.
func (ed *Editor) Context() *job.Context {
	return ed.ctx
}

// SetDocument replaces the edited document, clearing the selection
// and the undo records.
func (ed *Editor) SetDocument(d *fxom.Document) {
	ed.document = d
	d.SetResolver(scenegraph.NewResolver(ed.Catalog))
	ed.ctx = &job.Context{
		Document:    d,
		Selection:   ed.Selection,
		Catalog:     ed.Catalog,
		Clipboard:   ed.Clipboard,
		MergeWindow: time.Duration(ed.Settings.MergeWindow) * time.Millisecond,
	}
	ed.Selection.Clear()
	ed.Undo.Reset()
}

// Open reads the named FXML file and makes it the edited document.
func (ed *Editor) Open(fname string) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("editor.Open: %w", err)
	}
	d, err := fxom.ReadBytes(b, ed.Catalog.ReadOptions())
	if err != nil {
		return fmt.Errorf("editor.Open %s: %w", fname, err)
	}
	d.Location = fname
	ed.SetDocument(d)
	slog.Info("editor: opened", "file", fname)
	return nil
}

// Save writes the document to the named file, or to its location if
// fname is empty. The imports are updated to the classes in use.
func (ed *Editor) Save(fname string) error {
	d := ed.document
	if fname == "" {
		fname = d.Location
	}
	if fname == "" {
		return fmt.Errorf("editor.Save: the document has no location")
	}
	d.Imports = ed.Catalog.Imports(d)
	b, err := fxom.WriteBytes(d)
	if err != nil {
		return fmt.Errorf("editor.Save %s: %w", fname, err)
	}
	if err := os.WriteFile(fname, b, 0o644); err != nil {
		return fmt.Errorf("editor.Save: %w", err)
	}
	d.Location = fname
	slog.Info("editor: saved", "file", fname)
	return nil
}

// Execute executes the job through the undo manager. It returns
// false if the job is not executable.
func (ed *Editor) Execute(j job.Job) bool {
	return ed.Undo.Execute(j)
}

// Select selects the objects with the given fx:ids, returning false
// if one of them is not found.
func (ed *Editor) Select(ids ...string) bool {
	objs := make([]fxom.Object, 0, len(ids))
	for _, id := range ids {
		obj := ed.document.SearchWithFxID(id)
		if obj == nil {
			return false
		}
		objs = append(objs, obj)
	}
	ed.Selection.SelectObjects(objs...)
	return true
}

// CanWrapIn returns whether the selection can be wrapped in a
// container of the given kind.
func (ed *Editor) CanWrapIn(kind job.ContainerKinds) bool {
	return job.NewWrapIn(ed.ctx, kind).IsExecutable()
}

// WrapIn wraps the selection in a new container of the given kind.
func (ed *Editor) WrapIn(kind job.ContainerKinds) bool {
	return ed.Execute(job.NewWrapIn(ed.ctx, kind))
}

// Relocate moves objects to new layout positions. Successive
// relocations of the same objects merge into one undo step.
func (ed *Editor) Relocate(moves map[fxom.Object]geom.Vector2) bool {
	return ed.Execute(job.NewRelocate(ed.ctx, moves))
}

// SetValue sets the named property of the instance.
func (ed *Editor) SetValue(inst *fxom.Instance, name fxom.PropertyName, value string) bool {
	return ed.Execute(job.NewModifyObject(ed.ctx, inst, name, value))
}

// SetFxID sets the fx:id of the object.
func (ed *Editor) SetFxID(obj fxom.Object, id string) bool {
	return ed.Execute(job.NewModifyFxID(ed.ctx, obj, id))
}

// Import inserts the content of the named image, media or FXML file
// into the paste target of the selection.
func (ed *Editor) Import(fname string) bool {
	return ed.Execute(job.NewImportFile(ed.ctx, fname, nil))
}

// Include inserts an fx:include of the named FXML file into the paste
// target of the selection.
func (ed *Editor) Include(fname string) bool {
	return ed.Execute(job.NewIncludeFile(ed.ctx, fname, nil))
}
