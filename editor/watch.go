// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the file of the document, calling fun with
// its path each time it is written, created or renamed over by another
// program. The document is not reloaded: fun decides what to do.
// Watching a document that has no location is an error.
func (ed *Editor) Watch(fun func(fname string)) error {
	loc := ed.document.Location
	if loc == "" {
		return fmt.Errorf("editor.Watch: the document has no location")
	}
	if ed.watcher != nil {
		ed.StopWatch()
	}
	abs, err := filepath.Abs(loc)
	if err != nil {
		return fmt.Errorf("editor.Watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("editor.Watch: %w", err)
	}
	// the directory is watched as editors replace files by renaming
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("editor.Watch: %w", err)
	}
	ed.watcher = w
	ed.doneWatcher = make(chan bool)
	go func() {
		watch := w
		done := ed.doneWatcher
		for {
			select {
			case <-done:
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					slog.Info("editor: document changed on disk", "file", abs, "op", event.Op.String())
					fun(abs)
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				slog.Error("editor: watching", "file", abs, "err", err)
			}
		}
	}()
	return nil
}

// StopWatch stops watching the file of the document.
func (ed *Editor) StopWatch() {
	if ed.watcher == nil {
		return
	}
	close(ed.doneWatcher)
	ed.watcher.Close()
	ed.watcher = nil
	ed.doneWatcher = nil
}
