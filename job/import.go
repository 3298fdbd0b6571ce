// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/base/fileinfo"
	"cogentcore.org/builder/fxom"
)

// NewImportFile returns a job inserting the content of the named file
// into the target, as [NewInsertObjects] does: an image becomes an
// ImageView, a video or audio file a MediaView, and an FXML document
// its root object. A file that cannot be read or classified makes the
// job not executable.
func NewImportFile(ctx *Context, fname string, target *fxom.Instance) *Batch {
	return NewBatch(ctx, "Import "+filepath.Base(fname), func() []Job {
		obj, err := importObject(ctx, fname)
		if errors.Log(err) != nil || obj == nil {
			return nil
		}
		if target == nil {
			target = pasteTarget(ctx)
		}
		return insertObjects(ctx, []fxom.Object{obj}, target, nil)
	})
}

// NewIncludeFile returns a job inserting an fx:include of the named
// FXML file into the target.
func NewIncludeFile(ctx *Context, fname string, target *fxom.Instance) *Batch {
	return NewBatch(ctx, "Include "+filepath.Base(fname), func() []Job {
		if !strings.EqualFold(filepath.Ext(fname), fileinfo.FXMLExtension) {
			return nil
		}
		if _, err := os.Stat(fname); errors.Log(err) != nil {
			return nil
		}
		inc := fxom.NewIntrinsic(ctx.Document, fxom.Include, documentPath(ctx.Document, fname))
		if target == nil {
			target = pasteTarget(ctx)
		}
		return insertObjects(ctx, []fxom.Object{inc}, target, nil)
	})
}

// importObject returns the detached object made from the named file,
// or nil if the file has no importable content.
func importObject(ctx *Context, fname string) (fxom.Object, error) {
	cat, err := fileinfo.ForFile(fname)
	if err != nil {
		return nil, err
	}
	var obj fxom.Object
	switch {
	case cat == fileinfo.Image:
		obj = newImageView(fname, documentURL(ctx.Document, fname))
	case cat.IsMedia():
		obj = newMediaView(documentURL(ctx.Document, fname))
	case cat == fileinfo.FXML:
		return importDocument(ctx, fname)
	default:
		slog.Info("job: file has no importable content", "file", fname)
		return nil, nil
	}
	obj.AsObject().MoveToDocument(ctx.Document)
	uniquifyFxIDs(ctx.Document, []fxom.Object{obj})
	return obj, nil
}

// importDocument returns the root of the named FXML document, detached
// and moved to the edited document.
func importDocument(ctx *Context, fname string) (fxom.Object, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("job: importing %s: %w", fname, err)
	}
	d, err := fxom.ReadBytes(b, ctx.Catalog.ReadOptions())
	if err != nil {
		return nil, fmt.Errorf("job: importing %s: %w", fname, err)
	}
	root := d.Root()
	if root == nil {
		return nil, nil
	}
	d.SetRoot(nil)
	if inst, ok := root.(*fxom.Instance); ok && inst.IsFxRoot() {
		inst.SetFxRoot(false)
	}
	root.AsObject().SetFxController("")
	root.AsObject().MoveToDocument(ctx.Document)
	uniquifyFxIDs(ctx.Document, []fxom.Object{root})
	return root, nil
}

// newImageView returns an ImageView showing the image at the given
// url, in a scratch document.
func newImageView(fname, url string) *fxom.Instance {
	d := fxom.NewDocument()
	iv := fxom.NewInstance(d, "ImageView")
	base := strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	if id := identifierOf(base); id != "" {
		iv.SetFxID(id)
	}
	img := fxom.NewInstance(d, "Image")
	fxom.NewPropertyT(d, fxom.PropName("url"), url).AddToParentInstance(-1, img)
	addSingle(iv, "image", img)
	return iv
}

// newMediaView returns a MediaView playing the media at the given url,
// in a scratch document.
func newMediaView(url string) *fxom.Instance {
	d := fxom.NewDocument()
	mv := fxom.NewInstance(d, "MediaView")
	player := fxom.NewInstance(d, "MediaPlayer")
	media := fxom.NewInstance(d, "Media")
	fxom.NewPropertyT(d, fxom.PropName("source"), url).AddToParentInstance(-1, media)
	addSingle(player, "media", media)
	addSingle(mv, "mediaPlayer", player)
	return mv
}

// addSingle puts the value in a new complex property of the instance.
func addSingle(inst *fxom.Instance, name string, value fxom.Object) {
	pc := fxom.NewPropertyC(inst.Document(), fxom.PropName(name))
	value.AsObject().AddToParentProperty(-1, pc)
	pc.AddToParentInstance(-1, inst)
}

// identifierOf returns the given file base name turned into an fx:id,
// or "" if nothing of it is usable.
func identifierOf(base string) string {
	var b strings.Builder
	for _, r := range base {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' && b.Len() > 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// documentPath returns the path of the file relative to the directory
// of the document, or its absolute path if the document has no location.
func documentPath(d *fxom.Document, fname string) string {
	abs, err := filepath.Abs(fname)
	if err != nil {
		abs = fname
	}
	if d.Location != "" {
		if rel, err := filepath.Rel(filepath.Dir(d.Location), abs); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(abs)
}

// documentURL returns the url of the file for a property value:
// relative to the document with the @ prefix, or a file url.
func documentURL(d *fxom.Document, fname string) string {
	p := documentPath(d, fname)
	if d.Location != "" && !filepath.IsAbs(filepath.FromSlash(p)) {
		return "@" + p
	}
	return "file:" + p
}
