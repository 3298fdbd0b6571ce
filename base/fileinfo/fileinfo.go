// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo classifies the files that can be imported into a
// document: images, media and FXML documents.
package fileinfo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
)

// Categories is a functional category for files, which decides what an
// imported file becomes in a document.
type Categories int32

const (
	// UnknownCategory is a file that cannot be imported.
	UnknownCategory Categories = iota

	// Image is a file shown by an ImageView.
	Image

	// Video is a file played by a MediaView.
	Video

	// Audio is a file played by a MediaView.
	Audio

	// FXML is a document whose content is imported.
	FXML

	CategoriesN
)

var categoryNames = [...]string{"UnknownCategory", "Image", "Video", "Audio", "FXML"}

func (c Categories) String() string {
	if c >= 0 && c < CategoriesN {
		return categoryNames[c]
	}
	return "Categories(" + strconv.Itoa(int(c)) + ")"
}

// IsMedia returns whether the category is played by a MediaView.
func (c Categories) IsMedia() bool {
	return c == Video || c == Audio
}

// headerSize is the number of leading bytes that identify a file type.
const headerSize = 261

// FXMLExtension is the file name extension of FXML documents.
const FXMLExtension = ".fxml"

// Category returns the category of the given file contents, using the
// file name extension for FXML documents.
func Category(fname string, head []byte) Categories {
	if strings.EqualFold(filepath.Ext(fname), FXMLExtension) {
		return FXML
	}
	switch {
	case filetype.IsImage(head):
		return Image
	case filetype.IsVideo(head):
		return Video
	case filetype.IsAudio(head):
		return Audio
	}
	return UnknownCategory
}

// ForFile returns the category of the named file from its name and
// leading bytes. An empty file has the unknown category.
func ForFile(fname string) (Categories, error) {
	f, err := os.Open(fname)
	if err != nil {
		return UnknownCategory, fmt.Errorf("fileinfo.ForFile: %w", err)
	}
	defer f.Close()
	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return UnknownCategory, fmt.Errorf("fileinfo.ForFile: %w", err)
	}
	if n == 0 {
		return UnknownCategory, nil
	}
	return Category(fname, head[:n]), nil
}
