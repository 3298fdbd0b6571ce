// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard transfers document objects through a clipboard
// as FXML fragments.
package clipboard

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/fxom"
)

// Clipboard defines the methods for reading and writing payloads
// to a clipboard.
type Clipboard interface {

	// IsEmpty returns true if there is nothing on the clipboard to read.
	// Can be used for disabling a Paste menu.
	IsEmpty() bool

	// Read returns the payload on the clipboard.
	Read() ([]byte, error)

	// Write replaces the payload on the clipboard.
	Write(data []byte) error

	// Clear clears the clipboard.
	Clear()
}

// System is the [Clipboard] of the operating system. It holds text,
// so a payload that is not an FXML fragment decodes to nothing.
type System struct{}

var _ Clipboard = System{}

func (System) IsEmpty() bool {
	s, err := clipboard.ReadAll()
	return err != nil || strings.TrimSpace(s) == ""
}

func (System) Read() ([]byte, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("clipboard: reading system clipboard: %w", err)
	}
	return []byte(s), nil
}

func (System) Write(data []byte) error {
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("clipboard: writing system clipboard: %w", err)
	}
	return nil
}

func (System) Clear() {
	errors.Log(clipboard.WriteAll(""))
}

// Memory is an in-process [Clipboard], used when no system clipboard
// is available and in tests.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

var _ Clipboard = &Memory{}

func (m *Memory) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data) == 0
}

func (m *Memory) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.data), nil
}

func (m *Memory) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = bytes.Clone(data)
	return nil
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
}

// Encode returns the given objects written as an FXML fragment.
func Encode(objs []fxom.Object) ([]byte, error) {
	var b bytes.Buffer
	if err := fxom.WriteFragment(&b, objs); err != nil {
		return nil, fmt.Errorf("clipboard.Encode: %w", err)
	}
	return b.Bytes(), nil
}

// Decode reads the objects of an FXML fragment as detached objects of
// the given document. A payload that does not decode yields no objects.
func Decode(payload []byte, d *fxom.Document, opts *fxom.ReadOptions) []fxom.Object {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	objs, err := fxom.ReadFragment(bytes.NewReader(payload), d, opts)
	if err != nil {
		slog.Info("clipboard: payload is not an FXML fragment", "err", err)
		return nil
	}
	return objs
}

// Copy encodes the given objects onto the clipboard.
func Copy(cb Clipboard, objs []fxom.Object) error {
	data, err := Encode(objs)
	if err != nil {
		return err
	}
	return cb.Write(data)
}

// Paste decodes the objects on the clipboard into the given document.
func Paste(cb Clipboard, d *fxom.Document, opts *fxom.ReadOptions) []fxom.Object {
	data, err := cb.Read()
	if errors.Log(err) != nil {
		return nil
	}
	return Decode(data, d, opts)
}
