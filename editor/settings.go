// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/builder/base/iox/tomlx"
	"cogentcore.org/builder/job"
	"cogentcore.org/builder/undo"
)

// Clipboard modes of [Settings.Clipboard].
const (
	SystemClipboard = "system"
	MemoryClipboard = "memory"
)

// SettingsFile is the settings file path, relative to the home directory.
var SettingsFile = filepath.Join(".config", "fxomedit", "settings.toml")

// Settings are the user settings of the editor, saved as TOML.
type Settings struct {

	// UndoLimit is the maximum number of undo records.
	UndoLimit int

	// MergeWindow is the delay in milliseconds within which successive
	// relocations of the same objects merge into one undo step.
	MergeWindow int

	// Clipboard is the clipboard used: system or memory.
	Clipboard string

	// Catalog is the path of a YAML component catalog replacing the
	// built-in one, if not empty.
	Catalog string

	// LogLevel is the level of the messages shown: debug, info, warn or error.
	LogLevel string
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.UndoLimit = undo.DefaultLimit
	s.MergeWindow = int(job.DefaultMergeWindow.Milliseconds())
	s.Clipboard = SystemClipboard
	s.Catalog = ""
	s.LogLevel = "warn"
}

// DefaultSettingsPath returns the settings file in the home directory.
func DefaultSettingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("editor.DefaultSettingsPath: %w", err)
	}
	return filepath.Join(home, SettingsFile), nil
}

// LoadSettings returns the default settings overridden by the named
// TOML file. A missing file is not an error. A leading ~ in the name
// is expanded to the home directory.
func LoadSettings(fname string) (*Settings, error) {
	s := &Settings{}
	s.Defaults()
	fname, err := homedir.Expand(fname)
	if err != nil {
		return s, fmt.Errorf("editor.LoadSettings: %w", err)
	}
	if _, err := os.Stat(fname); os.IsNotExist(err) {
		return s, nil
	}
	if err := tomlx.Open(s, fname); err != nil {
		return s, fmt.Errorf("editor.LoadSettings: %w", err)
	}
	return s, nil
}

// Save writes the settings to the named TOML file, making its directory.
func (s *Settings) Save(fname string) error {
	fname, err := homedir.Expand(fname)
	if err != nil {
		return fmt.Errorf("editor.Settings.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return fmt.Errorf("editor.Settings.Save: %w", err)
	}
	return tomlx.Save(s, fname)
}
