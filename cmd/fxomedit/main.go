// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fxomedit shows, checks and edits FXML documents from the
// command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/base/logx"
	"cogentcore.org/builder/editor"
)

const version = "0.1.0"

const usage = `FXML document editor.

Usage:
    fxomedit show <file> [options]
    fxomedit check <file> [options]
    fxomedit shell [<file>] [--watch] [options]
    fxomedit -h | --help
    fxomedit --version

Options:
    -h --help              Show this screen.
    --version              Show version.
    --settings=<file>      Settings file [default: ~/.config/fxomedit/settings.toml].
    --watch                Report changes of the file made by other programs.
    -v                     Show info messages.
    --vv                   Show debug messages.
    -q                     Only show errors.`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	errors.Must(err)
	os.Exit(run(opts, os.Stdin, os.Stdout))
}

// run runs the command given by the parsed options and returns the
// exit code.
func run(opts docopt.Opts, in io.Reader, out io.Writer) int {
	sfile, _ := opts.String("--settings")
	set := errors.Log1(editor.LoadSettings(sfile))

	vv, _ := opts.Bool("--vv")
	v, _ := opts.Bool("-v")
	q, _ := opts.Bool("-q")
	logx.UserLevel = logx.LevelFromString(set.LogLevel)
	if vv || v || q {
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
	}
	logx.SetDefaultLogger()

	ed := editor.New(set)
	fname, _ := opts.String("<file>")
	if fname != "" {
		if err := ed.Open(fname); err != nil {
			fmt.Fprintln(out, "error:", err)
			return 1
		}
	}

	switch {
	case isCommand(opts, "show"):
		printTree(out, ed.Document(), nil)
	case isCommand(opts, "check"):
		if err := ed.Document().Check(); err != nil {
			fmt.Fprintln(out, err)
			return 1
		}
		fmt.Fprintln(out, "ok")
	case isCommand(opts, "shell"):
		if watch, _ := opts.Bool("--watch"); watch && fname != "" {
			err := ed.Watch(func(fname string) {
				fmt.Fprintf(out, "\n%s changed on disk; use open to reload it\n", fname)
			})
			if errors.Log(err) == nil {
				defer ed.StopWatch()
			}
		}
		sh := &shell{ed: ed, out: out}
		sh.loop(in)
	}
	return 0
}

func isCommand(opts docopt.Opts, name string) bool {
	b, _ := opts.Bool(name)
	return b
}
