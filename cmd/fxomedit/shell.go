// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"cogentcore.org/builder/base/errors"
	"cogentcore.org/builder/editor"
	"cogentcore.org/builder/fxom"
	"cogentcore.org/builder/geom"
	"cogentcore.org/builder/job"
)

const shellHelp = `Commands:
    show                     print the object tree
    select <fx:id>...        select objects
    do <action>              perform an action (delete, duplicate, trim...)
    actions                  list the actions that can be performed now
    wrap <container>         wrap the selection in a container
    set <property> <value>   set a property of the selected objects
    id <fx:id>               set the fx:id of the selected object
    move <x> <y>             move the selected objects
    import <file>            import an image, media or FXML file
    include <file>           include an FXML file
    undo, redo               undo or redo the last job
    check                    check the document consistency
    open <file>              open another document
    save [file]              save the document
    quit                     leave the shell`

// errQuit is returned by [shell.run] for the quit command.
var errQuit = errors.New("quit")

// shell is the interactive command interpreter over an editor.
type shell struct {
	ed  *editor.Editor
	out io.Writer
}

// loop reads and runs commands until the input ends or quit.
func (sh *shell) loop(in io.Reader) {
	sc := bufio.NewScanner(in)
	fmt.Fprint(sh.out, "> ")
	for sc.Scan() {
		if err := sh.run(sc.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Fprintln(sh.out, "error:", err)
		}
		fmt.Fprint(sh.out, "> ")
	}
}

// run runs one command line.
func (sh *shell) run(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	ed := sh.ed
	cmd, args := args[0], args[1:]
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d argument(s), see help", cmd, n)
		}
		return nil
	}
	switch cmd {
	case "help":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return errQuit
	case "show":
		printTree(sh.out, ed.Document(), ed.Selection)
	case "select":
		if len(args) == 0 {
			ed.Selection.Clear()
			return nil
		}
		if !ed.Select(args...) {
			return fmt.Errorf("no object with one of the fx:ids %v", args)
		}
	case "do":
		if err := need(1); err != nil {
			return err
		}
		a, err := editor.ParseAction(args[0])
		if err != nil {
			return err
		}
		return sh.done(ed.Perform(a), a.String())
	case "actions":
		var names []string
		for a := editor.Copy; a < editor.ActionsN; a++ {
			if ed.CanPerform(a) {
				names = append(names, a.String())
			}
		}
		fmt.Fprintln(sh.out, strings.Join(names, " "))
	case "wrap":
		if err := need(1); err != nil {
			return err
		}
		kind, err := job.ParseContainerKind(args[0])
		if err != nil {
			return err
		}
		return sh.done(ed.WrapIn(kind), "wrap in "+kind.String())
	case "set":
		if err := need(2); err != nil {
			return err
		}
		name := fxom.ParsePropertyName(args[0])
		return sh.done(ed.Execute(job.NewModifySelection(ed.Context(), name, args[1])), "set "+args[0])
	case "id":
		if err := need(1); err != nil {
			return err
		}
		og := ed.Selection.Objects()
		if og == nil || og.Len() != 1 {
			return fmt.Errorf("id needs a single selected object")
		}
		return sh.done(ed.SetFxID(og.Items()[0], args[0]), "set fx:id")
	case "move":
		if err := need(2); err != nil {
			return err
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		og := ed.Selection.Objects()
		if og == nil {
			return fmt.Errorf("nothing is selected")
		}
		moves := map[fxom.Object]geom.Vector2{}
		for _, obj := range og.Items() {
			moves[obj] = geom.Vec2(x, y)
		}
		return sh.done(ed.Relocate(moves), "move")
	case "import":
		if err := need(1); err != nil {
			return err
		}
		return sh.done(ed.Import(args[0]), "import "+args[0])
	case "include":
		if err := need(1); err != nil {
			return err
		}
		return sh.done(ed.Include(args[0]), "include "+args[0])
	case "undo":
		return sh.done(ed.Perform(editor.Undo), "undo")
	case "redo":
		return sh.done(ed.Perform(editor.Redo), "redo")
	case "check":
		if err := ed.Document().Check(); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "ok")
	case "open":
		if err := need(1); err != nil {
			return err
		}
		return ed.Open(args[0])
	case "save":
		fname := ""
		if len(args) > 0 {
			fname = args[0]
		}
		return ed.Save(fname)
	default:
		return fmt.Errorf("unknown command %q, see help", cmd)
	}
	return nil
}

// done returns an error if the named job could not be done.
func (sh *shell) done(ok bool, what string) error {
	if !ok {
		return fmt.Errorf("cannot %s now", what)
	}
	return nil
}
