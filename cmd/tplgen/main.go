// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tplgen generates a C++ header containing one string constant containing
// one template file.
//
// The template is looked up in the src directory next to the tplgen binary,
// and the header is written beside it with .tpl replaced by .h:
//
//	tplgen WrapperHeader.tpl   # src/WrapperHeader.tpl -> src/WrapperHeader.h
//
// Usage: tplgen <template_file>
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/goterm/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/acorn-engine/tplgen/pkg/tplgen"
)

const usage = "Usage: tplgen <template_file>"

// env is everything run touches outside its arguments.
type env struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	anchor func() (string, error)
}

func run(args []string, e env) int {
	if len(args) != 1 {
		fmt.Fprintln(e.stdout, usage)
		return 1
	}

	// There are no flags. The terminator makes a leading dash part of the
	// file name.
	fset := pflag.NewFlagSet("tplgen", pflag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.SetInterspersed(false)
	fset.Usage = func() {}
	if err := fset.Parse(append([]string{"--"}, args...)); err != nil || fset.NArg() != 1 {
		fmt.Fprintln(e.stdout, usage)
		return 1
	}

	l := log.New(e.stderr, "[tplgen] ", 0)
	dir, err := e.anchor()
	if err != nil {
		l.Printf("%s: %v", failed(e.stderr), err)
		return 1
	}

	g := &tplgen.Generator{
		Fs:        e.fs,
		AnchorDir: dir,
		Log:       l,
	}
	if _, err := g.Generate(fset.Arg(0)); err != nil {
		l.Printf("%s: %v", failed(e.stderr), err)
		return 1
	}
	return 0
}

// failed labels a failure, in bold when w is a terminal.
func failed(w io.Writer) string {
	const label = "generate failed"
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return fmt.Sprint(term.Bold(label))
	}
	return label
}

func main() {
	os.Exit(run(os.Args[1:], env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		anchor: tplgen.AnchorDir,
	}))
}
