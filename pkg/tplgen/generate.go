// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tplgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/u-root/uio/ulog"
)

// Generator writes headers for templates found under AnchorDir.
type Generator struct {
	// Fs is the filesystem templates are read from and headers written to.
	// Defaults to the OS filesystem.
	Fs afero.Fs

	// AnchorDir is the directory template names are relative to.
	AnchorDir string

	// Log receives progress and warnings. Defaults to ulog.Log.
	Log ulog.Logger
}

func (g *Generator) fs() afero.Fs {
	if g.Fs == nil {
		return afero.NewOsFs()
	}
	return g.Fs
}

func (g *Generator) log() ulog.Logger {
	if g.Log == nil {
		return ulog.Log
	}
	return g.Log
}

// Generate reads the template called name and writes its header next to it.
//
// The template is read in full before anything is written, and the header
// replaces any previous one in a single rename. On error the previous header,
// if there was one, is left as it was.
func (g *Generator) Generate(name string) (*Template, error) {
	t, err := NewTemplate(g.AnchorDir, name)
	if err != nil {
		return nil, err
	}
	fs := g.fs()

	fi, err := fs.Stat(t.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read template: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("could not read template %s: is a directory", t.Path)
	}
	content, err := afero.ReadFile(fs, t.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read template: %w", err)
	}
	if HasCloseDelim(content) {
		g.log().Printf("Warning: %s contains %s, %s will not compile", t.Path, CloseDelim, t.OutPath)
	}

	var b bytes.Buffer
	if err := Render(&b, t.Stem, content); err != nil {
		return nil, err
	}
	if err := writeFile(fs, t.OutPath, b.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("could not write header %s: %w", t.OutPath, err)
	}
	return t, nil
}

// writeFile writes data to a temporary file in the directory of name and
// renames it over name.
func writeFile(fs afero.Fs, name string, data []byte, perm os.FileMode) (err error) {
	f, err := afero.TempFile(fs, filepath.Dir(name), "."+filepath.Base(name)+".")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			fs.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = fs.Chmod(tmp, perm); err != nil {
		return err
	}
	return fs.Rename(tmp, name)
}
