// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tplgen turns a text template into a C++ header that carries the
// template's bytes as a raw string constant in the Acorn::IDL namespace.
//
// The header looks like this, where STEM is the template's base name without
// its final extension and CONTENT is the template's text, byte for byte:
//
//	#pragma once
//
//	namespace Acorn::IDL
//	{
//		const char* STEM = R"~~~(CONTENT)~~~";
//	}
//
// A build pipeline calls the tplgen command once per template to compile
// assets such as IDL wrapper templates into the binary.
package tplgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// TemplateSuffix is the suffix templates carry on disk.
	TemplateSuffix = ".tpl"

	// HeaderSuffix replaces TemplateSuffix in the output file name.
	HeaderSuffix = ".h"
)

var (
	// ErrNoTemplateSuffix is returned for names that do not end in TemplateSuffix.
	ErrNoTemplateSuffix = errors.New("template name must end in " + TemplateSuffix)

	// ErrEmptyStem is returned when stripping the extension leaves nothing to
	// name the constant after.
	ErrEmptyStem = errors.New("template name has an empty stem")
)

// Template is one template file and the names derived from it.
type Template struct {
	// Name is the name as given on the command line, relative to the anchor.
	Name string

	// Path is the template's location: the anchor joined with Name.
	Path string

	// OutPath is Path with the final TemplateSuffix replaced by HeaderSuffix.
	OutPath string

	// Stem is the base name of Path without its final extension. It names the
	// generated constant.
	Stem string
}

// NewTemplate resolves name against anchorDir.
//
// Only the final ".tpl" is replaced when deriving the output name, so
// "my.tpl.file.tpl" becomes "my.tpl.file.h". All problems with name are
// reported together.
func NewTemplate(anchorDir, name string) (*Template, error) {
	var merr error
	if name == "" {
		return nil, fmt.Errorf("invalid template name %q: %w", name, ErrEmptyStem)
	}
	if !strings.HasSuffix(name, TemplateSuffix) {
		merr = multierror.Append(merr, ErrNoTemplateSuffix)
	}

	p := filepath.Join(anchorDir, name)
	stem := stemOf(p)
	if stem == "" {
		merr = multierror.Append(merr, ErrEmptyStem)
	}
	if merr != nil {
		return nil, fmt.Errorf("invalid template name %q: %w", name, merr)
	}

	return &Template{
		Name:    name,
		Path:    p,
		OutPath: strings.TrimSuffix(p, TemplateSuffix) + HeaderSuffix,
		Stem:    stem,
	}, nil
}

// stemOf strips the final extension from the base name of p. A base name
// that is only an extension, such as ".tpl", is treated as having an empty
// stem.
func stemOf(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (t *Template) String() string {
	return t.Name
}
