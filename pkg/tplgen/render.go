// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tplgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/template"
)

const (
	// Namespace is the C++ namespace every constant is declared in.
	Namespace = "Acorn::IDL"

	// OpenDelim and CloseDelim bracket the embedded text.
	OpenDelim  = `R"~~~(`
	CloseDelim = `)~~~"`
)

// Fixed text before the constant's name and after its value. The trailing
// tabs are part of the header format that downstream build steps already
// consume. There is no newline after them.
const (
	headerHead = "\n#pragma once\n\nnamespace " + Namespace + "\n{\n\tconst char* "
	headerTail = CloseDelim + ";\n}\n\t\t\t"
)

const headerTpl = headerHead + "{{.Stem}} = " + OpenDelim + "{{.Content}}" + headerTail

var header = template.Must(template.New("header").Parse(headerTpl))

// ErrMalformedHeader is returned by Payload for input Render did not produce.
var ErrMalformedHeader = errors.New("not a generated template header")

// Render writes the header declaring stem with content as its value.
func Render(w io.Writer, stem string, content []byte) error {
	vars := struct {
		Stem    string
		Content string
	}{
		Stem:    stem,
		Content: string(content),
	}
	if err := header.Execute(w, vars); err != nil {
		return fmt.Errorf("rendering header for %s: %w", stem, err)
	}
	return nil
}

// Payload returns the embedded text of a header Render wrote for stem.
//
// The payload sits between the declaration of stem and the fixed tail of the
// header, so content or a stem that itself contains a delimiter still comes
// back intact.
func Payload(h []byte, stem string) ([]byte, error) {
	head := []byte(headerHead + stem + " = " + OpenDelim)
	if len(h) < len(head)+len(headerTail) ||
		!bytes.HasPrefix(h, head) ||
		!bytes.HasSuffix(h, []byte(headerTail)) {
		return nil, ErrMalformedHeader
	}
	return h[len(head) : len(h)-len(headerTail)], nil
}

// HasCloseDelim reports whether content would end the raw string early.
func HasCloseDelim(content []byte) bool {
	return bytes.Contains(content, []byte(CloseDelim))
}
