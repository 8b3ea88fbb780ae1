// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tplgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	anchor := filepath.Join("/opt", "idl", "src")
	for _, tt := range []struct {
		name    string
		wantOut string
		stem    string
	}{
		{name: "foo.tpl", wantOut: "foo.h", stem: "foo"},
		{name: "greeting.tpl", wantOut: "greeting.h", stem: "greeting"},
		{name: "a.b.tpl", wantOut: "a.b.h", stem: "a.b"},
		{name: "my.tpl.file.tpl", wantOut: "my.tpl.file.h", stem: "my.tpl.file"},
		{name: "WrapperImplementation.tpl", wantOut: "WrapperImplementation.h", stem: "WrapperImplementation"},
		{name: filepath.Join("v8", "Wrapper.tpl"), wantOut: filepath.Join("v8", "Wrapper.h"), stem: "Wrapper"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := NewTemplate(anchor, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, tpl.Name)
			assert.Equal(t, filepath.Join(anchor, tt.name), tpl.Path)
			assert.Equal(t, filepath.Join(anchor, tt.wantOut), tpl.OutPath)
			assert.Equal(t, tt.stem, tpl.Stem)
		})
	}
}

func TestNewTemplateErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		want []error
	}{
		{name: "", want: []error{ErrEmptyStem}},
		{name: "foo.txt", want: []error{ErrNoTemplateSuffix}},
		{name: "foo.tpl.bak", want: []error{ErrNoTemplateSuffix}},
		{name: "foo", want: []error{ErrNoTemplateSuffix}},
		{name: ".tpl", want: []error{ErrEmptyStem}},
		{name: ".txt", want: []error{ErrNoTemplateSuffix, ErrEmptyStem}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := NewTemplate("/src", tt.name)
			require.Error(t, err)
			assert.Nil(t, tpl)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
