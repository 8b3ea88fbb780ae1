// Copyright 2026 the Acorn Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tplgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// AnchorSubdir is the directory next to the tool that holds templates.
const AnchorSubdir = "src"

// AnchorDir returns the template directory of the running tool: the directory
// of its executable, symlinks resolved, joined with AnchorSubdir. The working
// directory plays no part.
func AnchorDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate tool: %w", err)
	}
	return anchorFor(exe)
}

func anchorFor(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("could not resolve tool path %s: %w", exe, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(abs), AnchorSubdir), nil
}
