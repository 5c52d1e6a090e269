// Package workspace locates the workspace root and its rules directory.
//
// The workspace root is the nearest ancestor of the working directory that
// contains a .windsurf directory, following the git model of walking up
// until a marker is found. When no marker exists the working directory
// itself is the root, so the tool still behaves sensibly in a fresh project.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WindsurfDir is the workspace marker directory.
const WindsurfDir = ".windsurf"

// DefaultRulesDir is the rules location relative to the workspace root.
var DefaultRulesDir = filepath.Join(WindsurfDir, "rules")

// ErrExists is returned by Init when the rules directory already contains
// the starter rule and --force was not given.
var ErrExists = errors.New("rules directory already initialised")

// FindRoot walks up from dir looking for a .windsurf directory and returns
// the directory containing it. Returns dir unchanged when no marker is
// found anywhere up the tree.
func FindRoot(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	for d := abs; ; {
		if info, err := os.Stat(filepath.Join(d, WindsurfDir)); err == nil && info.IsDir() {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			return abs
		}
		d = parent
	}
}

// RulesDir resolves the rules directory for the working directory.
//
// Precedence: an explicit dir (from --dir or RULELINT_DIR) wins outright;
// otherwise rel (from config, defaulting to .windsurf/rules) is joined to
// the discovered workspace root.
//
// The result is made relative to the working directory when it lies
// beneath it, so diagnostics print workspace-relative paths
// (".windsurf/rules/big.md") rather than absolute ones.
func RulesDir(explicit, rel string) string {
	if explicit != "" {
		return explicit
	}
	if rel == "" {
		rel = DefaultRulesDir
	}
	dir := filepath.Join(FindRoot("."), filepath.FromSlash(rel))

	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, dir); err == nil && !strings.HasPrefix(r, "..") {
			return r
		}
	}
	return dir
}

// starterRule is written by Init. It declares a manual trigger, so a fresh
// workspace passes the checks immediately.
const starterRule = `---
trigger: manual
description: Starter rule - replace with your own guidance
---

# Workspace rules

Add one markdown file per rule under this directory. Each file must declare
how it activates (always on, manual, model decision, or a glob) and stay
under the character limit.
`

// StarterName is the filename Init creates.
const StarterName = "getting-started.md"

// Init creates the rules directory with a starter rule file. Returns the
// created file's path. With force, an existing starter file is overwritten;
// other rule files are never touched.
func Init(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating rules directory: %w", err)
	}

	path := filepath.Join(dir, StarterName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, ErrExists
		}
	}
	if err := os.WriteFile(path, []byte(starterRule), 0644); err != nil {
		return "", fmt.Errorf("writing starter rule: %w", err)
	}
	return path, nil
}
