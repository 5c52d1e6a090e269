// Package rules provides discovery and loading of Windsurf rule files.
//
// A rule file is a markdown file under the workspace rules directory
// (.windsurf/rules by default). Rule files are read-only input: this package
// never creates, mutates, or deletes them.
package rules

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extension is the rule file extension filter.
const Extension = ".md"

// Rule is one rule file and its metadata.
type Rule struct {
	// Path is relative to the rules directory, slash-separated.
	Path string `json:"path"`
	// AbsPath is the full filesystem path.
	AbsPath string `json:"-"`
	Content string `json:"-"`
	// Size is the content length in bytes, Chars in runes.
	Size  int64 `json:"size"`
	Chars int   `json:"chars"`
	// Front holds the parsed YAML frontmatter, zero-valued when absent.
	Front Frontmatter `json:"frontmatter"`
	// ReadErr is set when the file could not be read; the other content
	// fields are then zero.
	ReadErr error `json:"-"`
}

// List loads every rule file under dir, sorted in traversal (lexical) order.
// A missing dir yields an empty list, matching the validator's vacuous-pass
// behaviour. Unreadable files and subtrees are included with ReadErr set so
// callers can report them rather than silently dropping files from listings;
// the walk continues past them, mirroring the validator's skip-and-report.
func List(dir string) ([]Rule, error) {
	var out []Rule

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			rel, rerr := filepath.Rel(dir, path)
			if rerr != nil {
				rel = path
			}
			out = append(out, Rule{Path: filepath.ToSlash(rel), AbsPath: path, ReadErr: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), Extension) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		out = append(out, load(filepath.ToSlash(rel), path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads a single rule by name under dir. The name may be given with or
// without the .md extension.
func Load(dir, name string) (Rule, error) {
	rel := name
	if !strings.EqualFold(filepath.Ext(rel), Extension) {
		rel += Extension
	}
	abs := filepath.Join(dir, filepath.FromSlash(rel))
	r := load(filepath.ToSlash(rel), abs)
	if r.ReadErr != nil {
		return r, r.ReadErr
	}
	return r, nil
}

func load(rel, abs string) Rule {
	r := Rule{Path: rel, AbsPath: abs}

	data, err := os.ReadFile(abs)
	if err != nil {
		r.ReadErr = err
		return r
	}

	r.Content = string(data)
	r.Size = int64(len(data))
	r.Chars = utf8.RuneCountInString(r.Content)
	r.Front = ParseFrontmatter(r.Content)
	return r
}
