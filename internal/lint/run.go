// run.go implements the directory pass: enumerate rule files, check each,
// collect violations.
//
// Separated from lint.go to keep the pure checks (Check, hasMarker) apart
// from filesystem traversal. The checks are order-insensitive per file, but
// the pass reports violations in traversal order so output is deterministic.

package lint

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Report holds the outcome of a full validation pass.
type Report struct {
	Root       string      `json:"root"`
	Files      int         `json:"files"`
	Violations []Violation `json:"violations"`
}

// Failed reports whether the pass found at least one violation.
func (r Report) Failed() bool {
	return len(r.Violations) > 0
}

// Print writes one diagnostic line per violation to w, in the literal
// patterns "<path> exceeds <max> chars" and "<path> missing activation
// marker". Passing files produce no output.
func (r Report) Print(w io.Writer) {
	for _, v := range r.Violations {
		io.WriteString(w, v.String()+"\n")
	}
}

// Run walks root recursively, reads every *.md file, and applies the checks.
//
// A missing root is a vacuous pass: zero files, zero violations. This is
// deliberate - a workspace without rule files has nothing to violate.
//
// An unreadable file does not abort the run: it is recorded as a
// KindUnreadable violation and the pass continues with the next file
// (skip-and-report rather than fail-fast).
func Run(root string, limits Limits) (Report, error) {
	r := Report{Root: root}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			// Unreadable subdirectory: report and keep walking siblings.
			r.Violations = append(r.Violations, Unreadable(path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		r.Files++
		data, err := os.ReadFile(path)
		if err != nil {
			r.Violations = append(r.Violations, Unreadable(path, err))
			return nil
		}

		r.Violations = append(r.Violations, Check(path, string(data), limits)...)
		return nil
	})
	if err != nil {
		return r, err
	}
	return r, nil
}
