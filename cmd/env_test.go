// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> extension wiring -> lint/rules/workspace ->
// filesystem. They build the real binary and run it against temporary
// workspaces, asserting on exit codes, stdout, and stderr separately -
// diagnostics go to stderr and the exit code is the contract CI depends on,
// so both are checked end to end here rather than through cobra internals.
//
// Pure logic (the checks themselves, frontmatter parsing, normalisation)
// is unit-tested in the internal packages; these tests cover the wiring.

package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the rulelint binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "rulelint-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "rulelint"
		if os.PathSeparator == '\\' {
			binaryName = "rulelint.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // workspace root
	home   string // isolated HOME so global config and the audit log never touch the real one
	binary string
}

// newTestEnv creates a temporary workspace with an empty rules directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := newBareEnv(t)
	if err := os.MkdirAll(env.rulesDir(), 0755); err != nil {
		t.Fatal(err)
	}
	return env
}

// newBareEnv creates a temporary directory with no .windsurf marker at all.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

func (e *testEnv) rulesDir() string {
	return filepath.Join(e.dir, ".windsurf", "rules")
}

// writeRule writes a rule file under the rules directory, creating parent
// directories as needed.
func (e *testEnv) writeRule(name, content string) {
	e.t.Helper()

	path := filepath.Join(e.rulesDir(), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatal(err)
	}
}

// writeFile writes a file relative to base, creating parent directories.
func writeFile(t *testing.T, base, name, content string) {
	t.Helper()

	path := filepath.Join(base, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// command prepares a rulelint invocation in the workspace with HOME isolated.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	return cmd
}

// run executes rulelint with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("rulelint %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes rulelint and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// runSplit executes rulelint and returns stdout, stderr, and the exit code.
// The exit code is the CI contract, so tests assert it directly.
func (e *testEnv) runSplit(args ...string) (stdout, stderr string, code int) {
	e.t.Helper()

	cmd := e.command(args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			e.t.Fatalf("rulelint %v: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return outBuf.String(), errBuf.String(), code
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// passingRule is a minimal rule that satisfies both checks: well under the
// length limit, with a manual trigger in frontmatter as the marker.
const passingRule = `---
trigger: manual
description: Test conventions
---

# Conventions

Prefer table-driven tests.
`

// longContent returns content of exactly n characters ending with filler.
func longContent(prefix string, n int) string {
	return prefix + strings.Repeat("x", n-len(prefix))
}
