package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmt(t *testing.T) {
	t.Run("clean files need nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("style.md", passingRule)

		stdout, _, code := env.runSplit("fmt")
		assert.Equal(t, 0, code)
		assert.Empty(t, stdout)
	})

	t.Run("dry run reports issues and fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("messy.md", "Manual  \nline two\t\n")

		stdout, _, code := env.runSplit("fmt")
		assert.Equal(t, 1, code, "dry run with pending changes is a CI gate")
		env.contains(stdout, "messy.md: trailing whitespace")

		// Dry run must not touch the file.
		data, err := os.ReadFile(filepath.Join(env.rulesDir(), "messy.md"))
		require.NoError(t, err)
		assert.Equal(t, "Manual  \nline two\t\n", string(data))
	})

	t.Run("write applies fixes", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("messy.md", "Manual  \r\nline two\r\n")

		out := env.run("fmt", "--write")
		env.contains(out, "CRLF line endings")
		env.contains(out, "formatted 1 file(s)")

		data, err := os.ReadFile(filepath.Join(env.rulesDir(), "messy.md"))
		require.NoError(t, err)
		assert.Equal(t, "Manual\nline two\n", string(data))

		// Second pass is a no-op.
		stdout, _, code := env.runSplit("fmt")
		assert.Equal(t, 0, code)
		assert.Empty(t, stdout)
	})

	t.Run("missing final newline", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("nofinal.md", "Manual")

		env.run("fmt", "-w")

		data, err := os.ReadFile(filepath.Join(env.rulesDir(), "nofinal.md"))
		require.NoError(t, err)
		assert.Equal(t, "Manual\n", string(data))
	})
}

func TestFmt_SkipsUnreadableFile(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("messy.md", "Manual  \n")
	if err := os.Symlink(filepath.Join(env.rulesDir(), "gone"),
		filepath.Join(env.rulesDir(), "broken.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	// The unreadable file is check's problem; the readable one still gets
	// formatted.
	out := env.run("fmt", "--write")
	env.contains(out, "formatted 1 file(s)")

	data, err := os.ReadFile(filepath.Join(env.rulesDir(), "messy.md"))
	require.NoError(t, err)
	assert.Equal(t, "Manual\n", string(data))
}

func TestFmt_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("messy.md", "\ufeffManual\n")

	stdout, _, code := env.runSplit("fmt", "-o", "json")
	assert.Equal(t, 1, code)
	env.contains(stdout, `"path":"messy.md"`)
	env.contains(stdout, "UTF-8 byte order mark")
	env.contains(stdout, `"fixed":false`)
}
