package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLs(t *testing.T) {
	t.Run("paths only", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("style.md", passingRule)
		env.writeRule("lang/go.md", passingRule)

		out := env.run("ls")
		env.equals(out, "lang/go.md\nstyle.md")
	})

	t.Run("empty directory prints nothing", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls")
		assert.Empty(t, out)
	})

	t.Run("non markdown files ignored", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("style.md", passingRule)
		env.writeRule("notes.txt", "not a rule")

		out := env.run("ls")
		env.equals(out, "style.md")
	})
}

func TestLs_UnreadableFile(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("good.md", passingRule)
	if err := os.Symlink(filepath.Join(env.rulesDir(), "gone"),
		filepath.Join(env.rulesDir(), "broken.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	// ls keeps going past an unreadable file, like check does.
	out := env.run("ls", "-l")
	env.contains(out, "good.md")
	env.contains(out, "broken.md")
	env.contains(out, "fail")
}

func TestLs_Long(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("good.md", passingRule)
	env.writeRule("bad.md", "no marker\n")

	out := env.run("ls", "-l")
	env.contains(out, "STATUS")
	env.contains(out, "TRIGGER")
	env.contains(out, "manual") // declared in good.md frontmatter
	env.contains(out, "ok")
	env.contains(out, "fail")
}

func TestLs_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("good.md", passingRule)

	out := env.run("ls", "-o", "json")
	env.contains(out, `"status":"ok"`)
	env.contains(out, `"path":"good.md"`)
}
