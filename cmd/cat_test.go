package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCat(t *testing.T) {
	t.Run("prints raw content when piped", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("style.md", passingRule)

		out := env.run("cat", "style")
		// stdout is not a terminal in tests, so content comes through raw
		env.equals(out, passingRule)
	})

	t.Run("extension is optional", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("style.md", passingRule)

		withExt := env.run("cat", "style.md")
		withoutExt := env.run("cat", "style")
		assert.Equal(t, withExt, withoutExt)
	})

	t.Run("nested rule", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeRule("lang/go.md", passingRule)

		out := env.run("cat", "lang/go")
		env.contains(out, "# Conventions")
	})
}

func TestCat_Missing(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("cat", "nope")
	assert.Error(t, err)
	env.contains(out, "nope")
}

func TestCat_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.writeRule("style.md", passingRule)

	out := env.run("cat", "style", "-o", "json")
	env.contains(out, `"path":"style.md"`)
	env.contains(out, `"chars"`)
	env.contains(out, `"trigger":"manual"`)
}
