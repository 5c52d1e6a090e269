package cmd

import "testing"

func TestVersion(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")
	env.contains(out, "Platform:")
}

func TestVersion_JSON(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
	env.contains(out, `"go_version"`)
}
