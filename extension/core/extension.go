// Package core provides the core extension for rulelint.
// It registers commands: init, config, guide, version.
package core

import (
	"github.com/jpl-au/rulelint/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Configless    = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental rulelint commands.
func (e *Extension) Name() string { return "core" }

// Init receives the shared context. Only init uses it; guide, version, and
// config run without one.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newInitCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// NoConfigCommands returns commands that manage their own config lifecycle.
// config: Loads a specific scope itself (--local), so the shared load would
// be wasted work and a malformed file should still be inspectable.
func (e *Extension) NoConfigCommands() []string {
	return []string{"config"}
}
