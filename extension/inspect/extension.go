// Package inspect provides read-only tooling around the rules directory:
// listing rule files with their declared triggers, printing a single rule,
// and previewing mechanical formatting fixes.
// Registers commands: ls, cat, fmt.
package inspect

import (
	"github.com/jpl-au/rulelint/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the inspect extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "inspect" - this extension provides rule file inspection commands.
func (e *Extension) Name() string { return "inspect" }

// Init receives the shared context with resolved config and rules directory.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns ls, cat, and fmt commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newCatCmd(),
		e.newFmtCmd(),
	}
}
