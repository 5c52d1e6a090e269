// Package check provides the validation commands. It runs the two rule file
// checks - character limit and activation marker - over the rules directory.
// Registers commands: check, watch.
package check

import (
	"github.com/jpl-au/rulelint/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check" - this extension provides the validation commands.
func (e *Extension) Name() string { return "check" }

// Init receives the shared context with resolved config and rules directory.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the check and watch commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newCheckCmd(),
		e.newWatchCmd(),
	}
}
