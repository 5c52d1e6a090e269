// init.go implements the "rulelint init" command for rules scaffolding.
//
// Separated from extension.go to isolate init-specific logic. Init creates
// the rules directory with a starter rule that passes both checks, so a
// fresh workspace starts from a green "rulelint check".

package core

import (
	"errors"
	"fmt"

	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/workspace"
	"github.com/spf13/cobra"
)

func (e *Extension) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the rules directory with a starter rule",
		Long: `Creates the rules directory (.windsurf/rules by default) in the current
workspace with a starter rule file that passes both checks.

Existing rule files are never touched. Re-running init is an error unless
--force is given, which overwrites the starter rule only.

Use --dir to scaffold an explicit directory:
  rulelint init --dir ./rules`,
		Args: cobra.NoArgs,
		RunE: e.runInit,
	}
}

func (e *Extension) runInit(c *cobra.Command, _ []string) error {
	dir := e.ctx.RulesDir()

	path, err := workspace.Init(dir, cmd.Force())

	log.Event("core:init", "init").
		Root(dir).
		Detail("force", cmd.Force()).
		Write(err)

	if errors.Is(err, workspace.ErrExists) {
		return cmd.PrintJSONError(fmt.Errorf("init: %s already exists (use --force to overwrite)", path))
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"dir": dir, "created": path})
	}
	fmt.Fprintf(cmd.Out(), "Initialised rules directory in %s\n", dir)
	return nil
}
