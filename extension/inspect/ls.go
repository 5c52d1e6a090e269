// ls.go implements the "rulelint ls" command for listing rule files.
//
// Separated from extension.go to isolate listing logic. Listing reuses the
// same checks as "rulelint check" to compute the STATUS column, so the two
// commands can never disagree about whether a rule passes.

package inspect

import (
	"fmt"

	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/extension"
	"github.com/jpl-au/rulelint/internal/format"
	"github.com/jpl-au/rulelint/internal/lint"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/rules"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List rule files",
		Long: `List the rule files under the rules directory.

Default output is one path per line. Use -l for a table with check status,
declared trigger, character count, and size.

Examples:
  rulelint ls        # paths only
  rulelint ls -l     # long format
  rulelint ls -o json`,
		Args: cobra.NoArgs,
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with status and trigger")
	return c
}

// lsEntry is the JSON shape for one listed rule.
type lsEntry struct {
	rules.Rule
	Status string `json:"status"`
}

func (e *Extension) runLs(c *cobra.Command, _ []string) error {
	long, _ := c.Flags().GetBool(extension.FlagLong)
	dir := e.ctx.RulesDir()
	limits := e.ctx.Config().LintLimits()

	l := log.Event("inspect:ls", "list").Root(dir)

	rs, err := rules.List(dir)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("ls %s: %w", dir, err))
	}

	l.Files(len(rs)).Write(nil)

	rows := make([]format.Row, 0, len(rs))
	entries := make([]lsEntry, 0, len(rs))
	for _, r := range rs {
		status := "ok"
		if r.ReadErr != nil || len(lint.Check(r.Path, r.Content, limits)) > 0 {
			status = "fail"
		}
		rows = append(rows, format.Row{Rule: r, Status: status})
		entries = append(entries, lsEntry{Rule: r, Status: status})
	}

	if cmd.JSON() {
		return cmd.PrintJSON(entries)
	}

	if long {
		format.Long(cmd.Out(), rows)
	} else {
		format.Paths(cmd.Out(), rows)
	}
	return nil
}
