// check.go implements the "rulelint check" command, the core validation pass.
//
// Separated from extension.go to keep cobra wiring apart from the pass
// itself. Diagnostics go to stderr, one line per violation, so stdout stays
// clean for machine consumption; a passing run prints nothing at all.

package check

import (
	"fmt"
	"os"

	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/internal/lint"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate all rule files",
		Long: `Validate every markdown rule file under the rules directory.

Two checks are applied to each file:
  - length: content must not exceed the character limit (default 6000)
  - activation marker: content must contain one of <glob, Always On,
    Manual, or Model Decision (case-insensitive)

One diagnostic line per violation is written to stderr. A missing rules
directory is a vacuous pass.

Exit status: 0 when every file passes, 1 when any violation is found.

Examples:
  rulelint check              # validate <workspace>/.windsurf/rules
  rulelint check --dir ./r    # validate an explicit directory
  rulelint check -o json      # machine-readable report on stdout`,
		Args: cobra.NoArgs,
		RunE: e.runCheck,
	}
}

func (e *Extension) runCheck(c *cobra.Command, _ []string) error {
	dir := e.ctx.RulesDir()

	l := log.Event("check:run", "check").Root(dir)

	report, err := lint.Run(dir, e.ctx.Config().LintLimits())
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("check %s: %w", dir, err))
	}

	l.Files(report.Files).Violations(len(report.Violations)).Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(report); err != nil {
			return err
		}
	} else {
		report.Print(os.Stderr)
	}

	if report.Failed() {
		return cmd.FailCheck(c)
	}
	return nil
}
