// cat.go implements the "rulelint cat" command for printing a rule file.
//
// Separated from ls.go because cat renders content rather than metadata.
// Terminal output gets glamour markdown rendering for readability;
// pipe/redirect gets raw markdown for machine consumption.

package inspect

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/rules"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <rule>",
		Short: "Print a rule file",
		Long: `Print one rule file from the rules directory. The name may be given
with or without the .md extension.

Rendered as markdown when stdout is a terminal, raw otherwise.

Examples:
  rulelint cat getting-started
  rulelint cat lang/go.md
  rulelint cat getting-started -o json`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCat,
	}
}

func (e *Extension) runCat(_ *cobra.Command, args []string) error {
	dir := e.ctx.RulesDir()

	r, err := rules.Load(dir, args[0])
	log.Event("inspect:cat", "read").Root(dir).Detail("rule", args[0]).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", args[0], err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"path":        r.Path,
			"chars":       r.Chars,
			"frontmatter": r.Front,
			"content":     r.Content,
		})
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(r.Content, "dark")
		if err == nil {
			fmt.Fprint(cmd.Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(cmd.Out(), r.Content)
	return nil
}
