// fmt.go implements the "rulelint fmt" command for mechanical cleanup.
//
// Separated from ls.go and cat.go because fmt is the only inspect command
// that can write. Default is a dry run showing a diff preview of what would
// change; --write applies the cleanup in place. Hygiene issues (CRLF,
// trailing whitespace, BOM, missing final newline) never affect check
// results, but they inflate character counts and churn diffs.

package inspect

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/extension"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/normalize"
	"github.com/jpl-au/rulelint/internal/rules"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newFmtCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fmt",
		Short: "Normalise rule file formatting",
		Long: `Detect mechanical hygiene issues in rule files: CRLF line endings,
trailing whitespace, a UTF-8 byte order mark, and a missing final newline.

Default is a dry run: for each affected file a diff preview is printed and
the exit status is 1, making fmt usable as a CI gate. Use --write to apply
the cleanup in place.

Examples:
  rulelint fmt          # preview, exit 1 if anything needs formatting
  rulelint fmt --write  # rewrite affected files`,
		Args: cobra.NoArgs,
		RunE: e.runFmt,
	}
	c.Flags().BoolP(extension.FlagWrite, "w", false, "Apply fixes in place")
	return c
}

// fmtEntry is the JSON shape for one affected file.
type fmtEntry struct {
	Path   string   `json:"path"`
	Issues []string `json:"issues"`
	Fixed  bool     `json:"fixed"`
}

func (e *Extension) runFmt(c *cobra.Command, _ []string) error {
	write, _ := c.Flags().GetBool(extension.FlagWrite)
	dir := e.ctx.RulesDir()

	l := log.Event("inspect:fmt", "format").Root(dir).Detail("write", write)

	rs, err := rules.List(dir)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("fmt %s: %w", dir, err))
	}

	colour := term.IsTerminal(int(os.Stdout.Fd()))
	var entries []fmtEntry

	for _, r := range rs {
		// Unreadable files are check's business: it reports them. There is
		// nothing here to format, so the rest still gets cleaned up.
		if r.ReadErr != nil {
			continue
		}

		cleaned := normalize.Clean(r.Content)
		if cleaned == r.Content {
			continue
		}

		entry := fmtEntry{Path: r.Path, Issues: normalize.Issues(r.Content)}

		if write {
			if err := os.WriteFile(r.AbsPath, []byte(cleaned), 0644); err != nil {
				l.Write(err)
				return cmd.PrintJSONError(fmt.Errorf("fmt %s: %w", r.Path, err))
			}
			entry.Fixed = true
		}
		entries = append(entries, entry)

		if !cmd.JSON() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", r.Path, strings.Join(entry.Issues, ", "))
			if !write {
				d := normalize.Preview(r.Content, cleaned)
				if colour {
					d = normalize.Colourise(d)
				}
				fmt.Fprint(cmd.Out(), d)
			}
		}
	}

	l.Files(len(rs)).Detail("affected", len(entries)).Write(nil)

	if cmd.JSON() {
		if err := cmd.PrintJSON(entries); err != nil {
			return err
		}
	} else if len(entries) > 0 && write {
		fmt.Fprintf(cmd.Out(), "formatted %d file(s)\n", len(entries))
	}

	// Dry run with pending changes fails so CI can gate on formatting.
	if len(entries) > 0 && !write {
		return cmd.FailCheck(c)
	}
	return nil
}
