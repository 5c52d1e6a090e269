// watch.go implements the "rulelint watch" command for continuous validation.
//
// Separated from check.go because watch adds lifecycle concerns - signal
// handling, the fsnotify watcher, rerun-on-change - on top of the same
// validation pass. Each rerun revalidates the whole directory: the set is
// small and a full pass keeps the output self-consistent when one edit
// touches several files.

package check

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/jpl-au/rulelint/cmd"
	"github.com/jpl-au/rulelint/internal/lint"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/watch"
	"github.com/spf13/cobra"
)

func (e *Extension) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Validate rule files and re-run on changes",
		Long: `Run the validation pass, then watch the rules directory and re-run it
whenever a rule file changes. Runs until interrupted (ctrl-c).

Unlike check, the rules directory must exist: there is nothing to watch
otherwise.`,
		Args: cobra.NoArgs,
		RunE: e.runWatch,
	}
}

func (e *Extension) runWatch(c *cobra.Command, _ []string) error {
	dir := e.ctx.RulesDir()
	limits := e.ctx.Config().LintLimits()

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Event("check:watch", "watch").Root(dir).Write(fmt.Errorf("rules directory does not exist"))
		return cmd.PrintJSONError(fmt.Errorf("watch: rules directory does not exist: %s", dir))
	}

	// Reruns happen on the watcher goroutine while the final count below is
	// read on this one, so the counter must be atomic.
	var runs atomic.Int64
	rerun := func(trigger string) {
		runs.Add(1)
		report, err := lint.Run(dir, limits)
		l := log.Event("check:watch", "check").Root(dir)
		if trigger != "" {
			l.Detail("trigger", trigger)
		}
		if err != nil {
			l.Write(err)
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		l.Files(report.Files).Violations(len(report.Violations)).Write(nil)

		report.Print(os.Stderr)
		if report.Failed() {
			fmt.Fprintf(cmd.Out(), "fail: %d violation(s) in %d file(s)\n", len(report.Violations), report.Files)
		} else {
			fmt.Fprintf(cmd.Out(), "ok: %d file(s) checked\n", report.Files)
		}
	}

	rerun("")

	w, err := watch.New()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("watch: %w", err))
	}
	defer w.Stop()

	if err := w.Watch(dir, func(path string) {
		rerun(path)
	}); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("watch %s: %w", dir, err))
	}

	fmt.Fprintf(cmd.Out(), "watching %s (ctrl-c to exit)\n", dir)

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Event("check:watch", "stop").Root(dir).Detail("runs", runs.Load()).Write(nil)
	return nil
}
