// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// validation logic while this package handles presentation concerns like
// column alignment.
package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/rulelint/internal/rules"
)

// Row pairs a rule file with its check outcome for listing.
type Row struct {
	Rule rules.Rule
	// Status is "ok" when the rule passes both checks, "fail" otherwise.
	Status string
}

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// Paths prints just rule file paths, one per line.
func Paths(w io.Writer, rows []Row) {
	for _, r := range rows {
		fmt.Fprintln(w, r.Rule.Path)
	}
}

// Long prints rule files in long format with status, trigger, size, and
// character count.
//
// Fixed-width columns come first so they align properly; the
// variable-length PATH is placed at the end where its varying width does
// not disrupt the alignment of other columns.
func Long(w io.Writer, rows []Row) {
	if len(rows) == 0 {
		return
	}

	// Find max trigger length for alignment
	maxTrigger := 7 // minimum "TRIGGER"
	for _, r := range rows {
		if len(trigger(r.Rule)) > maxTrigger {
			maxTrigger = len(trigger(r.Rule))
		}
	}

	fmt.Fprintf(w, "%-6s  %-*s  %6s  %6s  %s\n", "STATUS", maxTrigger, "TRIGGER", "CHARS", "SIZE", "PATH")

	for _, r := range rows {
		fmt.Fprintf(w, "%-6s  %-*s  %6d  %6s  %s\n",
			r.Status, maxTrigger, trigger(r.Rule), r.Rule.Chars, humanSize(r.Rule.Size), r.Rule.Path)
	}
}

// trigger returns the declared frontmatter trigger or "-" when absent.
func trigger(r rules.Rule) string {
	if r.Front.Trigger == "" {
		return "-"
	}
	return r.Front.Trigger
}
