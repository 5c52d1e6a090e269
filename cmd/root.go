/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE resolves configuration lazily - only commands
// that need it trigger extension init. This enables bootstrap commands
// (guide, version) to work even with a broken config file. The
// noConfigCommands map controls which commands skip initialisation.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/rulelint/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rulelint",
	Short: "Validator for Windsurf workspace rule files",
	Long: `Validates the markdown rule files under .windsurf/rules against two
constraints: a maximum character length and the presence of an activation
marker (glob, always-on, manual, or model-decision trigger).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Resolve config and rules directory for commands that need them
		cmdName := topLevelCmdName(cmd)
		if !noConfigCommands[cmdName] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "rulelint check", returns "check".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// errCheckFailed signals that a validation pass found violations. The
// diagnostics have already been written to stderr; Execute translates this
// into exit status 1 without printing a duplicate error.
var errCheckFailed = errors.New("check failed")

// FailCheck marks cmd as failed due to violations and returns the sentinel
// error commands should propagate from RunE.
func FailCheck(cmd *cobra.Command) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return errCheckFailed
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, and exits
// non-zero on failure: 1 for violations and for errors alike.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
