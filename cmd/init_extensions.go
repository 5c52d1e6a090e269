/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, resolves the rules directory, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before configuration is resolved. The context is created
// once and shared across all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/rulelint/extension"
	"github.com/jpl-au/rulelint/internal/config"
	"github.com/jpl-au/rulelint/internal/log"
	"github.com/jpl-au/rulelint/internal/workspace"
)

// noConfigCommands lists commands that bypass automatic config resolution.
// Built dynamically from bootstrap commands plus extension-declared
// configless commands.
var noConfigCommands map[string]bool

// buildNoConfigCommands creates the set of commands that skip config loading.
//
// Why this exists: Most commands resolve configuration and the rules
// directory, but some must work regardless of config state:
//
//  1. Bootstrap commands (guide, version) - These help users learn about
//     rulelint or inspect the build. Running "rulelint guide" shouldn't fail
//     just because a .rulelint.yaml is malformed.
//
//  2. Extension-declared configless commands - Extensions can implement the
//     Configless interface to declare commands that manage their own state.
//
// When adding a new command: If it's a core bootstrap command, add it here.
// Otherwise, implement extension.Configless in your extension.
func buildNoConfigCommands() map[string]bool {
	cmds := map[string]bool{
		// Core bootstrap commands - always configless
		"guide":   true,
		"version": true,
	}

	for _, ext := range extension.All() {
		if c, ok := ext.(extension.Configless); ok {
			for _, name := range c.NoConfigCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration, resolves the rules directory, and
// injects the shared context into extensions.
//
// Why sync.Once: Config resolution walks the directory tree looking for the
// workspace root and must produce one consistent answer per process, even
// if multiple commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		root := workspace.FindRoot(".")
		rulesDir := workspace.RulesDir(Dir(), cfg.RulesDir())

		// Identify the workspace for audit logging
		log.SetWorkspace(root)

		extContext = extension.NewContext(cfg, rulesDir)

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive resolved state
		// rather than computing it themselves, keeping precedence rules in
		// one place.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noConfigCommands after all extensions are registered
		noConfigCommands = buildNoConfigCommands()
	})
}
