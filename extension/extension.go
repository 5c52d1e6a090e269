// Package extension provides the plugin architecture for rulelint.
// Extensions encapsulate related commands and register at init time,
// enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for rulelint extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared context before their first
// command runs. Extensions that only need flag state can skip this.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Configless is an optional interface for extensions with commands that
// don't require configuration resolution. Commands returned by
// NoConfigCommands() will not trigger config loading in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that must work in an empty directory
// 2. Commands that display static information (guide, version)
type Configless interface {
	NoConfigCommands() []string
}

// Common flag names shared across extensions.
const (
	FlagLocal = "local"
	FlagWrite = "write"
	FlagLong  = "long"
)
