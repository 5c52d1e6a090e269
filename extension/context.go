// context.go defines the Context interface for extension access to shared state.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals.
//
// Design: Context uses an interface to enable testing with mock
// implementations. Extensions receive Context during Init(), not at
// construction, to support the two-phase initialisation pattern where
// extensions register before configuration is resolved.

package extension

import (
	"github.com/jpl-au/rulelint/internal/config"
)

// Context provides extensions controlled access to shared rulelint state.
// Extensions receive this during initialisation.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// RulesDir returns the resolved rules directory for this invocation,
	// with --dir/RULELINT_DIR and config precedence already applied.
	RulesDir() string
}

// extContext implements Context.
type extContext struct {
	cfg      *config.Config
	rulesDir string
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config, rulesDir string) Context {
	return &extContext{
		cfg:      cfg,
		rulesDir: rulesDir,
	}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

// RulesDir returns the resolved rules directory.
func (c *extContext) RulesDir() string {
	return c.rulesDir
}
