// Package all imports all core rulelint extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/rulelint/extension/check"
	_ "github.com/jpl-au/rulelint/extension/core"
	_ "github.com/jpl-au/rulelint/extension/inspect"
)
