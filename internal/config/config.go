// Package config provides reading and writing of rulelint configuration.
// Supports both global (~/.rulelint/config.yaml) and local (.rulelint.yaml
// at the workspace root).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/rulelint/internal/lint"
	"github.com/jpl-au/rulelint/internal/workspace"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.rulelint/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is workspace-specific config in .rulelint.yaml
	ScopeLocal
)

// Rules holds rule discovery configuration.
type Rules struct {
	// Dir is the rules directory relative to the workspace root.
	Dir string `yaml:"dir,omitempty"`
}

// Limits holds check threshold configuration.
type Limits struct {
	MaxChars *int `yaml:"max_chars,omitempty"`
}

// Validation bounds for configuration values.
const (
	MinMaxChars = 1
	MaxMaxChars = 1_000_000 // far beyond any sane rule file
)

// Config contains configuration for rulelint.
type Config struct {
	Rules  Rules  `yaml:"rules,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
	// Markers overrides the accepted activation marker substrings.
	Markers []string `yaml:"markers,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxChars != nil {
		v := *c.Limits.MaxChars
		if v < MinMaxChars || v > MaxMaxChars {
			return fmt.Errorf("%w: max_chars must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxChars, MaxMaxChars, v)
		}
	}
	for _, m := range c.Markers {
		if m == "" {
			return fmt.Errorf("%w: markers must not contain empty strings", ErrInvalidValue)
		}
	}
	return nil
}

// RulesDir returns the configured rules directory relative to the workspace
// root (defaults to .windsurf/rules).
func (c *Config) RulesDir() string {
	if c.Rules.Dir == "" {
		return filepath.ToSlash(workspace.DefaultRulesDir)
	}
	return c.Rules.Dir
}

// MaxChars returns the maximum rule file length in characters (defaults to 6000).
func (c *Config) MaxChars() int {
	if c.Limits.MaxChars == nil {
		return lint.DefaultMaxChars
	}
	return *c.Limits.MaxChars
}

// MarkerList returns the accepted activation markers, defaulting to the
// standard Windsurf set.
func (c *Config) MarkerList() []string {
	if len(c.Markers) == 0 {
		return lint.DefaultMarkers()
	}
	return c.Markers
}

// LintLimits returns the check limits derived from this configuration.
func (c *Config) LintLimits() lint.Limits {
	return lint.Limits{MaxChars: c.MaxChars(), Markers: c.MarkerList()}
}

// LocalPath returns the path to the local (workspace) config file.
func LocalPath() string {
	return filepath.Join(workspace.FindRoot("."), ".rulelint.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.rulelint/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rulelint", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
