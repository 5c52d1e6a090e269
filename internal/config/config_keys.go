// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the "rulelint config" command. config.go focuses on
// YAML structure and loading; this file handles access by string keys
// (e.g., "limits.max_chars").

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"rules.dir",
		"limits.max_chars",
		"markers",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "rules.dir":
		return c.RulesDir(), nil
	case "limits.max_chars":
		return strconv.Itoa(c.MaxChars()), nil
	case "markers":
		return strings.Join(c.MarkerList(), ","), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. Markers are given as a
// comma-separated list.
func (c *Config) Set(key, value string) error {
	switch key {
	case "rules.dir":
		if value == "" {
			return fmt.Errorf("%w: rules.dir must not be empty", ErrInvalidValue)
		}
		c.Rules.Dir = value
	case "limits.max_chars":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxChars || n > MaxMaxChars {
			return fmt.Errorf("%w: limits.max_chars must be an integer between %d and %d",
				ErrInvalidValue, MinMaxChars, MaxMaxChars)
		}
		c.Limits.MaxChars = &n
	case "markers":
		var markers []string
		for _, m := range strings.Split(value, ",") {
			m = strings.TrimSpace(m)
			if m == "" {
				return fmt.Errorf("%w: markers must be a comma-separated list of non-empty strings", ErrInvalidValue)
			}
			markers = append(markers, m)
		}
		c.Markers = markers
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"rules.dir":        c.RulesDir(),
		"limits.max_chars": strconv.Itoa(c.MaxChars()),
		"markers":          strings.Join(c.MarkerList(), ","),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "rules.dir":
		return c.Rules.Dir != ""
	case "limits.max_chars":
		return c.Limits.MaxChars != nil
	case "markers":
		return len(c.Markers) > 0
	default:
		return false
	}
}
