// Package guide provides embedded documentation for rulelint.
// Guides are compiled into the binary so they are always available,
// whether read by a human in a terminal or loaded into an LLM context.
package guide

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var guides embed.FS

// Get returns the content of a guide by name. An empty name returns the
// main guide. The ".md" extension is optional.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	name = strings.TrimSuffix(name, ".md")

	data, err := guides.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("guide %q not found", name)
	}
	return string(data), nil
}

// List returns the names of all embedded guides, sorted. The main guide
// is reported as "guide".
func List() ([]string, error) {
	entries, err := guides.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
