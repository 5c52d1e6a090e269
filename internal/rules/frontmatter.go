// frontmatter.go parses the optional YAML frontmatter block at the top of a
// rule file.
//
// Separated from rules.go to keep file loading apart from content parsing.
// Frontmatter is informational only - listings show the declared trigger -
// and is never required: the activation checks work on the raw content, so a
// file with no frontmatter but a marker in its body still passes.

package rules

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block Windsurf places between --- delimiters at
// the top of a rule file. Unknown keys are ignored.
type Frontmatter struct {
	Trigger     string   `yaml:"trigger" json:"trigger,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Globs       GlobList `yaml:"globs" json:"globs,omitempty"`
}

// GlobList accepts both scalar and sequence YAML forms:
//
//	globs: *.ts
//	globs: [src/**, "*.md"]
type GlobList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GlobList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*g = list
	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s != "" {
			*g = []string{s}
		}
	}
	return nil
}

// ParseFrontmatter extracts the frontmatter from content. Returns the zero
// value when there is no frontmatter block, when the block is unterminated,
// or when the YAML is malformed - a broken block is treated as absent rather
// than failing the load, since frontmatter is advisory.
func ParseFrontmatter(content string) Frontmatter {
	var fm Frontmatter

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		rest, ok = strings.CutPrefix(content, "---\r\n")
		if !ok {
			return fm
		}
	}

	block, _, ok := cutClose(rest)
	if !ok {
		return fm
	}

	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return Frontmatter{}
	}
	return fm
}

// cutClose splits rest at the closing --- delimiter line.
func cutClose(rest string) (block, body string, ok bool) {
	for _, sep := range []string{"\n---\n", "\n---\r\n"} {
		if b, after, found := strings.Cut(rest, sep); found {
			return b, after, true
		}
	}
	// Closing delimiter at end of file without trailing newline.
	for _, sep := range []string{"\n---"} {
		if b, after, found := strings.Cut(rest, sep); found && strings.TrimRight(after, "\r\n ") == "" {
			return b, "", true
		}
	}
	return "", "", false
}
