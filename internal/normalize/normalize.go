// Package normalize detects and repairs mechanical hygiene issues in rule
// files: CRLF line endings, trailing whitespace, a UTF-8 byte order mark,
// and a missing final newline.
//
// None of these affect whether a rule activates, but they inflate the
// character count and churn diffs, so "rulelint fmt" offers to clean them.
// The checks themselves never rewrite files; only fmt --write does.
package normalize

import "strings"

const bom = "\ufeff"

// Issues returns human-readable descriptions of the hygiene problems found
// in content, in a fixed order. An empty slice means content is clean.
func Issues(content string) []string {
	var out []string
	if strings.HasPrefix(content, bom) {
		out = append(out, "UTF-8 byte order mark")
	}
	if strings.Contains(content, "\r\n") {
		out = append(out, "CRLF line endings")
	}
	if hasTrailingSpace(content) {
		out = append(out, "trailing whitespace")
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		out = append(out, "missing final newline")
	}
	return out
}

// Clean returns content with all hygiene issues repaired. Clean content is
// returned unchanged, so Clean(c) == c is the "already clean" test.
func Clean(content string) string {
	if content == "" {
		return content
	}

	s := strings.TrimPrefix(content, bom)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")

	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// hasTrailingSpace reports whether any line ends in spaces or tabs. CR is
// stripped first so CRLF content doesn't flag every line.
func hasTrailingSpace(content string) bool {
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.HasSuffix(l, " ") || strings.HasSuffix(l, "\t") {
			return true
		}
	}
	return false
}
