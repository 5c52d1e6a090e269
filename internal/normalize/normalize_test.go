package normalize

import (
	"strings"
	"testing"
)

func TestIssues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"clean", "# Rule\n\nManual\n", nil},
		{"empty", "", nil},
		{"crlf", "line one\r\nline two\r\n", []string{"CRLF line endings"}},
		{"trailing whitespace", "line one  \nline two\n", []string{"trailing whitespace"}},
		{"trailing tab", "line\t\n", []string{"trailing whitespace"}},
		{"missing final newline", "no newline", []string{"missing final newline"}},
		{"bom", "\ufeff# Rule\n", []string{"UTF-8 byte order mark"}},
		{
			"everything at once",
			"\ufeffline \r\nlast",
			[]string{"UTF-8 byte order mark", "CRLF line endings", "trailing whitespace", "missing final newline"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Issues(tc.content)
			if len(got) != len(tc.want) {
				t.Fatalf("Issues() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Issues() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"already clean", "# Rule\n\nManual\n", "# Rule\n\nManual\n"},
		{"empty unchanged", "", ""},
		{"crlf to lf", "a\r\nb\r\n", "a\nb\n"},
		{"strip trailing", "a  \nb\t\n", "a\nb\n"},
		{"add final newline", "abc", "abc\n"},
		{"strip bom", "\ufeffabc\n", "abc\n"},
		{"crlf with trailing space", "a \r\nb", "a\nb\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanFixesAllIssues(t *testing.T) {
	dirty := "\ufeffline one \r\nline two\t\r\nlast"
	cleaned := Clean(dirty)
	if issues := Issues(cleaned); len(issues) != 0 {
		t.Errorf("Issues(Clean(dirty)) = %v, want none", issues)
	}
	// Idempotent.
	if Clean(cleaned) != cleaned {
		t.Error("Clean() is not idempotent")
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("same\n", "same\n"); got != "" {
		t.Errorf("Preview(identical) = %q, want empty", got)
	}

	got := Preview("old line\n", "new line\n")
	if !strings.Contains(got, "old") || !strings.Contains(got, "new") {
		t.Errorf("Preview() = %q, want both old and new content", got)
	}
	if !strings.Contains(got, "- ") || !strings.Contains(got, "+ ") {
		t.Errorf("Preview() = %q, want +/- markers", got)
	}
}

func TestColourise(t *testing.T) {
	d := "- removed\n+ added\n  kept\n"
	c := Colourise(d)
	if !strings.Contains(c, "\033[31m- removed\033[0m") {
		t.Errorf("Colourise() missing red delete: %q", c)
	}
	if !strings.Contains(c, "\033[32m+ added\033[0m") {
		t.Errorf("Colourise() missing green insert: %q", c)
	}
}
