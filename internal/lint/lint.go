// Package lint implements the rule file checks: maximum content length and
// the presence of an activation marker.
//
// A rule file passes when its content is at most Limits.MaxChars characters
// long and contains at least one of the activation markers (case-insensitive
// substring match). Each failed check produces one Violation; a file can
// fail both checks at once.
package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the maximum rule file length in characters.
const DefaultMaxChars = 6000

// DefaultMarkers are the literal substrings that count as an activation
// marker. Matching is case-insensitive.
//
// "<glob" matches the <glob>...</glob> tag form; the remaining three match
// the trigger names Windsurf shows in its rule editor.
func DefaultMarkers() []string {
	return []string{"<glob", "Always On", "Manual", "Model Decision"}
}

// Kind categorises a violation.
type Kind int

const (
	// KindLength means the content exceeds the character limit.
	KindLength Kind = iota
	// KindMarker means no activation marker was found.
	KindMarker
	// KindUnreadable means the file could not be read. The run continues;
	// the failure is reported like any other violation.
	KindUnreadable
)

// String returns the kind name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindMarker:
		return "marker"
	case KindUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Violation records a single failed check for a single file.
type Violation struct {
	Path   string `json:"path"`
	Kind   Kind   `json:"-"`
	KindID string `json:"kind"`
	// Detail holds the diagnostic line without the leading path: for length
	// violations "exceeds N chars", for marker violations "missing
	// activation marker", for unreadable files "unreadable: <error>".
	Detail string `json:"detail"`
}

// String returns the diagnostic line emitted to stderr.
func (v Violation) String() string {
	return v.Path + " " + v.Detail
}

// Limits configures the checks. Passed in explicitly so the checks can be
// run against synthetic inputs without depending on a fixed repository
// layout or process-wide state.
type Limits struct {
	// MaxChars is the maximum content length in characters (runes, not
	// bytes). Zero or negative disables the length check.
	MaxChars int
	// Markers are the accepted activation marker substrings. Empty disables
	// the marker check.
	Markers []string
}

// DefaultLimits returns the standard limits: 6000 characters and the four
// Windsurf activation markers.
func DefaultLimits() Limits {
	return Limits{MaxChars: DefaultMaxChars, Markers: DefaultMarkers()}
}

// Check applies both checks to a single rule file's content and returns the
// violations found, in check order (length before marker). The path is only
// used to label violations.
//
// Length is counted in runes to match "characters" rather than bytes;
// invalid UTF-8 sequences count as one replacement rune per invalid byte
// rather than aborting the check.
func Check(path, content string, limits Limits) []Violation {
	var vs []Violation

	if limits.MaxChars > 0 && utf8.RuneCountInString(content) > limits.MaxChars {
		vs = append(vs, Violation{
			Path:   path,
			Kind:   KindLength,
			KindID: KindLength.String(),
			Detail: fmt.Sprintf("exceeds %d chars", limits.MaxChars),
		})
	}

	if len(limits.Markers) > 0 && !hasMarker(content, limits.Markers) {
		vs = append(vs, Violation{
			Path:   path,
			Kind:   KindMarker,
			KindID: KindMarker.String(),
			Detail: "missing activation marker",
		})
	}

	return vs
}

// Unreadable records a file that could not be read.
func Unreadable(path string, err error) Violation {
	return Violation{
		Path:   path,
		Kind:   KindUnreadable,
		KindID: KindUnreadable.String(),
		Detail: "unreadable: " + err.Error(),
	}
}

// hasMarker reports whether content contains any marker, case-insensitively.
// A simple folded substring scan is all that's needed: the markers are
// literal alternatives, not patterns.
func hasMarker(content string, markers []string) bool {
	folded := strings.ToLower(content)
	for _, m := range markers {
		if strings.Contains(folded, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
