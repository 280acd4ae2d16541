// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NormalizePattern turns free-text filter input into a glob pattern.
// Whitespace is trimmed; empty input normalizes to "" (match everything).
// Input without glob metacharacters (*, ?, [, ]) is wrapped as "*text*" so
// plain text behaves as a substring filter.
func NormalizePattern(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "*?[]") {
		return "*" + trimmed + "*"
	}
	return trimmed
}

// MatchesPattern reports whether candidate matches the normalized form of
// pattern. Matching covers the whole candidate and is case-sensitive, in
// line with the host's case-sensitive identifiers. A pattern that fails to
// compile as a glob falls back to a literal substring check.
func MatchesPattern(pattern, candidate string) bool {
	normalized := NormalizePattern(pattern)
	if normalized == "" {
		return true
	}
	matched, err := doublestar.Match(normalized, candidate)
	if err != nil {
		return strings.Contains(candidate, strings.TrimSpace(pattern))
	}
	return matched
}
