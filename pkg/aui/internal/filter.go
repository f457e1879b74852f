package internal

import (
	"path/filepath"
	"strings"
)

// ParseFilter splits a chooser filter such as "*.txt;*.md" into its glob
// patterns. Blank entries are dropped; an empty filter yields nil.
func ParseFilter(filter string) []string {
	var patterns []string
	for _, p := range strings.Split(filter, ";") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// MatchFilter reports whether the base name of path matches any pattern of
// the filter. An empty filter matches everything.
func MatchFilter(filter, path string) bool {
	patterns := ParseFilter(filter)
	if len(patterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, p := range patterns {
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// FilterExtensions returns the extensions ("txt", "md") of patterns shaped
// like "*.ext". Other patterns are skipped since native choosers filter by
// extension only.
func FilterExtensions(filter string) []string {
	var exts []string
	for _, p := range ParseFilter(filter) {
		if strings.HasPrefix(p, "*.") && !strings.ContainsAny(p[2:], "*?[") {
			exts = append(exts, p[2:])
		}
	}
	return exts
}
