package walker

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names never descended into.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".venv",
	".idea",
	".vscode",
}

// shouldExcludeDir reports whether a directory subtree is skipped outright.
func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches any include pattern. An
// empty pattern list includes every page.
func MatchesInclude(relPath string, patterns []string) bool {
	return len(patterns) == 0 || matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches any exclude pattern.
func MatchesExclude(relPath string, patterns []string) bool {
	return len(patterns) > 0 && matchesAny(relPath, patterns)
}

// ValidatePatterns returns an error naming the first malformed glob.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// matchesAny checks relPath, and then its base name, against each pattern
// so that "*.md" style patterns work at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
