// Package match evaluates path strings against exclude and include pattern lists.
//
// A pattern containing glob metacharacters matches when the glob matches the
// whole path or any single slash-delimited segment of it, so a pattern such as
// "cache/*" or "fish_variables*" fires regardless of where the excluded name
// sits in a longer path. Patterns without metacharacters match as substrings.
package match

import (
	"path/filepath"
	"strings"
)

const (
	globMetacharacters   = "*?["
	pathSegmentSeparator = "/"
)

// Matcher holds the ordered exclude and include pattern collections. Include
// patterns take absolute precedence: one matching include pattern exempts a
// path from every exclude pattern.
type Matcher struct {
	excludePatterns []string
	includePatterns []string
}

// NewMatcher constructs a Matcher over the given pattern collections.
func NewMatcher(excludePatterns []string, includePatterns []string) *Matcher {
	return &Matcher{
		excludePatterns: excludePatterns,
		includePatterns: includePatterns,
	}
}

// IsExcluded reports whether any exclude pattern matches the path.
func (matcher *Matcher) IsExcluded(pathValue string) bool {
	return matchesAny(pathValue, matcher.excludePatterns)
}

// IsIncluded reports whether any include pattern matches the path.
func (matcher *Matcher) IsIncluded(pathValue string) bool {
	return matchesAny(pathValue, matcher.includePatterns)
}

// ShouldExclude reports whether the path is excluded and not exempted by an
// include pattern.
func (matcher *Matcher) ShouldExclude(pathValue string) bool {
	return matcher.IsExcluded(pathValue) && !matcher.IsIncluded(pathValue)
}

func matchesAny(pathValue string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchesPattern(pathValue, pattern) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether the path matches a single pattern. A malformed
// glob degrades to substring matching instead of failing the operation.
func MatchesPattern(pathValue string, pattern string) bool {
	if strings.ContainsAny(pattern, globMetacharacters) {
		matched, matchError := filepath.Match(pattern, pathValue)
		if matchError != nil {
			return strings.Contains(pathValue, pattern)
		}
		if matched {
			return true
		}
		for _, segment := range strings.Split(pathValue, pathSegmentSeparator) {
			segmentMatched, segmentMatchError := filepath.Match(pattern, segment)
			if segmentMatchError != nil {
				return strings.Contains(pathValue, pattern)
			}
			if segmentMatched {
				return true
			}
		}
		return false
	}
	return strings.Contains(pathValue, pattern)
}
