package utils

import "strings"

const pathSegmentSeparator = "/"

// NormalizePathLine converts one raw input line into a relative slash-delimited path.
// Trailing separators are trimmed, a prefix equal to the working directory is
// stripped, and leading separators are removed. The result may be empty, in which
// case the line carries no path and should be dropped.
func NormalizePathLine(rawLine string, workingDirectory string) string {
	trimmedPath := strings.TrimRight(rawLine, pathSegmentSeparator)
	if workingDirectory != "" {
		trimmedPath = strings.TrimPrefix(trimmedPath, workingDirectory)
	}
	return strings.TrimLeft(trimmedPath, pathSegmentSeparator)
}

// SplitPathSegments splits a slash-delimited path into its non-empty segments.
// Repeated separators collapse instead of producing empty segments.
func SplitPathSegments(pathValue string) []string {
	var segments []string
	for _, segment := range strings.Split(pathValue, pathSegmentSeparator) {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}
