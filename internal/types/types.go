// Package types defines shared constants and data structures used across the pathtree tool.
package types

import "fmt"

// SortOrder selects how sibling entries are ordered before rendering.
type SortOrder string

const (
	// SortNone keeps siblings in the order their paths were first inserted.
	SortNone SortOrder = "none"
	// SortByName orders siblings alphabetically by segment name.
	SortByName SortOrder = "name"
	// SortByType orders directories before files, then by extension and name.
	SortByType SortOrder = "type"
)

// ParseSortOrder converts a textual sort selector into a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(value) {
	case SortNone, SortByName, SortByType:
		return SortOrder(value), nil
	default:
		return SortNone, fmt.Errorf("invalid sort order %q (expected none, name, or type)", value)
	}
}

// Statistics aggregates counts collected while building a tree from input lines.
type Statistics struct {
	// Files is the number of leaf entries in the built tree.
	Files int
	// Directories is the number of non-leaf entries in the built tree.
	Directories int
	// Excluded is the number of input lines dropped by exclusion patterns.
	Excluded int
}
