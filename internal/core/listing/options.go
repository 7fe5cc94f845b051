// Package listing turns directory entries into a colorized, column-aligned
// rendering. It covers filtering and ordering, size formatting, column
// layout and the per-directory orchestration.
package listing

import "github.com/aki/dircontents/internal/core/entry"

// SortOrder selects how entries are ordered
type SortOrder int

const (
	// SortLexicographic orders by full path, comparing bytes
	SortLexicographic SortOrder = iota
	// SortNatural keeps the order the filesystem enumerated entries in
	SortNatural
	// SortReversed is SortLexicographic reversed
	SortReversed
)

func (s SortOrder) String() string {
	switch s {
	case SortNatural:
		return "natural"
	case SortReversed:
		return "reversed"
	default:
		return "lexicographic"
	}
}

// SizeBase is the divisor between human-readable size units
type SizeBase uint64

const (
	// Base1024 makes 1 kB equal 1024 B
	Base1024 SizeBase = 1024
	// Base1000 makes 1 kB equal 1000 B
	Base1000 SizeBase = 1000
)

// Options configures one rendering pass. It is built once and never
// modified while rendering.
type Options struct {
	ShowHidden bool
	Sort       SortOrder
	ShowSize   bool
	// HumanReadable and SizeBase only apply when ShowSize is set
	HumanReadable bool
	SizeBase      SizeBase
	Links         entry.LinkPolicy
}

// DefaultOptions returns sorted output without hidden files or sizes
func DefaultOptions() Options {
	return Options{
		Sort:     SortLexicographic,
		SizeBase: Base1024,
		Links:    entry.LinkAsSymlink,
	}
}
