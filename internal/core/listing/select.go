package listing

import (
	"slices"
	"strings"

	"github.com/aki/dircontents/internal/core/entry"
)

// Select filters and orders entries for display. The input slice is not
// modified.
//
// Reverse only applies to sorted output: with SortNatural the enumeration
// order is kept as is.
func Select(entries []entry.Entry, opts Options) []entry.Entry {
	selected := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !opts.ShowHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		selected = append(selected, e)
	}

	switch opts.Sort {
	case SortNatural:
	case SortReversed:
		sortByPath(selected)
		slices.Reverse(selected)
	default:
		sortByPath(selected)
	}
	return selected
}

func sortByPath(entries []entry.Entry) {
	slices.SortStableFunc(entries, func(a, b entry.Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
}
