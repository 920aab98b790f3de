package model

import (
	"slices"
	"sort"
)

// OrderForDisplay returns the render order: items sorted by priority rank
// within each depth level only. Items at differing depths compare as equal,
// so the stable sort keeps their original relative order and the contiguous
// descendant runs Toggle relies on stay intact. Pure; the input is not
// mutated.
func OrderForDisplay(items []Item) []Item {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return false
		}
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}
