package model

import "slices"

// Toggle flips the completed flag of the item with the given id and
// propagates the change through the tree encoded by the sequence. The input
// slice is never mutated; callers get a fresh sequence back. An unknown id
// is a no-op and returns the input unchanged.
//
// Propagation has two halves:
//
//  1. Downward: completing an item force-completes its entire descendant
//     run. Un-completing an item leaves descendants alone. The asymmetry is
//     intentional product behavior, not an oversight.
//  2. Upward: a single bottom-up pass recomputes every parent from its
//     direct children. The sequence is a depth-first pre-order flattening,
//     so reverse index order sees grandchild changes before the child they
//     roll up into.
func Toggle(items []Item, id string) []Item {
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}

	out := slices.Clone(items)
	out[idx].Completed = !out[idx].Completed

	if out[idx].Completed {
		for j := idx + 1; j < len(out) && out[j].Depth > out[idx].Depth; j++ {
			out[j].Completed = true
		}
	}

	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Depth >= DepthMax {
			continue
		}
		kids := directChildren(out, i)
		if len(kids) == 0 {
			continue
		}
		all := true
		for _, k := range kids {
			if !out[k].Completed {
				all = false
				break
			}
		}
		if all && !out[i].Completed {
			out[i].Completed = true
		}
		if !all && out[i].Completed {
			out[i].Completed = false
		}
	}

	return out
}

// directChildren returns the indexes of the items directly under items[i]:
// the contiguous run immediately following i at exactly depth+1. Deeper
// descendants inside the run are skipped; the scan stops at the first item
// at the parent's depth or shallower.
func directChildren(items []Item, i int) []int {
	var kids []int
	want := items[i].Depth + 1
	for j := i + 1; j < len(items) && items[j].Depth > items[i].Depth; j++ {
		if items[j].Depth == want {
			kids = append(kids, j)
		}
	}
	return kids
}
