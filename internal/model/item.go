package model

// Depth bounds for nested items: 0 root, 1 child, 2 grandchild.
const (
	DepthRoot = 0
	DepthMax  = 2
)

// Priority tags an item. Zero value is Normal.
type Priority int

const (
	Normal Priority = iota
	Low
	Urgent
	Emergency
)

// cycle is the order Raise/Lower walk through, wrapping at both ends.
var cycle = [...]Priority{Low, Normal, Urgent, Emergency}

// Rank is the display sort key: Emergency first, Low last.
func (p Priority) Rank() int {
	switch p {
	case Emergency:
		return 0
	case Urgent:
		return 1
	case Normal:
		return 2
	case Low:
		return 3
	default:
		return 2
	}
}

// Label returns the fixed Korean display label.
func (p Priority) Label() string {
	switch p {
	case Emergency:
		return "비상!"
	case Urgent:
		return "긴급"
	case Low:
		return "여유"
	default:
		return "보통"
	}
}

// Color returns the terminal color used for the priority dot and label.
func (p Priority) Color() string {
	switch p {
	case Emergency:
		return "9" // red
	case Urgent:
		return "214" // orange
	case Low:
		return "42" // green
	default:
		return "12" // blue
	}
}

func (p Priority) String() string { return p.Label() }

// Raise steps one position forward in the cycle, wrapping from Emergency
// back to Low.
func (p Priority) Raise() Priority {
	for i, c := range cycle {
		if c == p {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return Normal
}

// Lower steps one position backward in the cycle, wrapping from Low to
// Emergency.
func (p Priority) Lower() Priority {
	for i, c := range cycle {
		if c == p {
			return cycle[(i+len(cycle)-1)%len(cycle)]
		}
	}
	return Normal
}

// Item is the domain model for a todo entry. The item sequence encodes the
// tree: an item at depth d belongs to the nearest preceding item at depth
// d-1, and its descendants are the contiguous run of following items with
// depth greater than d.
type Item struct {
	ID        string
	Text      string
	Completed bool
	Depth     int
	Priority  Priority
}

// ClampDepth forces d into the valid [DepthRoot, DepthMax] range.
func ClampDepth(d int) int {
	if d < DepthRoot {
		return DepthRoot
	}
	if d > DepthMax {
		return DepthMax
	}
	return d
}
