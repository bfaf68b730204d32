package trace

import "github.com/san-kum/algoviz/internal/inventory"

type SortKind string

const (
	Initial SortKind = "initial"
	Divide  SortKind = "divide"
	Compare SortKind = "compare"
	Merge   SortKind = "merge"
	Sorted  SortKind = "sorted"
)

type SearchKind string

const (
	Start          SearchKind = "start"
	Check          SearchKind = "check"
	EliminateRight SearchKind = "eliminate-right"
	EliminateLeft  SearchKind = "eliminate-left"
	Found          SearchKind = "found"
	NotFound       SearchKind = "not-found"
)

// SortStep is one frame of a merge sort trace. Arrays holds one sequence
// (initial, merge result, sorted) or two (divide, compare).
type SortStep struct {
	Kind        SortKind           `json:"kind"`
	Arrays      [][]inventory.Item `json:"arrays"`
	Description string             `json:"description"`
	// Comparing indexes Arrays[0] and Arrays[1]; nil outside compare steps.
	Comparing *[2]int `json:"comparing,omitempty"`
	Level     int     `json:"level"`
}

// SearchStep is one frame of a binary search trace. Mid is -1 on the
// not-found step. Eliminated only ever grows along a trace.
type SearchStep struct {
	Kind        SearchKind       `json:"kind"`
	Array       []inventory.Item `json:"array"`
	Low         int              `json:"low"`
	High        int              `json:"high"`
	Mid         int              `json:"mid"`
	Description string           `json:"description"`
	Found       bool             `json:"found,omitempty"`
	Eliminated  []int            `json:"eliminated"`
}

// IsEliminated reports whether index i has been ruled out by this step.
func (s SearchStep) IsEliminated(i int) bool {
	for _, e := range s.Eliminated {
		if e == i {
			return true
		}
	}
	return false
}

// InRange reports whether i lies inside the current [Low, High] window.
func (s SearchStep) InRange(i int) bool { return i >= s.Low && i <= s.High }

func clone(items []inventory.Item) []inventory.Item {
	return append(make([]inventory.Item, 0, len(items)), items...)
}
