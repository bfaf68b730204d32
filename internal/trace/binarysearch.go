package trace

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/san-kum/algoviz/internal/inventory"
)

// BinarySearchSteps sorts items by field once, then yields one step per
// midpoint check and one per eliminated half until target is found or the
// window is empty. Only textual fields are searchable.
func BinarySearchSteps(items []inventory.Item, target string, field inventory.Field) iter.Seq[SearchStep] {
	return func(yield func(SearchStep) bool) {
		if len(items) == 0 || !field.Textual() || strings.TrimSpace(target) == "" {
			return
		}
		sorted := StableSort(items, field)
		low, high := 0, len(sorted)-1
		eliminated := make([]int, 0, len(sorted))

		emit := func(kind SearchKind, mid int, desc string) bool {
			return yield(SearchStep{
				Kind:        kind,
				Array:       clone(sorted),
				Low:         low,
				High:        high,
				Mid:         mid,
				Description: desc,
				Found:       kind == Found,
				Eliminated:  slices.Clone(eliminated),
			})
		}

		if !emit(Start, floorMid(low, high), fmt.Sprintf("Data sorted by %s. Searching for %q...", field, target)) {
			return
		}

		for low <= high {
			mid := floorMid(low, high)
			value := field.Text(sorted[mid])
			if value == target {
				emit(Found, mid, fmt.Sprintf("Found! %q is at index %d", target, mid))
				return
			}

			rel := "<"
			if target < value {
				rel = ">"
			}
			if !emit(Check, mid, fmt.Sprintf("Checking index %d: %q %s %q", mid, value, rel, target)) {
				return
			}

			if target < value {
				from, to := mid, high
				for i := from; i <= to; i++ {
					eliminated = append(eliminated, i)
				}
				high = mid - 1
				if !emit(EliminateRight, floorMid(low, high), fmt.Sprintf("Target is smaller, eliminating the right part (index %d-%d)", from, to)) {
					return
				}
			} else {
				from, to := low, mid
				for i := from; i <= to; i++ {
					eliminated = append(eliminated, i)
				}
				low = mid + 1
				if !emit(EliminateLeft, floorMid(low, high), fmt.Sprintf("Target is larger, eliminating the left part (index %d-%d)", from, to)) {
					return
				}
			}
		}

		emit(NotFound, -1, fmt.Sprintf("%q was not found in the data", target))
	}
}

// GenerateBinarySearchSteps collects BinarySearchSteps.
func GenerateBinarySearchSteps(items []inventory.Item, target string, field inventory.Field) []SearchStep {
	return slices.Collect(BinarySearchSteps(items, target, field))
}

// floorMid is floor((low+high)/2); an emptied window (high = low-1 = -1)
// gives -1 rather than Go's truncated 0.
func floorMid(low, high int) int {
	s := low + high
	if s < 0 {
		return (s - 1) / 2
	}
	return s / 2
}
