package trace

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/san-kum/algoviz/internal/inventory"
)

// MergeSortSteps yields the merge sort trace of items ordered by field: an
// initial step, a divide step before each recursion, a compare step per
// inspected pair, a merge step per merge and a final sorted step.
func MergeSortSteps(items []inventory.Item, field inventory.Field) iter.Seq[SortStep] {
	return func(yield func(SortStep) bool) {
		if len(items) == 0 {
			return
		}
		input := clone(items)
		if !yield(SortStep{
			Kind:        Initial,
			Arrays:      [][]inventory.Item{clone(input)},
			Description: "Initial array before sorting",
		}) {
			return
		}
		t := sortTracer{field: field, yield: yield}
		sorted, ok := t.sort(input, 0)
		if !ok {
			return
		}
		yield(SortStep{
			Kind:        Sorted,
			Arrays:      [][]inventory.Item{clone(sorted)},
			Description: "Sorting complete",
		})
	}
}

// GenerateMergeSortSteps collects MergeSortSteps.
func GenerateMergeSortSteps(items []inventory.Item, field inventory.Field) []SortStep {
	return slices.Collect(MergeSortSteps(items, field))
}

// StableSort returns a sorted copy of items using the same merge as the
// traced sort. Equal keys keep their input order.
func StableSort(items []inventory.Item, field inventory.Field) []inventory.Item {
	if len(items) <= 1 {
		return clone(items)
	}
	mid := len(items) / 2
	left := StableSort(items[:mid], field)
	right := StableSort(items[mid:], field)
	merged, _ := merge(left, right, field, nil)
	return merged
}

type sortTracer struct {
	field inventory.Field
	yield func(SortStep) bool
}

// sort returns false once the consumer stops iterating.
func (t sortTracer) sort(array []inventory.Item, level int) ([]inventory.Item, bool) {
	if len(array) <= 1 {
		return array, true
	}
	mid := len(array) / 2
	left, right := clone(array[:mid]), clone(array[mid:])
	if !t.yield(SortStep{
		Kind:        Divide,
		Arrays:      [][]inventory.Item{clone(left), clone(right)},
		Description: fmt.Sprintf("Dividing the array into two parts: %s and %s", list(left), list(right)),
		Level:       level,
	}) {
		return nil, false
	}

	sortedLeft, ok := t.sort(left, level+1)
	if !ok {
		return nil, false
	}
	sortedRight, ok := t.sort(right, level+1)
	if !ok {
		return nil, false
	}

	merged, ok := merge(sortedLeft, sortedRight, t.field, func(i, j int) bool {
		return t.yield(SortStep{
			Kind:   Compare,
			Arrays: [][]inventory.Item{clone(sortedLeft), clone(sortedRight)},
			Description: fmt.Sprintf("Comparing %s (%s) with %s (%s)",
				sortedLeft[i].Name, t.field.Format(sortedLeft[i]),
				sortedRight[j].Name, t.field.Format(sortedRight[j])),
			Comparing: &[2]int{i, j},
			Level:     level,
		})
	})
	if !ok {
		return nil, false
	}
	if !t.yield(SortStep{
		Kind:        Merge,
		Arrays:      [][]inventory.Item{clone(merged)},
		Description: "Merge result: " + list(merged),
		Level:       level,
	}) {
		return nil, false
	}
	return merged, true
}

// merge combines two sorted runs, taking from left on ties. visit, when
// set, runs before every comparison and aborts the merge by returning false.
func merge(left, right []inventory.Item, field inventory.Field, visit func(i, j int) bool) ([]inventory.Item, bool) {
	result := make([]inventory.Item, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if visit != nil && !visit(i, j) {
			return nil, false
		}
		if field.Compare(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result, true
}

func list(items []inventory.Item) string {
	return "[" + strings.Join(inventory.Names(items), ", ") + "]"
}
