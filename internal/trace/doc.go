// Package trace generates replayable step traces for merge sort and binary
// search over inventory items.
//
// A trace is an ordered, finite sequence of immutable snapshots, one per
// frame of a visualization:
//
//   - [SortStep]: produced by [MergeSortSteps] / [GenerateMergeSortSteps]
//   - [SearchStep]: produced by [BinarySearchSteps] / [GenerateBinarySearchSteps]
//   - [StableSort]: the merge sort without steps, used to prepare a search
//
// # Example
//
//	steps := trace.GenerateMergeSortSteps(ds.Items(), inventory.Name)
//	last := steps[len(steps)-1] // Kind == trace.Sorted
//
// The generators are pure: the same items and parameters always yield the
// same steps, and every step owns copies of the items it shows. The
// iterator forms yield lazily and stop as soon as the consumer does.
//
// # Empty Traces
//
// An empty dataset, a blank search target or a non-textual search field
// produce no steps at all. Callers treat a zero-length trace as "nothing to
// show" rather than as an error.
package trace
