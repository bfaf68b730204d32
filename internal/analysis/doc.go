// Package analysis summarizes generated traces.
//
//   - [SummarizeSort]: step counts per kind and recursion depth of a merge sort
//   - [SummarizeSearch]: midpoint checks, eliminated indices and outcome of a search
//   - [WindowSeries]: size of the [low, high] window after every search step
//   - [ComparisonSeries]: merge comparisons made at each recursion level
//   - [Plot]: an ASCII chart of any series
//
// # Example
//
//	steps := trace.GenerateBinarySearchSteps(items, "Mouse", inventory.Name)
//	fmt.Println(analysis.Plot(analysis.WindowSeries(steps), "window size"))
package analysis
