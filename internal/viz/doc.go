// Package viz is the terminal front-end built on Bubble Tea.
//
// [App] has three views:
//
//   - Items: the dataset as a table, with an add form, delete and restore
//   - Merge Sort: the sort trace rendered as item cards, one frame per step
//   - Binary Search: the search trace with its live window and eliminated cards
//
// Each trace view owns a playback.Controller; its published states arrive
// as messages, so auto-advance never blocks the event loop. Card colouring
// is decided by [SortCardState] and [SearchCardState], which are pure.
//
// # Key Bindings
//
//	tab     - Next view
//	space   - Play/Pause
//	n, →    - Step forward
//	r       - Reset to the first step
//	s       - Cycle speed (0.5x, 1x, 2x, 4x)
//	f       - Cycle sort or search field
//	/       - Edit the search target
//	a, d, R - Add, delete, restore items
//	t       - Cycle themes
//	?       - Full help
package viz
