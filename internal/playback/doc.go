// Package playback drives step-by-step and timed advancement through a
// generated trace.
//
// The package is split in two layers:
//
//   - [Reduce]: a pure transition function over [State] and [Action]
//     returning the next state and the timer [Effect] to apply
//   - [Controller]: owns one State, at most one pending timer and an event
//     loop goroutine that applies actions in order
//
// A controller only knows how many steps the trace has; the steps
// themselves stay with the caller.
//
// # Example
//
//	c := playback.NewController("merge-sort")
//	defer c.Close()
//	c.Generate(len(steps))
//	c.Play()
//	for st := range c.Updates() {
//	    render(steps[st.Index])
//	}
//
// # Thread Safety
//
// Controller methods may be called from any goroutine; they are serialized
// through the controller's loop and return the state after the action.
package playback
