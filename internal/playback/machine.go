package playback

import (
	"fmt"
	"time"
)

type Status int

const (
	Idle Status = iota
	Ready
	Playing
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// State is the playback position over a trace of Total steps. Generation
// identifies the currently scheduled advance; ticks carrying any other
// generation are stale.
type State struct {
	Index      int
	Total      int
	Playing    bool
	Speed      time.Duration
	Generation uint64
}

// NewState is an idle state with the given speed.
func NewState(speed time.Duration) State {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return State{Speed: speed}
}

func (s State) Status() Status {
	switch {
	case s.Total == 0:
		return Idle
	case s.Playing:
		return Playing
	}
	return Ready
}

// Last is the index of the final step, -1 for an empty trace.
func (s State) Last() int { return s.Total - 1 }

func (s State) AtEnd() bool { return s.Index >= s.Last() }

// Progress is the fraction of the trace shown so far, in (0, 1].
func (s State) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Index+1) / float64(s.Total)
}

type Action interface {
	action() string
}

type (
	// Generate replaces the trace with one of Total steps.
	Generate struct{ Total int }
	Play     struct{}
	Pause    struct{}
	Step     struct{}
	Reset    struct{}
	SetSpeed struct{ Speed time.Duration }
	// Tick is a fired auto-advance for the given generation.
	Tick struct{ Generation uint64 }
)

func (Generate) action() string { return "generate" }
func (Play) action() string     { return "play" }
func (Pause) action() string    { return "pause" }
func (Step) action() string     { return "step" }
func (Reset) action() string    { return "reset" }
func (SetSpeed) action() string { return "set-speed" }
func (Tick) action() string     { return "tick" }

// ActionName names a for logging.
func ActionName(a Action) string { return a.action() }

type EffectKind int

const (
	// Keep leaves any pending timer alone.
	Keep EffectKind = iota
	// Cancel drops the pending timer.
	Cancel
	// Schedule replaces the pending timer with one firing after Delay.
	Schedule
)

type Effect struct {
	Kind       EffectKind
	Delay      time.Duration
	Generation uint64
}

// Reduce applies a to s. It never panics and never moves Index outside
// [0, Total-1]; requests that make no sense in the current state are no-ops.
func Reduce(s State, a Action) (State, Effect) {
	switch a := a.(type) {
	case Generate:
		total := a.Total
		if total < 0 {
			total = 0
		}
		s.Index, s.Total, s.Playing = 0, total, false
		return stop(s)

	case Play:
		if s.Total == 0 {
			return s, Effect{}
		}
		if s.AtEnd() {
			s.Index = 0
		}
		s.Playing = true
		return advance(s)

	case Pause:
		s.Playing = false
		return stop(s)

	case Step:
		if s.Total == 0 || s.AtEnd() {
			return s, Effect{}
		}
		s.Index++
		if !s.Playing {
			return s, Effect{}
		}
		return advance(s)

	case Reset:
		s.Index, s.Playing = 0, false
		return stop(s)

	case SetSpeed:
		if a.Speed > 0 {
			s.Speed = a.Speed
		}
		return s, Effect{}

	case Tick:
		if !s.Playing || a.Generation != s.Generation {
			return s, Effect{}
		}
		if !s.AtEnd() {
			s.Index++
		}
		return advance(s)
	}
	return s, Effect{}
}

// advance schedules the next tick while playing, or folds back to Ready
// once the last step is shown.
func advance(s State) (State, Effect) {
	if s.AtEnd() {
		s.Playing = false
		return stop(s)
	}
	s.Generation++
	return s, Effect{Kind: Schedule, Delay: s.Speed, Generation: s.Generation}
}

func stop(s State) (State, Effect) {
	s.Generation++
	return s, Effect{Kind: Cancel}
}
