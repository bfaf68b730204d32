package playback

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// Speeds are the auto-advance intervals offered to users, slowest first.
var Speeds = []time.Duration{
	2000 * time.Millisecond,
	1000 * time.Millisecond,
	500 * time.Millisecond,
	250 * time.Millisecond,
}

const DefaultSpeed = 1000 * time.Millisecond

var ErrUnknownSpeed = errors.New("playback: speed is not one of 2000, 1000, 500, 250 ms")

// ParseSpeed maps a millisecond value onto one of Speeds.
func ParseSpeed(ms int) (time.Duration, error) {
	d := time.Duration(ms) * time.Millisecond
	if !slices.Contains(Speeds, d) {
		return 0, errors.Wrapf(ErrUnknownSpeed, "got %d", ms)
	}
	return d, nil
}

// NextSpeed cycles through Speeds; an unknown speed restarts at the first.
func NextSpeed(d time.Duration) time.Duration {
	i := slices.Index(Speeds, d)
	return Speeds[(i+1)%len(Speeds)]
}

// SpeedLabel renders d as a multiplier of DefaultSpeed, e.g. "2x".
func SpeedLabel(d time.Duration) string {
	switch d {
	case 2000 * time.Millisecond:
		return "0.5x"
	case 1000 * time.Millisecond:
		return "1x"
	case 500 * time.Millisecond:
		return "2x"
	case 250 * time.Millisecond:
		return "4x"
	}
	return d.String()
}
