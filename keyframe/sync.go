package keyframe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fill is a CSS animation-fill-mode.
type Fill string

// Fill modes.
const (
	FillNone      Fill = "none"
	FillForwards  Fill = "forwards"
	FillBackwards Fill = "backwards"
	FillBoth      Fill = "both"
	FillInitial   Fill = "initial"
	FillInherit   Fill = "inherit"
)

// Backwards is true if f holds the first keyframe before the animation starts.
func (f Fill) Backwards() bool {
	return f == FillBackwards || f == FillBoth
}

// Forwards is true if f holds the last keyframe after the animation ended.
func (f Fill) Forwards() bool {
	return f == FillForwards || f == FillBoth
}

// Location is the position of an animation within its sync window, as a
// percentage of the window. Values outside [0,100] are clamped on use.
type Location float64

// Named locations.
const (
	Start  Location = 0
	Middle Location = 50
	End    Location = 100
)

// Percent returns l clamped to [0,100].
func (l Location) Percent() float64 {
	p := float64(l)
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}

// ParseLocation accepts "start", "middle", "end" or a number, optionally
// followed by '%'.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "start":
		return Start, nil
	case "middle":
		return Middle, nil
	case "end":
		return End, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return Start, fmt.Errorf("invalid sync location %q: %w", s, err)
	}
	return Location(x), nil
}

// UnmarshalText lets configuration formats use named locations.
func (l *Location) UnmarshalText(text []byte) error {
	loc, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// Sync positions an animation inside a longer, shared time window.
type Sync struct {
	Duration float64  `yaml:"duration"` // seconds
	Location Location `yaml:"location"`
}

// boundary is the distance of hold/revert keys from the remapped window.
const boundary = 0.01

// Duration returns the effective duration of an animation, i.e. the
// larger one of its own duration and the sync window.
func Duration(duration float64, sync *Sync) float64 {
	if sync != nil && sync.Duration > duration {
		return sync.Duration
	}
	return duration
}

// Remap squeezes steps of an animation lasting duration seconds into the
// window described by sync. Without a sync window, or with one not longer
// than duration, a copy of steps is returned.
//
// Keys are scaled by ratio = duration/sync.Duration and shifted by the
// window location (scaled by the same ratio). Right outside the remapped
// keys, hold keys are inserted which either repeat the boundary value
// (if fill covers that side) or revert to null. Keys 0 and 100 are
// synthesized the same way if missing. Keys falling outside of [0,100]
// are dropped; a window reaching beyond 100 loses its last steps, and
// key 100 then holds or reverts like any other edge.
func Remap(steps Steps, duration float64, sync *Sync, fill Fill) Steps {
	if sync == nil || sync.Duration <= duration {
		return steps.Clone()
	}
	if len(steps) == 0 {
		return Steps{}.EnsureEdges()
	}
	ratio := duration / sync.Duration
	location := sync.Location.Percent() * ratio
	tracer().Debugf("remapping steps with ratio %.4f at location %.4f", ratio, location)
	remapped := make(Steps, len(steps)+4)
	for _, k := range steps.Keys() { // ascending, the highest key wins on collision
		remapped[k*ratio+location] = steps[k]
	}
	lo, hi, _ := remapped.Bounds()
	first, last := remapped[lo], remapped[hi]
	remapped[lo-boundary] = hold(first, fill.Backwards())
	remapped[hi+boundary] = hold(last, fill.Forwards())
	if !remapped.Has(0) {
		remapped[0] = hold(first, fill.Backwards())
	}
	if !remapped.Has(100) {
		remapped[100] = hold(last, fill.Forwards())
	}
	for k := range remapped {
		if k < 0 || k > 100 {
			delete(remapped, k)
		}
	}
	return remapped
}

func hold(s Step, keep bool) Step {
	if keep {
		return s
	}
	return Null()
}
