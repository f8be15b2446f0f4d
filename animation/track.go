package animation

import (
	"fmt"
	"sort"

	"github.com/npillmayer/funtext/keyframe"
)

// Track is a compiled animation. All knobs are resolved and Steps
// contain keys 0 and 100. Tracks are not modified after compilation.
type Track struct {
	Scope     Scope
	Property  string
	Steps     keyframe.Steps
	Duration  float64 // effective duration, including the sync window
	Delay     float64
	Iteration string
	Direction Direction
	Timing    Easing
	Fill      keyframe.Fill
	State     PlayState
	Offset    Offset
	Callbacks
}

// Priority is the priority of the track's scope.
func (t *Track) Priority() int {
	return t.Scope.Priority()
}

// OffsetAt returns the offset of the fragment at index.
func (t *Track) OffsetAt(index int) float64 {
	if t.Offset == nil {
		return 0
	}
	return t.Offset(index, t.Priority())
}

func (t *Track) String() string {
	return fmt.Sprintf("track(%s@%d, %gs, %s)", t.Property, t.Priority(), t.Duration, t.Steps)
}

// Groups holds the compiled tracks by scope priority.
type Groups map[int][]*Track

// Priorities returns the priorities of g in ascending order.
func (g Groups) Priorities() []int {
	pp := make([]int, 0, len(g))
	for p := range g {
		pp = append(pp, p)
	}
	sort.Ints(pp)
	return pp
}

// Tracks returns all tracks of g, ordered by priority.
func (g Groups) Tracks() []*Track {
	var tracks []*Track
	for _, p := range g.Priorities() {
		tracks = append(tracks, g[p]...)
	}
	return tracks
}

// Len counts the tracks of g.
func (g Groups) Len() int {
	n := 0
	for _, tt := range g {
		n += len(tt)
	}
	return n
}

// Defaults are the fallbacks for knobs a descriptor leaves open.
type Defaults struct {
	Delay     float64
	Iteration string
	Direction Direction
	Timing    Easing
	Fill      keyframe.Fill
	State     PlayState
	Offset    Offset
	Sync      *keyframe.Sync
}

// StandardDefaults returns the built-in defaults: no delay, a single
// linear iteration without fill, running, staggered by 0.1s per fragment.
func StandardDefaults() Defaults {
	return Defaults{
		Delay:     0,
		Iteration: "1",
		Direction: Normal,
		Timing:    Linear,
		Fill:      keyframe.FillNone,
		State:     Running,
		Offset:    Stagger(0.1),
	}
}
