package animation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/funtext/keyframe"
)

// lane is one sub-animation of a composite, placed on the composite's
// timeline.
type lane struct {
	property string
	unit     string
	def      keyframe.Value
	steps    keyframe.Steps // values are never null
	keys     []float64      // the lane's own keys, ascending
	lo, hi   float64        // the lane's window, including hold keys
}

// subDefault is the value substituted for null steps of a sub-animation.
func subDefault(property string) keyframe.Value {
	if property == "opacity" {
		return "1"
	}
	return "0"
}

// merge combines the sub-animations of a composite into a single step map
// whose values are space separated function lists, e.g.
// "translateY(10px) rotate(5deg)". It returns the steps and the duration of
// the composite, which is the latest end of any sub-animation.
func merge(kind Kind, subs []Sub, fill keyframe.Fill) (keyframe.Steps, float64) {
	seen := make(map[string]bool, len(subs))
	accepted := make([]Sub, 0, len(subs))
	lateness := 0.0
	for _, sub := range subs {
		if !kind.Accepts(sub.Property) {
			tracer().Errorf("%s animation: property %q not supported, skipped", kind, sub.Property)
			continue
		}
		if seen[sub.Property] {
			tracer().Debugf("%s animation: duplicate property %q ignored", kind, sub.Property)
			continue
		}
		seen[sub.Property] = true
		accepted = append(accepted, sub)
		if end := sub.Duration + sub.Delay; end > lateness {
			lateness = end
		}
	}
	if len(accepted) == 0 {
		return keyframe.Steps{}, 0
	}
	if lateness <= 0 {
		tracer().Debugf("%s animation has no extent, emitting a single keyframe", kind)
		values := make([]string, len(accepted))
		for i, sub := range accepted {
			values[i] = function(sub.Property, subDefault(sub.Property), sub.Unit)
		}
		return keyframe.Steps{0: keyframe.Just(keyframe.Value(strings.Join(values, " ")))}, 0
	}
	lanes := make([]*lane, len(accepted))
	frames := make(map[float64]struct{})
	for i, sub := range accepted {
		lanes[i] = place(sub, lateness, fill)
		for _, k := range lanes[i].keys {
			frames[k] = struct{}{}
		}
	}
	allFrames := make([]float64, 0, len(frames))
	for f := range frames {
		allFrames = append(allFrames, f)
	}
	sort.Float64s(allFrames)
	merged := make(keyframe.Steps, len(allFrames))
	values := make([]string, len(lanes))
	for _, f := range allFrames {
		for i, l := range lanes {
			values[i] = function(l.property, l.valueAt(f), l.unit)
		}
		merged[f] = keyframe.Just(keyframe.Value(strings.Join(values, " ")))
	}
	return merged, lateness
}

// place positions a sub-animation on a timeline of length lateness and
// pads it with boundary keys.
func place(sub Sub, lateness float64, fill keyframe.Fill) *lane {
	l := &lane{
		property: sub.Property,
		unit:     sub.Unit,
		def:      subDefault(sub.Property),
		steps:    make(keyframe.Steps),
	}
	src := keyframe.Normalize(sub.Steps)
	ratio := sub.Duration / lateness
	shift := sub.Delay / lateness * 100
	for _, k := range src.Keys() { // ascending, the highest key wins on collision
		l.steps[k*ratio+shift] = keyframe.Just(src[k].WithDefault(l.def))
	}
	lo, hi, ok := l.steps.Bounds()
	if !ok {
		lo, hi = 0, 100
		l.steps[0] = keyframe.Just(l.def)
		l.steps[100] = keyframe.Just(l.def)
	}
	first, last := l.steps[lo], l.steps[hi]
	if before := lo - boundary; before > 0 {
		l.steps[before] = holdOrDefault(first, fill.Backwards(), l.def)
		lo = before
	}
	if after := hi + boundary; after < 100 {
		l.steps[after] = holdOrDefault(last, fill.Forwards(), l.def)
		hi = after
	}
	if !l.steps.Has(0) {
		l.steps[0] = holdOrDefault(first, fill.Backwards(), l.def)
	}
	if !l.steps.Has(100) {
		l.steps[100] = holdOrDefault(last, fill.Forwards(), l.def)
	}
	l.lo, l.hi = lo, hi
	l.keys = l.steps.Keys()
	return l
}

// boundary is the distance of hold keys from a lane's window.
const boundary = 0.01

func holdOrDefault(s keyframe.Step, keep bool, def keyframe.Value) keyframe.Step {
	if keep {
		return s
	}
	return keyframe.Just(def)
}

// valueAt returns the lane's value at frame f. Outside the lane's window
// the boundary value holds; inside, missing frames are interpolated
// linearly between the nearest keys of the lane.
func (l *lane) valueAt(f float64) keyframe.Value {
	if s, ok := l.steps[f]; ok {
		return s.WithDefault(l.def)
	}
	if f < l.lo {
		return l.steps[l.lo].WithDefault(l.def)
	}
	if f > l.hi {
		return l.steps[l.hi].WithDefault(l.def)
	}
	lowerKey, upperKey := 0.0, 100.0
	lower, upper := 0.0, 0.0
	i := sort.SearchFloat64s(l.keys, f) // first key >= f
	if i > 0 {
		lowerKey = l.keys[i-1]
		lower = numeric(l.steps[lowerKey])
	}
	if i < len(l.keys) {
		upperKey = l.keys[i]
		upper = numeric(l.steps[upperKey])
	}
	if upperKey == lowerKey {
		return keyframe.Number(lower)
	}
	t := (f - lowerKey) / (upperKey - lowerKey)
	return keyframe.Number(lower + (upper-lower)*t)
}

// numeric interprets a step as a number; anything else counts as 0.
func numeric(s keyframe.Step) float64 {
	x, ok := s.WithDefault("").Float()
	if !ok {
		return 0
	}
	return x
}

func function(property string, value keyframe.Value, unit string) string {
	return fmt.Sprintf("%s(%s%s)", property, value, unit)
}
