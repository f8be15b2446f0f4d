package preview

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[animation.Easing]ease.TweenFunc{
	animation.Linear:    ease.Linear,
	animation.Ease:      ease.InOutSine,
	animation.EaseIn:    ease.InQuad,
	animation.EaseOut:   ease.OutQuad,
	animation.EaseInOut: ease.InOutQuad,
	animation.StepStart: stepStart,
	animation.StepEnd:   stepEnd,
}

// Easing returns the tween function for a CSS timing function. Unknown
// timing functions are linear.
func Easing(e animation.Easing) ease.TweenFunc {
	if fn, ok := easings[e]; ok {
		return fn
	}
	tracer().Debugf("no easing for timing function %q, using linear", e)
	return ease.Linear
}

func stepStart(t, b, c, d float32) float32 {
	if t > 0 {
		return b + c
	}
	return b
}

func stepEnd(t, b, c, d float32) float32 {
	if t < d {
		return b
	}
	return b + c
}

// Iterations parses an iteration count. "infinite" is +Inf; malformed or
// negative counts are 1.
func Iterations(iteration string) float64 {
	iteration = strings.TrimSpace(iteration)
	if iteration == animation.Infinite {
		return math.Inf(1)
	}
	n, err := strconv.ParseFloat(iteration, 64)
	if err != nil || n < 0 || math.IsNaN(n) {
		return 1
	}
	return n
}

// End returns the point in time at which the fragment at index finishes
// animating, or +Inf for infinite animations.
func End(tr *animation.Track, index int) float64 {
	return tr.Delay + tr.OffsetAt(index) + tr.Duration*Iterations(tr.Iteration)
}

// Sample returns the value of tr for the fragment at index, t seconds
// after the animation has been started. A null step means the animation
// does not affect the property at that time.
func Sample(tr *animation.Track, index int, t float64) keyframe.Step {
	elapsed := t - tr.Delay - tr.OffsetAt(index)
	count := Iterations(tr.Iteration)
	if elapsed < 0 {
		if tr.Fill.Backwards() {
			return at(tr, progress(tr.Direction, 0, 0))
		}
		return keyframe.Null()
	}
	if tr.Duration <= 0 || count == 0 || elapsed >= tr.Duration*count {
		if !tr.Fill.Forwards() {
			return keyframe.Null()
		}
		iter, p := math.Floor(count), count-math.Floor(count)
		if p == 0 && count > 0 {
			iter, p = count-1, 1
		}
		return at(tr, progress(tr.Direction, iter, p))
	}
	cycles := elapsed / tr.Duration
	iter := math.Floor(cycles)
	return at(tr, progress(tr.Direction, iter, cycles-iter))
}

// Point is a track value at a point in time.
type Point struct {
	T    float64
	Step keyframe.Step
}

// Series samples tr for the fragment at index from 0 to until, every
// interval seconds.
func Series(tr *animation.Track, index int, until, interval float64) []Point {
	if interval <= 0 {
		return nil
	}
	var points []Point
	for i := 0; ; i++ {
		t := float64(i) * interval
		if t > until+interval/1e6 {
			break
		}
		points = append(points, Point{T: t, Step: Sample(tr, index, t)})
	}
	return points
}

// progress maps the progress p within iteration iter to the keyframe
// position, according to the animation direction.
func progress(dir animation.Direction, iter, p float64) float64 {
	odd := math.Mod(iter, 2) == 1
	switch dir {
	case animation.Reverse:
		return 1 - p
	case animation.Alternate:
		if odd {
			return 1 - p
		}
	case animation.AlternateReverse:
		if !odd {
			return 1 - p
		}
	}
	return p
}

// at evaluates the keyframes of tr at progress p in [0,1].
func at(tr *animation.Track, p float64) keyframe.Step {
	keys := tr.Steps.Keys()
	if len(keys) == 0 {
		return keyframe.Null()
	}
	pos := p * 100
	if pos <= keys[0] {
		return tr.Steps[keys[0]]
	}
	if pos >= keys[len(keys)-1] {
		return tr.Steps[keys[len(keys)-1]]
	}
	i := sort.SearchFloat64s(keys, pos) // keys[i-1] < pos <= keys[i]
	k0, k1 := keys[i-1], keys[i]
	s0, s1 := tr.Steps[k0], tr.Steps[k1]
	if pos == k1 {
		return s1
	}
	local := (pos - k0) / (k1 - k0)
	fn := Easing(tr.Timing)
	var v0, v1 keyframe.Value
	m0, m1 := s0.Match(), s1.Match()
	if m0 != m0.Just(&v0) || m1 != m1.Just(&v1) {
		return discrete(s0, s1, fn, local)
	}
	x0, ok0 := v0.Float()
	x1, ok1 := v1.Float()
	if !ok0 || !ok1 {
		return discrete(s0, s1, fn, local)
	}
	tween := gween.New(float32(x0), float32(x1), 1, fn)
	x, _ := tween.Set(float32(local))
	return keyframe.Just(keyframe.Number(round(float64(x))))
}

func discrete(s0, s1 keyframe.Step, fn ease.TweenFunc, local float64) keyframe.Step {
	if fn(float32(local), 0, 1, 1) < 0.5 {
		return s0
	}
	return s1
}

// round removes float32 noise.
func round(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
