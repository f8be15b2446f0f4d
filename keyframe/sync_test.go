package keyframe

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapWithoutWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	steps := Normalize(Values("0", "1"))
	assert.Equal(t, steps, Remap(steps, 2, nil, FillNone))
	assert.Equal(t, steps, Remap(steps, 2, &Sync{Duration: 2}, FillNone))
	assert.Equal(t, steps, Remap(steps, 2, &Sync{Duration: 1, Location: End}, FillBoth))
}

func TestRemapAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	steps := Normalize(Values("0", "1"))
	remapped := Remap(steps, 1, &Sync{Duration: 3, Location: End}, FillNone)
	keys := remapped.Keys()
	t.Logf("remapped = %s", remapped)
	require.Len(t, keys, 6)
	assert.Equal(t, 0.0, keys[0])
	assert.Equal(t, 100.0, keys[5])
	third := 100.0 / 3
	assert.InDelta(t, third-boundary, keys[1], 1e-9)
	assert.InDelta(t, third, keys[2], 1e-9)
	assert.InDelta(t, 2*third, keys[3], 1e-9)
	assert.InDelta(t, 2*third+boundary, keys[4], 1e-9)
	// fill none reverts outside of the window
	for _, k := range []float64{keys[0], keys[1], keys[4], keys[5]} {
		if !remapped[k].IsNull() {
			t.Errorf("expected step at %g%% to be null, is %s", k, remapped[k])
		}
	}
	assert.Equal(t, Value("0"), remapped[keys[2]].WithDefault("?"))
	assert.Equal(t, Value("1"), remapped[keys[3]].WithDefault("?"))
}

func TestRemapHoldsWithFill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	steps := Normalize(Values("a", "b"))
	remapped := Remap(steps, 1, &Sync{Duration: 4, Location: Middle}, FillBoth)
	assert.Equal(t, Value("a"), remapped[0].WithDefault("?"))
	assert.Equal(t, Value("b"), remapped[100].WithDefault("?"))
	//
	remapped = Remap(steps, 1, &Sync{Duration: 4, Location: Middle}, FillForwards)
	assert.True(t, remapped[0].IsNull())
	assert.Equal(t, Value("b"), remapped[100].WithDefault("?"))
}

func TestRemapAtStartDropsOutOfRangeKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	steps := Normalize(Values("a", "b"))
	remapped := Remap(steps, 1, &Sync{Duration: 2, Location: Start}, FillBackwards)
	for _, k := range remapped.Keys() {
		if k < 0 || k > 100 {
			t.Errorf("expected keys within [0,100], found %g", k)
		}
	}
	assert.Equal(t, []float64{0, 50, 50 + boundary, 100}, remapped.Keys())
	assert.Equal(t, Value("a"), remapped[0].WithDefault("?"))
	assert.True(t, remapped[100].IsNull())
}

func TestRemapAlwaysHasEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	inputs := []Input{Scalar("x"), Values("1", "2", "3"), Map{30: Just("q")}, List{}}
	for _, loc := range []Location{Start, Middle, End, 20, -5, 500} {
		for _, in := range inputs {
			r := Remap(Normalize(in), 0.5, &Sync{Duration: 2.5, Location: loc}, FillNone)
			if !r.Has(0) || !r.Has(100) {
				t.Errorf("expected keys 0 and 100 for location %g, have %v", float64(loc), r.Keys())
			}
		}
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 1.0, Duration(1, nil))
	assert.Equal(t, 3.0, Duration(1, &Sync{Duration: 3}))
	assert.Equal(t, 2.0, Duration(2, &Sync{Duration: 1}))
}

func TestLocation(t *testing.T) {
	for in, expected := range map[string]float64{
		"start": 0, "middle": 50, "END": 100, "25": 25, "33%": 33,
	} {
		loc, err := ParseLocation(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, loc.Percent(), in)
	}
	_, err := ParseLocation("somewhere")
	assert.Error(t, err)
	assert.Equal(t, 100.0, Location(140).Percent())
	assert.Equal(t, 0.0, Location(-1).Percent())
	assert.Equal(t, 0.0, Location(math.NaN()).Percent())
	var l Location
	require.NoError(t, l.UnmarshalText([]byte("middle")))
	assert.Equal(t, Middle, l)
}

func TestFill(t *testing.T) {
	assert.True(t, FillBoth.Backwards() && FillBoth.Forwards())
	assert.True(t, FillBackwards.Backwards() && !FillBackwards.Forwards())
	assert.True(t, !FillNone.Backwards() && !FillNone.Forwards())
}

func TestRemapCollapsedKeysAreStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	expected := Steps{0: Just("red"), boundary: Just("red"), 100: Just("red")}
	for i := 0; i < 200; i++ {
		remapped := Remap(Normalize(Scalar("red")), 0, &Sync{Duration: 2, Location: Middle}, FillBoth)
		require.Equal(t, expected, remapped, "run %d", i)
	}
}

func TestRemapBeyondEndDropsLastSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.keyframe")
	defer teardown()
	//
	steps := Normalize(Values("a", "b"))
	remapped := Remap(steps, 2, &Sync{Duration: 3, Location: End}, FillNone)
	t.Logf("remapped = %s", remapped)
	keys := remapped.Keys()
	require.Len(t, keys, 4)
	assert.InDelta(t, 200.0/3-boundary, keys[1], 1e-9)
	assert.InDelta(t, 200.0/3, keys[2], 1e-9)
	assert.Equal(t, Value("a"), remapped[keys[2]].WithDefault("?"))
	assert.True(t, remapped[100].IsNull(), "end value lies beyond 100%")
	//
	remapped = Remap(steps, 2, &Sync{Duration: 3, Location: End}, FillForwards)
	assert.Equal(t, Value("b"), remapped[100].WithDefault("?"))
}
