package animation

import (
	"testing"

	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSingleSub(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	steps, d := merge(Transform, []Sub{
		{Property: "translateY", Steps: keyframe.Values("0", "10"), Unit: "px", Duration: 2},
	}, keyframe.FillNone)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, []float64{0, 100}, steps.Keys())
	assert.Equal(t, keyframe.Value("translateY(0px)"), steps[0].WithDefault(""))
	assert.Equal(t, keyframe.Value("translateY(10px)"), steps[100].WithDefault(""))
}

func TestMergeInterpolates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	steps, d := merge(Transform, []Sub{
		{Property: "translateX", Steps: keyframe.Values("0", "100"), Unit: "px", Duration: 4},
		{Property: "rotate", Steps: keyframe.Map{0: keyframe.Just("0"), 50: keyframe.Just("90"), 100: keyframe.Just("0")}, Unit: "deg", Duration: 4},
	}, keyframe.FillNone)
	assert.Equal(t, 4.0, d)
	require.Equal(t, []float64{0, 50, 100}, steps.Keys())
	assert.Equal(t, keyframe.Value("translateX(50px) rotate(90deg)"), steps[50].WithDefault(""))
}

func TestMergeWithDelay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	steps, d := merge(Filter, []Sub{
		{Property: "blur", Steps: keyframe.Values("0", "4"), Unit: "px", Duration: 1},
		{Property: "opacity", Steps: keyframe.Map{0: keyframe.Null(), 100: keyframe.Just("0")}, Duration: 1, Delay: 1},
		{Property: "blur", Steps: keyframe.Scalar("99"), Unit: "px", Duration: 10},
		{Property: "rotate", Steps: keyframe.Scalar("1"), Unit: "deg", Duration: 10},
	}, keyframe.FillNone)
	assert.Equal(t, 2.0, d, "duplicate and foreign properties must not count")
	t.Logf("merged = %s", steps)
	for _, k := range steps.Keys() {
		if k < 0 || k > 100 {
			t.Errorf("expected merged keys within [0,100], found %g", k)
		}
	}
	// blur runs in the first half, opacity in the second
	assert.Equal(t, keyframe.Value("blur(0px) opacity(1)"), steps[0].WithDefault(""))
	assert.Equal(t, keyframe.Value("blur(4px) opacity(1)"), steps[50].WithDefault(""))
	// after its window, blur reverts to its default
	assert.Equal(t, keyframe.Value("blur(0px) opacity(0)"), steps[100].WithDefault(""))
}

func TestMergeHoldsWithFill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	steps, _ := merge(Transform, []Sub{
		{Property: "scaleX", Steps: keyframe.Values("2", "3"), Duration: 1, Delay: 1},
		{Property: "scaleY", Steps: keyframe.Values("1", "1"), Duration: 3},
	}, keyframe.FillBoth)
	assert.Equal(t, keyframe.Value("scaleX(2) scaleY(1)"), steps[0].WithDefault(""))
	assert.Equal(t, keyframe.Value("scaleX(3) scaleY(1)"), steps[100].WithDefault(""))
}

func TestMergeDegenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	steps, d := merge(Filter, []Sub{
		{Property: "opacity", Steps: keyframe.Scalar("0")},
		{Property: "blur", Steps: keyframe.Scalar("3"), Unit: "px"},
	}, keyframe.FillNone)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, []float64{0}, steps.Keys())
	assert.Equal(t, keyframe.Value("opacity(1) blur(0px)"), steps[0].WithDefault(""))
}

func TestCompileComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	groups := Compile([]Descriptor{
		&Composite{
			Properties: Properties{Scope: Word, Fill: keyframe.FillForwards},
			Kind:       Transform,
			Animations: []Sub{
				{Property: "translateY", Steps: keyframe.Values("0", "-10", "0"), Unit: "px", Duration: 1},
				{Property: "rotate", Steps: keyframe.Scalar("20"), Unit: "deg", Duration: 0.5, Delay: 0.5},
			},
		},
	}, StandardDefaults())
	require.Len(t, groups[1], 1)
	track := groups[1][0]
	assert.Equal(t, "transform", track.Property)
	assert.Equal(t, 1.0, track.Duration)
	assert.Equal(t, keyframe.FillForwards, track.Fill)
	assert.True(t, track.Steps.Has(0) && track.Steps.Has(100))
	assert.Equal(t, keyframe.Value("translateY(0px) rotate(20deg)"), track.Steps[100].WithDefault(""))
}

func TestCompileDegenerateComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	groups := Compile([]Descriptor{
		&Composite{Kind: Filter, Animations: []Sub{{Property: "sepia", Steps: keyframe.Scalar("1")}}},
	}, StandardDefaults())
	track := groups[3][0]
	assert.Equal(t, 0.0, track.Duration)
	assert.Equal(t, []float64{0, 100}, track.Steps.Keys())
	assert.True(t, track.Steps[100].IsNull())
}

func TestMergeInstantJumpIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.animation")
	defer teardown()
	//
	subs := []Sub{
		{Property: "rotate", Steps: keyframe.Scalar("90"), Unit: "deg", Duration: 0, Delay: 1},
		{Property: "scaleX", Steps: keyframe.Values("1", "2"), Duration: 2},
	}
	for i := 0; i < 200; i++ {
		steps, d := merge(Transform, subs, keyframe.FillForwards)
		require.Equal(t, 2.0, d)
		require.Equal(t, keyframe.Value("rotate(90deg) scaleX(2)"), steps[100].WithDefault(""), "run %d", i)
	}
}
