package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hello = `
version: 1
text: "Hello world"
options:
  defaults:
    offset: 0.05
    fill: both
  attributes:
    id: greeting
animations:
  - scope: word
    property: opacity
    steps: [0, 1]
    duration: 1
    iteration: 2
    sync: { duration: 3, location: end }
  - type: transform
    scope: { split: "l", priority: 2 }
    offset: 0.2
    animations:
      - { property: rotate, steps: { 0: 0, "50%": 90, 100: null }, unit: deg, duration: 2 }
      - { property: translateY, steps: 10, unit: px, duration: 1, delay: 1 }
`

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	sc, err := Decode([]byte(hello))
	require.NoError(t, err)
	require.Len(t, sc.Animations, 2)
	assert.Equal(t, "Hello world", *sc.Options.Text)
	assert.Equal(t, "2", sc.Animations[0].Iteration)
	assert.Equal(t, keyframe.End, sc.Animations[0].Sync.Location)
	assert.Equal(t, keyframe.Values("0", "1"), sc.Animations[0].Steps.Input)
	rotate := sc.Animations[1].Animations[0].Steps.Input
	assert.Equal(t, keyframe.Map{
		0:   keyframe.Just("0"),
		50:  keyframe.Just("90"),
		100: keyframe.Null(),
	}, rotate)
	assert.Equal(t, keyframe.Scalar("10"), sc.Animations[1].Animations[1].Steps.Input)
}

func TestDescriptors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	sc, err := Decode([]byte(hello))
	require.NoError(t, err)
	descs, err := sc.Descriptors()
	require.NoError(t, err)
	require.Len(t, descs, 2)
	d, ok := descs[0].(*animation.Default)
	require.True(t, ok)
	assert.Equal(t, animation.Word, d.Scope)
	c, ok := descs[1].(*animation.Composite)
	require.True(t, ok)
	assert.Equal(t, animation.Transform, c.Kind)
	assert.Equal(t, 2, c.Scope.Priority())
	assert.Equal(t, "l", c.Scope.Split().Source())
	assert.InDelta(t, 0.6, c.Offset(3, 2), 1e-9)
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	sc, err := Decode([]byte(hello))
	require.NoError(t, err)
	text, err := sc.Compile()
	require.NoError(t, err)
	assert.Equal(t, 2, text.Tracks.Len())
	assert.Equal(t, "Hello world", text.Root.Content())
	words := text.Tracks[animation.Word.Priority()]
	require.Len(t, words, 1)
	assert.Equal(t, 3.0, words[0].Duration)
	assert.Equal(t, keyframe.FillBoth, words[0].Fill)
}

func TestScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	sc, err := Decode([]byte(`
animations:
  - scope: { pattern: "[aeiou]", priority: 5 }
  - scope: sentence
  - {}
`))
	require.NoError(t, err)
	s, err := sc.Animations[0].Scope.Scope()
	require.NoError(t, err)
	assert.True(t, s.Split().IsPattern())
	assert.Equal(t, 5, s.Priority())
	s, err = sc.Animations[1].Scope.Scope()
	require.NoError(t, err)
	assert.Equal(t, animation.Letter, s)
	s, err = sc.Animations[2].Scope.Scope()
	require.NoError(t, err)
	assert.False(t, s.IsDefined())
	//
	_, err = ScopeSpec{Pattern: "(", Priority: 1}.Scope()
	assert.ErrorIs(t, err, ErrInvalidScope)
	_, err = ScopeSpec{Priority: 1}.Scope()
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	_, err := Decode([]byte("  \n"))
	assert.ErrorIs(t, err, ErrNoScenario)
	_, err = Decode([]byte("animations:\n  - steps: { a: 1 }\n"))
	assert.ErrorIs(t, err, ErrInvalidSteps)
	_, err = Decode([]byte("animations:\n  - steps: [[1]]\n"))
	assert.ErrorIs(t, err, ErrInvalidSteps)
	_, err = Decode([]byte("colour: red\n"))
	assert.Error(t, err, "unknown fields are rejected")
	_, err = Decode([]byte("version: 99\n"))
	assert.Error(t, err)
	sc, err := Decode([]byte("animations:\n  - type: shadow\n"))
	require.NoError(t, err)
	_, err = sc.Descriptors()
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.scenario")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "hello.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hello), 0o644))
	sc, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, sc.Animations, 2)
	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
