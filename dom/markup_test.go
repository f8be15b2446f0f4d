package dom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/funtext/options"
	"github.com/npillmayer/funtext/segment"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func fragments(text string, opts options.Options, scopes ...animation.Scope) *segment.Fragment {
	descs := make([]animation.Descriptor, len(scopes))
	for i, s := range scopes {
		descs[i] = &animation.Default{
			Properties: animation.Properties{Scope: s},
			Property:   "opacity",
			Steps:      keyframe.Values("0", "1"),
			Duration:   1,
		}
	}
	return segment.Segment(text, animation.Compile(descs, opts.Defaults), opts)
}

func TestBuildMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	opts := options.Compile(nil, "hi there")
	nodes := Build(fragments(opts.Text, opts, animation.Word, animation.Letter), opts)
	require.Len(t, nodes, 2)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nodes, ""))
	t.Logf("markup = %s", buf.String())
	//
	words, err := Select(nodes, "div.funtext > div.funtext--scope1")
	require.NoError(t, err)
	assert.Len(t, words, 3) // "hi", " ", "there"
	letters, err := Select(nodes, "p.funtext--scope3.funtext__text")
	require.NoError(t, err)
	assert.Len(t, letters, 8)
	style, ok := Attr(letters[1], "style")
	assert.True(t, ok)
	assert.Equal(t, "--offset-3-opacity: 0.1s", style)
	assert.Equal(t, "hi there", Text(nodes[0]))
}

func TestBuildAria(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	opts := options.Compile(&options.Input{
		Attributes: map[string]string{"id": "headline", "data-x": "1"},
	}, "Hello")
	nodes := Build(fragments(opts.Text, opts, animation.Letter), opts)
	require.Len(t, nodes, 2)
	hidden, _ := Attr(nodes[0], "aria-hidden")
	assert.Equal(t, "true", hidden)
	id, _ := Attr(nodes[0], "id")
	assert.Equal(t, "headline", id)
	label, _ := Attr(nodes[1], "aria-label")
	assert.Equal(t, "Hello", label)
	matches, err := Select(nodes, "#headline[data-x='1']")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	//
	opts = options.Compile(&options.Input{Accessibility: &options.AccessibilityInput{Aria: options.Ref(false)}}, "Hello")
	nodes = Build(fragments(opts.Text, opts, animation.Letter), opts)
	assert.Len(t, nodes, 1)
	_, ok := Attr(nodes[0], "aria-hidden")
	assert.False(t, ok)
}

func TestLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	opts := options.Compile(nil, "a\nb")
	nodes := Build(fragments(opts.Text, opts, animation.Word), opts)
	breaks, err := Select(nodes, "br.funtext__break")
	require.NoError(t, err)
	assert.Len(t, breaks, 1)
	// without animations, the root holds the text itself
	plain := Build(fragments(opts.Text, opts), opts)
	brs, _ := Select(plain, "p.funtext > br")
	assert.Len(t, brs, 1)
	assert.Equal(t, "a\nb", Text(plain[0]))
}

func TestRenderDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	opts := options.Compile(nil, "x<y")
	nodes := Build(fragments(opts.Text, opts, animation.Word), opts)
	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, Document("demo", nodes, ".funtext { color: red; }")))
	out := buf.String()
	t.Logf("document = %s", out)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<style>.funtext { color: red; }</style>")
	assert.Contains(t, out, "x&lt;y")
	//
	assert.ErrorIs(t, Render(&buf, nil, ""), ErrNoFragments)
	_, err := Select(nodes, "[[")
	assert.Error(t, err)
}
