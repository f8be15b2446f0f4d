package domdbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/funtext/options"
	"github.com/npillmayer/funtext/segment"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sample() *segment.Fragment {
	groups := animation.Compile([]animation.Descriptor{
		&animation.Default{
			Properties: animation.Properties{Scope: animation.Word},
			Property:   "color",
			Steps:      keyframe.Scalar("red"),
			Duration:   1,
		},
	}, animation.StandardDefaults())
	return segment.Segment("Hello dear\nworld", groups, options.Default())
}

func TestSprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	s := Sprint(sample())
	t.Logf("\n%s", s)
	for _, want := range []string{`p "Hello"`, `p "dear"`, "br .funtext--scope1.funtext__break", "div (5)"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected tree dump to contain %q", want)
		}
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	ToGraphViz(sample(), &buf, true)
	out := buf.String()
	if !strings.HasPrefix(out, "digraph g {") {
		t.Errorf("expected DOT output to start with a digraph, is %.20q", out)
	}
	if n := strings.Count(out, "[weight=1]"); n != 5 {
		t.Errorf("expected 5 edges, have %d", n)
	}
	if !strings.Contains(out, "--offset-1-color") {
		t.Errorf("expected custom properties in diagram")
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected DOT output to be closed")
	}
}

func TestDotty(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz not installed")
	}
	teardown := gotestingadapter.QuickConfig(t, "funtext.dom")
	defer teardown()
	//
	Dotty(sample(), t)
}
