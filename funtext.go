package funtext

import (
	"io"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/dom"
	"github.com/npillmayer/funtext/dom/cssom"
	"github.com/npillmayer/funtext/options"
	"github.com/npillmayer/funtext/segment"
	"golang.org/x/net/html"
)

// Text is a compiled text animation.
type Text struct {
	Options options.Options
	Tracks  animation.Groups
	Root    *segment.Fragment
}

// Compile compiles descriptors for a text. The text is taken from in, or
// from containerText if in does not carry one. containerText usually is
// the current content of the element to animate.
func Compile(descriptors []animation.Descriptor, in *options.Input, containerText string) *Text {
	return CompileWith(options.Default(), descriptors, in, containerText)
}

// CompileWith is Compile with options layered on top of baseline instead
// of the module defaults.
func CompileWith(baseline options.Options, descriptors []animation.Descriptor,
	in *options.Input, containerText string) *Text {
	//
	opts := options.CompileWith(baseline, in, containerText)
	tracks := animation.Compile(descriptors, opts.Defaults)
	root := segment.Segment(opts.Text, tracks, opts)
	tracer().Infof("compiled %d tracks into %d fragments", tracks.Len(), root.Count())
	return &Text{
		Options: opts,
		Tracks:  tracks,
		Root:    root,
	}
}

// Nodes returns the HTML nodes of t. See dom.Build.
func (t *Text) Nodes() []*html.Node {
	return dom.Build(t.Root, t.Options)
}

// Stylesheet returns the CSS of t.
func (t *Text) Stylesheet() string {
	return cssom.Build(t.Options, t.Tracks)
}

// WriteHTML writes the markup of t, followed by a <style> element.
func (t *Text) WriteHTML(w io.Writer) error {
	return dom.Render(w, t.Nodes(), t.Stylesheet())
}

// Document returns t as a standalone HTML page.
func (t *Text) Document(title string) *html.Node {
	return dom.Document(title, t.Nodes(), t.Stylesheet())
}
