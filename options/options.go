package options

import (
	"sort"

	"github.com/npillmayer/funtext/animation"
)

// Tags are the HTML tags used for fragments.
type Tags struct {
	Container string `yaml:"container"`
	Text      string `yaml:"text"`
	Break     string `yaml:"break"`
}

// Classes holds CSS declarations for the classes of the generated markup.
// Default is prepended to each of root, container, text and break; Raw is
// copied to the stylesheet as it is.
type Classes struct {
	Default   string `yaml:"default"`
	Root      string `yaml:"root"`
	Container string `yaml:"container"`
	Text      string `yaml:"text"`
	Break     string `yaml:"break"`
	Raw       string `yaml:"raw"`
}

// CSS is the style configuration: classes for the light color scheme, an
// optional dark scheme and classes per max-width breakpoint (in pixels).
type CSS struct {
	Classes
	Dark        *Classes
	Breakpoints map[int]Classes
}

// Sizes returns the breakpoints of css, largest first.
func (css CSS) Sizes() []int {
	sizes := make([]int, 0, len(css.Breakpoints))
	for s := range css.Breakpoints {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// Accessibility configures accessibility support. PrefersContrast is the
// contrast adjustment for users preferring more or less contrast; 0
// switches it off.
type Accessibility struct {
	Aria                 bool
	PrefersContrast      float64
	PrefersReducedMotion bool
}

// Options is the complete configuration of a compiled text.
type Options struct {
	Text            string
	hasText         bool
	Defaults        animation.Defaults
	Tags            Tags
	CSS             CSS
	Attributes      map[string]string
	Accessibility   Accessibility
	OpenMode        bool
	KeyframesPrefix string
}

// DefaultCSS is applied to every class of the generated markup.
const DefaultCSS = "display: inline-block; margin: 0; padding: 0; white-space: pre-wrap;"

// Default returns the built-in options.
func Default() Options {
	return Options{
		Defaults: animation.StandardDefaults(),
		Tags: Tags{
			Container: "div",
			Text:      "p",
			Break:     "br",
		},
		CSS: CSS{
			Classes: Classes{Default: DefaultCSS},
		},
		Attributes: map[string]string{},
		Accessibility: Accessibility{
			Aria:            true,
			PrefersContrast: 0.15,
		},
		KeyframesPrefix: animation.KeyframesPrefix,
	}
}

// HasText is true if the text has been set explicitly.
func (o Options) HasText() bool {
	return o.hasText
}

// WithInput returns a new baseline with in merged into o.
func (o Options) WithInput(in *Input) Options {
	return Merge(o, in)
}

// Compile merges in into the built-in defaults. If in does not set a text,
// fallbackText is used, usually the text content of the container element.
func Compile(in *Input, fallbackText string) Options {
	return CompileWith(Default(), in, fallbackText)
}

// CompileWith is like Compile, but starts with baseline instead of the
// built-in defaults.
func CompileWith(baseline Options, in *Input, fallbackText string) Options {
	o := Merge(baseline, in)
	if !o.hasText {
		o.Text = fallbackText
		o.hasText = true
	}
	return o
}
