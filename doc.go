/*
Package funtext compiles declarative text animations into HTML and CSS.

Clients describe animations with descriptors from package animation:
which CSS property to animate, its keyframes, timing, and the scope (words,
letters, custom splits) the animation applies to. Compile runs the whole
pipeline:

	options     → merged with the module defaults
	descriptors → animation.Compile → tracks grouped by scope priority
	text+tracks → segment.Segment   → fragment tree
	fragments   → dom.Build         → HTML nodes
	tracks      → cssom.Build       → stylesheet

Fragments do not animate by themselves. Every fragment carries CSS custom
properties holding its animation offsets, and the stylesheet picks them up
as animation delays. Browsers then run the animations.

Sub-packages may be used on their own, e.g. package preview evaluates
tracks outside of a browser and package scenario reads animations from
YAML files.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package funtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext'.
func tracer() tracing.Trace {
	return tracing.Select("funtext")
}
