/*
Package animation compiles animation descriptors into keyframe tracks.

Clients describe animations declaratively: which part of the text they
apply to (a Scope), which CSS property they drive, the steps of the
animation and its timing. Compile resolves all of this into Tracks, with
every optional knob defaulted, steps normalized and, for composite
transform and filter animations, the sub-animations merged into a single
keyframe timeline. Tracks are grouped by scope priority; the priorities
drive text segmentation in package segment.

Status

Work in progress. The descriptor API follows the JavaScript original
closely and may be made more Go-like over time.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package animation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.animation'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.animation")
}
