/*
Package keyframe holds the percentage-indexed step model of an animation.

A step map assigns a value (or null) to percentage keys between 0 and 100.
Clients hand in step specifications in one of three shapes (a single
scalar, an evenly spaced list, or a sparse map), and Normalize turns each
of them into a Steps map. Remap then positions a short animation inside a
longer synchronization window, padding it with hold or revert keys
according to the fill mode.

Status

Stable for the compiler's needs; the API may still change.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keyframe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.keyframe'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.keyframe")
}
