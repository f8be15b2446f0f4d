/*
Package segment splits text into a tree of fragments, one level per scope
priority.

Segment visits scope priorities in ascending order. For each priority it
combines the split rules of all tracks of that priority into one pattern
and cuts every text leaf of the current tree into pieces. Pieces become
the leaves of the next level, carrying the CSS custom properties with
their per-fragment animation offsets. Line breaks always split and turn
into break fragments.

The first and the last fragment of each level receive the lifecycle
callbacks of the level's tracks, so that start and end events fire once
per scope instead of once per fragment.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.segment'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.segment")
}
