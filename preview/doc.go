/*
Package preview evaluates compiled tracks at points in time.

Browsers execute the generated CSS animations; preview mimics what they
do for a single fragment, which is handy for tests, for the command line
tool and for clients rendering text animations outside of a browser.
Sample honors delays and fragment offsets, iteration counts, directions,
fill modes and the timing function, which (as in CSS) applies between
neighbouring keyframes. Numeric values are interpolated; other values
change discretely half-way.

Easing curves come from github.com/tanema/gween. The CSS cubic-bezier
presets are approximated by polynomial or sine curves.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.preview'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.preview")
}
