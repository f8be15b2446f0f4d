/*
Package options holds the configuration of a compiled text.

Options are plain values. Default returns the built-in baseline, and
clients layer partial overrides (Input) on top of a baseline with Merge.
Merging is shallow per section: a field set in the input replaces the
baseline's field, everything else is kept. Maps (attributes, breakpoints)
are replaced as a whole.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package options

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.options'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.options")
}
