/*
Package cssom generates the stylesheet of a compiled text and provides
an abstract view onto stylesheets.

Build renders @keyframes rules for all tracks, one animation rule per
scope class, the classes of the generated markup (with dark color scheme
and breakpoint variants) and accessibility rules. The result is plain CSS
text.

To inspect stylesheets, clients use the interfaces StyleSheet, Rule and
Keyframes. A concrete implementation on top of a CSS parser is found in
package douceuradapter. Tests and the command line tool use it to check
generated CSS for well-formedness.

Status

This is a first draft. The API may change without notice.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.cssom")
}
