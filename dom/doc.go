/*
Package dom renders a segmented text as HTML.

Build turns the fragment tree of package segment into golang.org/x/net/html
nodes: one element per fragment, carrying its classes and CSS custom
properties as inline style. Render writes the nodes followed by the
generated stylesheet; Document wraps everything into a standalone page.
Select queries rendered nodes with CSS selectors.

Mounting nodes into a live page (and a shadow root) is left to clients.

Status

Early draft; API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.dom'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.dom")
}
