/*
Package scenario reads text animations from YAML files.

A scenario bundles a text, options and a list of animations:

	version: 1
	text: "Hello world"
	options:
	  defaults:
	    offset: 0.05
	animations:
	  - scope: word
	    property: opacity
	    steps: [0, 1]
	    duration: 1
	  - type: transform
	    scope: { split: "l", priority: 2 }
	    animations:
	      - { property: rotate, steps: { 0: 0, "50%": 90, 100: null }, unit: deg, duration: 2 }

Scopes are either preset names ("word", "letter", "all") or mappings with
a literal split token or a regular expression pattern, plus a priority.
Steps are a single value, a list of values or a percentage map, where
null marks a step without a value.

Lifecycle callbacks cannot be expressed in YAML; clients attach them to
the descriptors returned by Descriptors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenario

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'funtext.scenario'.
func tracer() tracing.Trace {
	return tracing.Select("funtext.scenario")
}
