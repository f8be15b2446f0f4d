package cssom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/funtext/options"
	"github.com/npillmayer/funtext/segment"
)

// Values substituted for null keyframe steps, per property. Properties
// not listed here inherit.
var keyframeDefaults = map[string]string{
	"transform": "none",
	"filter":    "none",
}

// DefaultValue returns the value a null keyframe step of property
// renders to.
func DefaultValue(property string) string {
	if v, ok := keyframeDefaults[property]; ok {
		return v
	}
	return "inherit"
}

// Build generates the stylesheet for tracks in groups.
func Build(opts options.Options, groups animation.Groups) string {
	var b strings.Builder
	for _, p := range groups.Priorities() {
		for _, t := range groups[p] {
			writeKeyframes(&b, opts.KeyframesPrefix, t)
		}
		writeScopeRule(&b, opts.KeyframesPrefix, p, groups[p])
	}
	writeClasses(&b, opts.CSS.Classes)
	if opts.CSS.Dark != nil {
		b.WriteString("@media (prefers-color-scheme: dark) {\n")
		writeClasses(&b, *opts.CSS.Dark)
		b.WriteString("}\n")
	}
	for _, size := range opts.CSS.Sizes() {
		fmt.Fprintf(&b, "@media (max-width: %dpx) {\n", size)
		writeClasses(&b, opts.CSS.Breakpoints[size])
		b.WriteString("}\n")
	}
	writeAccessibility(&b, opts.Accessibility)
	tracer().Debugf("generated %d bytes of CSS for %d tracks", b.Len(), groups.Len())
	return b.String()
}

func writeKeyframes(w io.Writer, prefix string, t *animation.Track) {
	name := animation.KeyframesName(prefix, t.Priority(), t.Property)
	fmt.Fprintf(w, "@keyframes %s {\n", name)
	def := keyframe.Value(DefaultValue(t.Property))
	for _, k := range t.Steps.Keys() {
		fmt.Fprintf(w, "  %s%% { %s: %s; }\n", number(k), t.Property, t.Steps[k].WithDefault(def))
	}
	io.WriteString(w, "}\n")
}

// writeScopeRule writes the animation properties of all tracks of a
// scope, as comma separated lists.
func writeScopeRule(w io.Writer, prefix string, priority int, tracks []*animation.Track) {
	n := len(tracks)
	names, durations, delays := make([]string, n), make([]string, n), make([]string, n)
	iterations, directions, timings := make([]string, n), make([]string, n), make([]string, n)
	fills, states := make([]string, n), make([]string, n)
	for i, t := range tracks {
		names[i] = animation.KeyframesName(prefix, priority, t.Property)
		durations[i] = number(t.Duration) + "s"
		delays[i] = fmt.Sprintf("calc(%ss + var(%s))", number(t.Delay),
			animation.OffsetVariable(priority, t.Property))
		iterations[i] = t.Iteration
		directions[i] = string(t.Direction)
		timings[i] = string(t.Timing)
		fills[i] = string(t.Fill)
		states[i] = fmt.Sprintf("var(%s)", animation.PlayStateVariable(priority, t.Property))
	}
	fmt.Fprintf(w, ".%s {\n", segment.ScopeClass(priority))
	declare(w, "animation-name", names)
	declare(w, "animation-duration", durations)
	declare(w, "animation-delay", delays)
	declare(w, "animation-iteration-count", iterations)
	declare(w, "animation-direction", directions)
	declare(w, "animation-timing-function", timings)
	declare(w, "animation-fill-mode", fills)
	declare(w, "animation-play-state", states)
	io.WriteString(w, "}\n")
}

func declare(w io.Writer, property string, values []string) {
	fmt.Fprintf(w, "  %s: %s;\n", property, strings.Join(values, ","))
}

func writeClasses(w io.Writer, css options.Classes) {
	rule := func(class, decl string) {
		fmt.Fprintf(w, ".%s {\n", class)
		for _, d := range []string{css.Default, decl} {
			if d = strings.TrimSpace(d); d != "" {
				fmt.Fprintf(w, "  %s\n", d)
			}
		}
		io.WriteString(w, "}\n")
	}
	rule(segment.RootClass, css.Root)
	rule(segment.ContainerClass, css.Container)
	rule(segment.TextClass, css.Text)
	rule(segment.BreakClass, css.Break)
	if raw := strings.TrimSpace(css.Raw); raw != "" {
		io.WriteString(w, raw+"\n")
	}
}

func writeAccessibility(w io.Writer, a options.Accessibility) {
	if a.Aria {
		io.WriteString(w, `[aria-label] {
  position: absolute !important;
  height: 1px;
  width: 1px;
  overflow: hidden;
  clip: rect(1px 1px 1px 1px);
  clip: rect(1px, 1px, 1px, 1px);
}
`)
	}
	if a.PrefersContrast != 0 {
		fmt.Fprintf(w, "@media (prefers-contrast: more) {\n.%s {\n  filter: contrast(%s);\n}\n}\n",
			segment.RootClass, number(1+a.PrefersContrast))
		fmt.Fprintf(w, "@media (prefers-contrast: less) {\n.%s {\n  filter: contrast(%s);\n}\n}\n",
			segment.RootClass, number(1-a.PrefersContrast))
	}
	if a.PrefersReducedMotion {
		fmt.Fprintf(w, "@media (prefers-reduced-motion) {\n.%s {\n  %s\n}\n}\n",
			segment.RootClass, reducedMotion)
	}
}

const reducedMotion = "transform: translate(0, 0) translate3d(0, 0, 0) translateX(0) translateY(0) " +
	"translateZ(0) rotate(0) rotate3d(0, 0, 0, 0) rotateX(0) rotateY(0) rotateZ(0) !important;"

func number(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
