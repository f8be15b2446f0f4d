package animation

import (
	"github.com/npillmayer/funtext/keyframe"
)

// Compile turns descriptors into tracks, grouped by scope priority.
// Knobs left open by a descriptor are taken from defaults. Descriptors
// which cannot be compiled are skipped; Compile never fails.
//
// Descriptors are not modified.
func Compile(descriptors []Descriptor, defaults Defaults) Groups {
	groups := make(Groups)
	for i, d := range descriptors {
		var track *Track
		switch desc := d.(type) {
		case *Default:
			if desc == nil {
				continue
			}
			track = compileDefault(desc, defaults)
		case *Composite:
			if desc == nil {
				continue
			}
			track = compileComposite(desc, defaults)
		default:
			tracer().Errorf("animation #%d: unknown descriptor type %T, skipped", i, d)
			continue
		}
		p := track.Priority()
		groups[p] = append(groups[p], track)
	}
	tracer().Debugf("compiled %d animations into %d scope groups", groups.Len(), len(groups))
	return groups
}

func compileDefault(d *Default, defaults Defaults) *Track {
	track := resolve(&d.Properties, defaults)
	track.Property = d.Property
	sync := pickSync(d.Sync, defaults.Sync)
	steps := keyframe.Normalize(d.Steps)
	track.Steps = keyframe.Remap(steps, d.Duration, sync, track.Fill).EnsureEdges()
	track.Duration = keyframe.Duration(d.Duration, sync)
	return track
}

// compileComposite merges the sub-animations and compiles the result like
// a default animation of the composite's kind.
func compileComposite(c *Composite, defaults Defaults) *Track {
	fill := pick(c.Fill, defaults.Fill)
	steps, duration := merge(c.Kind, c.Animations, fill)
	return compileDefault(&Default{
		Properties: c.Properties,
		Property:   string(c.Kind),
		Steps:      keyframe.Map(steps),
		Duration:   duration,
	}, defaults)
}

// resolve applies defaults to the knobs of p.
func resolve(p *Properties, defaults Defaults) *Track {
	t := &Track{
		Scope:     p.Scope.Resolve(),
		Delay:     defaults.Delay,
		Iteration: pick(p.Iteration, defaults.Iteration),
		Direction: pick(p.Direction, defaults.Direction),
		Timing:    pick(p.Timing, defaults.Timing),
		Fill:      pick(p.Fill, defaults.Fill),
		State:     pick(p.State, defaults.State),
		Offset:    p.Offset,
		Callbacks: p.Callbacks,
	}
	if p.Delay != nil {
		t.Delay = *p.Delay
	}
	if t.Offset == nil {
		t.Offset = defaults.Offset
	}
	if t.Offset == nil {
		t.Offset = Stagger(0)
	}
	return t
}

func pick[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func pickSync(s, def *keyframe.Sync) *keyframe.Sync {
	if s != nil {
		return s
	}
	return def
}
