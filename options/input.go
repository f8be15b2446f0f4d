package options

import (
	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
)

// Input holds partial options. Nil pointers, empty strings and nil maps
// leave the corresponding baseline value untouched.
type Input struct {
	Text            *string             `yaml:"text"`
	Defaults        *DefaultsInput      `yaml:"defaults"`
	Tags            *Tags               `yaml:"tags"`
	CSS             *CSSInput           `yaml:"css"`
	Attributes      map[string]string   `yaml:"attributes"`
	Accessibility   *AccessibilityInput `yaml:"accessibility"`
	OpenMode        *bool               `yaml:"openMode"`
	KeyframesPrefix string              `yaml:"keyframesPrefix"`
}

// DefaultsInput overrides animation defaults. Offset takes precedence
// over Stagger, which configuration files use to set a fixed offset.
type DefaultsInput struct {
	Delay     *float64            `yaml:"delay"`
	Iteration string              `yaml:"iteration"`
	Direction animation.Direction `yaml:"direction"`
	Timing    animation.Easing    `yaml:"timing"`
	Fill      keyframe.Fill       `yaml:"fill"`
	State     animation.PlayState `yaml:"state"`
	Stagger   *float64            `yaml:"offset"`
	Offset    animation.Offset    `yaml:"-"`
	Sync      *keyframe.Sync      `yaml:"sync"`
}

// CSSInput overrides style options. Dark and Breakpoints replace the
// baseline's sections as a whole.
type CSSInput struct {
	Default     *string         `yaml:"default"`
	Root        *string         `yaml:"root"`
	Container   *string         `yaml:"container"`
	Text        *string         `yaml:"text"`
	Break       *string         `yaml:"break"`
	Raw         *string         `yaml:"raw"`
	Dark        *Classes        `yaml:"dark"`
	Breakpoints map[int]Classes `yaml:"breakpoints"`
}

// AccessibilityInput overrides accessibility options.
type AccessibilityInput struct {
	Aria                 *bool    `yaml:"aria"`
	PrefersContrast      *float64 `yaml:"prefersContrast"`
	PrefersReducedMotion *bool    `yaml:"prefersReducedMotion"`
}

// Ref returns a pointer to v, for filling in Input fields.
func Ref[T any](v T) *T {
	return &v
}

// Merge returns base with in layered on top of it. Neither base nor in
// are modified.
func Merge(base Options, in *Input) Options {
	o := base
	o.Attributes = cloneMap(base.Attributes)
	o.CSS.Breakpoints = cloneMap(base.CSS.Breakpoints)
	if base.CSS.Dark != nil {
		dark := *base.CSS.Dark
		o.CSS.Dark = &dark
	}
	if in == nil {
		return o
	}
	if in.Text != nil {
		o.Text, o.hasText = *in.Text, true
	}
	if d := in.Defaults; d != nil {
		mergeDefaults(&o.Defaults, d)
	}
	if t := in.Tags; t != nil {
		o.Tags.Container = pick(t.Container, o.Tags.Container)
		o.Tags.Text = pick(t.Text, o.Tags.Text)
		o.Tags.Break = pick(t.Break, o.Tags.Break)
	}
	if c := in.CSS; c != nil {
		set(&o.CSS.Default, c.Default)
		set(&o.CSS.Root, c.Root)
		set(&o.CSS.Container, c.Container)
		set(&o.CSS.Text, c.Text)
		set(&o.CSS.Break, c.Break)
		set(&o.CSS.Raw, c.Raw)
		if c.Dark != nil {
			dark := *c.Dark
			o.CSS.Dark = &dark
		}
		if c.Breakpoints != nil {
			o.CSS.Breakpoints = cloneMap(c.Breakpoints)
		}
	}
	if in.Attributes != nil {
		o.Attributes = cloneMap(in.Attributes)
	}
	if a := in.Accessibility; a != nil {
		set(&o.Accessibility.Aria, a.Aria)
		set(&o.Accessibility.PrefersContrast, a.PrefersContrast)
		set(&o.Accessibility.PrefersReducedMotion, a.PrefersReducedMotion)
	}
	set(&o.OpenMode, in.OpenMode)
	o.KeyframesPrefix = pick(in.KeyframesPrefix, o.KeyframesPrefix)
	tracer().Debugf("merged options, text set = %v", o.hasText)
	return o
}

func mergeDefaults(def *animation.Defaults, in *DefaultsInput) {
	set(&def.Delay, in.Delay)
	def.Iteration = pick(in.Iteration, def.Iteration)
	def.Direction = pick(in.Direction, def.Direction)
	def.Timing = pick(in.Timing, def.Timing)
	def.Fill = pick(in.Fill, def.Fill)
	def.State = pick(in.State, def.State)
	switch {
	case in.Offset != nil:
		def.Offset = in.Offset
	case in.Stagger != nil:
		def.Offset = animation.Stagger(*in.Stagger)
	}
	if in.Sync != nil {
		sync := *in.Sync
		def.Sync = &sync
	}
}

func pick[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
