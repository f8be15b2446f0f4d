package animation

import (
	"github.com/npillmayer/funtext/keyframe"
)

// Direction is a CSS animation-direction.
type Direction string

// Directions.
const (
	Normal           Direction = "normal"
	Reverse          Direction = "reverse"
	Alternate        Direction = "alternate"
	AlternateReverse Direction = "alternate-reverse"
)

// Easing is a CSS animation-timing-function.
type Easing string

// Timing functions.
const (
	Ease      Easing = "ease"
	EaseIn    Easing = "ease-in"
	EaseOut   Easing = "ease-out"
	EaseInOut Easing = "ease-in-out"
	Linear    Easing = "linear"
	StepStart Easing = "step-start"
	StepEnd   Easing = "step-end"
)

// PlayState is a CSS animation-play-state.
type PlayState string

// Play states.
const (
	Running PlayState = "running"
	Paused  PlayState = "paused"
)

// Infinite is the iteration count of endless animations.
const Infinite = "infinite"

// Offset computes the additional delay, in seconds, of the fragment at
// index within a scope of the given priority.
type Offset func(index, priority int) float64

// Stagger returns an offset delaying each fragment by o seconds more than
// its predecessor.
func Stagger(o float64) Offset {
	return func(index, _ int) float64 {
		return float64(index) * o
	}
}

// Event is handed to lifecycle callbacks.
type Event struct {
	Name        string // "animationstart", "animationend", …
	Property    string
	Priority    int
	ElapsedTime float64
}

// Callback is a lifecycle callback of an animation.
type Callback func(Event)

// Callbacks are the optional lifecycle hooks of an animation. Start hooks
// are attached to the first fragment of a scope, end hooks to the last one.
type Callbacks struct {
	OnStart          Callback
	OnEnd            Callback
	OnIterationStart Callback
	OnIterationEnd   Callback
	OnCancel         Callback
}

// Properties are the knobs shared by all kinds of descriptors. Zero values
// are replaced by the compiler defaults; Delay and Sync use pointers as
// their zero values are meaningful.
type Properties struct {
	Scope     Scope
	Delay     *float64
	Iteration string // a number or "infinite"
	Direction Direction
	Timing    Easing
	Fill      keyframe.Fill
	State     PlayState
	Offset    Offset
	Sync      *keyframe.Sync
	Callbacks
}

// Descriptor describes an animation as clients write it. It is
// implemented by Default and Composite.
type Descriptor interface {
	properties() *Properties
}

// Default animates a single CSS property.
type Default struct {
	Properties
	Property string
	Steps    keyframe.Input
	Duration float64 // seconds
}

func (d *Default) properties() *Properties {
	return &d.Properties
}

// Kind is the kind of a composite animation.
type Kind string

// Composite kinds.
const (
	Transform Kind = "transform"
	Filter    Kind = "filter"
)

var subProperties = map[Kind]map[string]bool{
	Transform: {
		"rotate": true, "translateX": true, "translateY": true,
		"scaleX": true, "scaleY": true, "skewX": true, "skewY": true,
	},
	Filter: {
		"blur": true, "brightness": true, "contrast": true, "grayscale": true,
		"hue-rotate": true, "invert": true, "opacity": true, "saturate": true,
		"sepia": true,
	},
}

// Accepts is true if property may be used within a composite of kind k.
func (k Kind) Accepts(property string) bool {
	return subProperties[k][property]
}

// Sub is one function of a composite animation, e.g. translateY.
type Sub struct {
	Property string
	Steps    keyframe.Input
	Unit     string  // e.g. "px", "deg", "%"
	Duration float64 // seconds
	Delay    float64 // seconds, relative to the composite
}

// Composite bundles several transform or filter functions into one
// animation of the 'transform' or 'filter' property.
type Composite struct {
	Properties
	Kind       Kind
	Animations []Sub
}

func (c *Composite) properties() *Properties {
	return &c.Properties
}

var _ Descriptor = &Default{}
var _ Descriptor = &Composite{}
