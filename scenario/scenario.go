package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/funtext"
	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/keyframe"
	"github.com/npillmayer/funtext/options"
	"gopkg.in/yaml.v3"
)

// Errors reported for malformed scenarios.
var (
	ErrNoScenario   = errors.New("no scenario")
	ErrUnknownType  = errors.New("unknown animation type")
	ErrInvalidScope = errors.New("invalid scope")
	ErrInvalidSteps = errors.New("invalid steps")
)

// Version is the scenario format version this package reads.
const Version = 1

// Scenario is the content of a scenario file.
type Scenario struct {
	Version    int             `yaml:"version"`
	Text       *string         `yaml:"text"`
	Options    options.Input   `yaml:"options"`
	Animations []AnimationSpec `yaml:"animations"`
}

// AnimationSpec describes an animation. Type is "default" (or empty),
// "transform" or "filter". Property and Steps are used by default
// animations, Animations by composites.
type AnimationSpec struct {
	Type       string              `yaml:"type"`
	Scope      ScopeSpec           `yaml:"scope"`
	Property   string              `yaml:"property"`
	Steps      StepsSpec           `yaml:"steps"`
	Duration   float64             `yaml:"duration"`
	Delay      *float64            `yaml:"delay"`
	Iteration  string              `yaml:"iteration"`
	Direction  animation.Direction `yaml:"direction"`
	Timing     animation.Easing    `yaml:"timing"`
	Fill       keyframe.Fill       `yaml:"fill"`
	State      animation.PlayState `yaml:"state"`
	Offset     *float64            `yaml:"offset"`
	Sync       *keyframe.Sync      `yaml:"sync"`
	Animations []SubSpec           `yaml:"animations"`
}

// SubSpec describes one function of a composite animation.
type SubSpec struct {
	Property string    `yaml:"property"`
	Steps    StepsSpec `yaml:"steps"`
	Unit     string    `yaml:"unit"`
	Duration float64   `yaml:"duration"`
	Delay    float64   `yaml:"delay"`
}

// ScopeSpec is either a preset name or a split rule with a priority.
type ScopeSpec struct {
	Preset   string  `yaml:"-"`
	Split    *string `yaml:"split"`
	Pattern  string  `yaml:"pattern"`
	Priority int     `yaml:"priority"`
}

// UnmarshalYAML accepts a scalar preset name or a mapping.
func (s *ScopeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Preset = node.Value
		return nil
	case yaml.MappingNode:
		type plain ScopeSpec
		return node.Decode((*plain)(s))
	}
	return fmt.Errorf("line %d: %w: expected a name or a mapping", node.Line, ErrInvalidScope)
}

// Scope converts s. An empty ScopeSpec results in the unspecified scope, unknown
// preset names in the letter scope.
func (s ScopeSpec) Scope() (animation.Scope, error) {
	switch {
	case s.Preset != "":
		scope, ok := animation.Preset(s.Preset)
		if !ok {
			tracer().Infof("unknown scope %q, splitting into letters", s.Preset)
			return animation.Letter, nil
		}
		return scope, nil
	case s.Pattern != "":
		split, err := animation.CompilePattern(s.Pattern)
		if err != nil {
			return animation.Scope{}, fmt.Errorf("%w: %v", ErrInvalidScope, err)
		}
		return animation.NewScope(split, s.Priority), nil
	case s.Split != nil:
		return animation.NewScope(animation.Literal(*s.Split), s.Priority), nil
	case s.Priority != 0:
		return animation.Scope{}, fmt.Errorf("%w: priority %d without split", ErrInvalidScope, s.Priority)
	}
	return animation.Scope{}, nil
}

// StepsSpec holds a step specification.
type StepsSpec struct {
	Input keyframe.Input
}

// UnmarshalYAML accepts a scalar, a sequence of scalars or a mapping from
// percentages to scalars or null.
func (s *StepsSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			s.Input = nil
			return nil
		}
		s.Input = keyframe.Scalar(node.Value)
		return nil
	case yaml.SequenceNode:
		values := make([]string, len(node.Content))
		for i, n := range node.Content {
			if n.Kind != yaml.ScalarNode || isNull(n) {
				return fmt.Errorf("line %d: %w: list values must be scalars", n.Line, ErrInvalidSteps)
			}
			values[i] = n.Value
		}
		s.Input = keyframe.Values(values...)
		return nil
	case yaml.MappingNode:
		m := make(keyframe.Map, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			key, err := percent(k.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w: %v", k.Line, ErrInvalidSteps, err)
			}
			switch {
			case v.Kind == yaml.ScalarNode && isNull(v):
				m[key] = keyframe.Null()
			case v.Kind == yaml.ScalarNode:
				m[key] = keyframe.Just(keyframe.Value(v.Value))
			default:
				return fmt.Errorf("line %d: %w: step values must be scalars", v.Line, ErrInvalidSteps)
			}
		}
		s.Input = m
		return nil
	}
	return fmt.Errorf("line %d: %w", node.Line, ErrInvalidSteps)
}

func isNull(n *yaml.Node) bool {
	return n.ShortTag() == "!!null"
}

func percent(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	return strconv.ParseFloat(s, 64)
}

// Read reads the scenario file at path.
func Read(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario: %w", err)
	}
	sc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Decode parses a scenario. Unknown fields are errors.
func Decode(data []byte) (*Scenario, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoScenario
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	sc := &Scenario{}
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("cannot decode scenario: %w", err)
	}
	if sc.Version > Version {
		return nil, fmt.Errorf("scenario version %d not supported", sc.Version)
	}
	if sc.Text != nil {
		sc.Options.Text = sc.Text
	}
	tracer().Debugf("decoded scenario with %d animations", len(sc.Animations))
	return sc, nil
}

// Descriptors converts the animations of sc into descriptors.
func (sc *Scenario) Descriptors() ([]animation.Descriptor, error) {
	descs := make([]animation.Descriptor, 0, len(sc.Animations))
	for i, a := range sc.Animations {
		d, err := a.descriptor()
		if err != nil {
			return nil, fmt.Errorf("animation #%d: %w", i+1, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Compile runs sc through the compilation pipeline.
func (sc *Scenario) Compile() (*funtext.Text, error) {
	descs, err := sc.Descriptors()
	if err != nil {
		return nil, err
	}
	return funtext.Compile(descs, &sc.Options, ""), nil
}

func (a AnimationSpec) descriptor() (animation.Descriptor, error) {
	scope, err := a.Scope.Scope()
	if err != nil {
		return nil, err
	}
	props := animation.Properties{
		Scope:     scope,
		Delay:     a.Delay,
		Iteration: a.Iteration,
		Direction: a.Direction,
		Timing:    a.Timing,
		Fill:      a.Fill,
		State:     a.State,
		Sync:      a.Sync,
	}
	if a.Offset != nil {
		props.Offset = animation.Stagger(*a.Offset)
	}
	switch kind := strings.ToLower(strings.TrimSpace(a.Type)); kind {
	case "", "default":
		return &animation.Default{
			Properties: props,
			Property:   a.Property,
			Steps:      a.Steps.Input,
			Duration:   a.Duration,
		}, nil
	case string(animation.Transform), string(animation.Filter):
		subs := make([]animation.Sub, len(a.Animations))
		for i, s := range a.Animations {
			subs[i] = animation.Sub{
				Property: s.Property,
				Steps:    s.Steps.Input,
				Unit:     s.Unit,
				Duration: s.Duration,
				Delay:    s.Delay,
			}
		}
		return &animation.Composite{
			Properties: props,
			Kind:       animation.Kind(kind),
			Animations: subs,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, a.Type)
	}
}
