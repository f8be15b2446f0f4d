package keyframe

import (
	"strconv"
	"strings"
)

// Value is the raw value of a keyframe step, e.g. "red", "10px" or "0.5".
// Numbers are kept in their textual form; see Number and Float.
type Value string

// Number creates a Value from a float, using the shortest representation
// that round-trips.
func Number(x float64) Value {
	return Value(strconv.FormatFloat(x, 'f', -1, 64))
}

func (v Value) String() string {
	return string(v)
}

// Float interprets v as a number. An empty value counts as 0.
// Values with units or keywords ("10px", "red") are not numeric.
func (v Value) Float() (float64, bool) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0, true
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

// --- Nullable steps --------------------------------------------------------

// Step is either a value or null. A null step has no explicit value; the
// renderer substitutes the property's default for it.
type Step struct {
	value Value
	tag   bool
}

// Just wraps a value as a step.
func Just(v Value) Step {
	return Step{value: v, tag: true}
}

// Null returns a step without a value.
func Null() Step {
	return Step{}
}

// IsNull is true for steps without a value.
func (s Step) IsNull() bool {
	return !s.tag
}

// WithDefault returns the step's value, or def for null steps.
func (s Step) WithDefault(def Value) Value {
	if s.tag {
		return s.value
	}
	return def
}

// Map applies f to the value of a non-null step.
func (s Step) Map(f func(Value) Value) Step {
	if s.tag {
		return Just(f(s.value))
	}
	return s
}

func (s Step) String() string {
	if s.tag {
		return strconv.Quote(string(s.value))
	}
	return "null"
}

// Match returns a matcher for s:
//
//     var v keyframe.Value
//     switch m := step.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Null():
//         …
//     }
//
func (s Step) Match() Matcher {
	return matcher{s: s}
}

// Matcher is a helper type for pattern matching on steps. See Step.Match.
type Matcher interface {
	Just(*Value) Matcher
	Null() Matcher
}

type matcher struct {
	s Step
}

func (m matcher) Just(v *Value) Matcher {
	if m.s.tag {
		*v = m.s.value
		return m
	}
	return nil
}

func (m matcher) Null() Matcher {
	if !m.s.tag {
		return m
	}
	return nil
}
