package keyframe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Steps maps percentage keys to steps. After normalization keys lie in
// [0,100]; sync remapping may transiently produce keys just outside of it.
type Steps map[float64]Step

// Keys returns the keys of s in ascending order.
func (s Steps) Keys() []float64 {
	keys := make([]float64, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// Clone returns a shallow copy of s.
func (s Steps) Clone() Steps {
	c := make(Steps, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Has is true if s contains key k.
func (s Steps) Has(k float64) bool {
	_, ok := s[k]
	return ok
}

// Bounds returns the smallest and the largest key of s. ok is false for
// empty maps.
func (s Steps) Bounds() (lo, hi float64, ok bool) {
	for k := range s {
		if !ok {
			lo, hi, ok = k, k, true
			continue
		}
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}
	return
}

// EnsureEdges makes sure keys 0 and 100 are present, adding null steps
// where they are missing.
func (s Steps) EnsureEdges() Steps {
	if !s.Has(0) {
		s[0] = Null()
	}
	if !s.Has(100) {
		s[100] = Null()
	}
	return s
}

func (s Steps) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", strconv.FormatFloat(k, 'f', -1, 64), s[k])
	}
	b.WriteByte('}')
	return b.String()
}

// --- Step specifications ---------------------------------------------------

// Input is a step specification as clients write it. Implementations are
// Scalar, List and Map.
type Input interface {
	normalize() Steps
}

// Scalar is a single target value, animated to from the inherited value.
type Scalar Value

// List is a sequence of values spread evenly over [0,100].
type List []Value

// Map is an explicit, possibly sparse, percentage map.
type Map map[float64]Step

// Values is a convenience constructor for lists.
func Values(vv ...string) List {
	l := make(List, len(vv))
	for i, v := range vv {
		l[i] = Value(v)
	}
	return l
}

// Normalize converts a step specification into a Steps map.
//
//     Scalar v          →  {0: null, 100: v}
//     List v0 … vN-1    →  {i·100/(N-1): vi},  a single value sits at 100
//     Map m             →  copy of m
//
// A nil input results in an empty map.
func Normalize(in Input) Steps {
	if in == nil {
		return Steps{}
	}
	return in.normalize()
}

func (s Scalar) normalize() Steps {
	return Steps{0: Null(), 100: Just(Value(s))}
}

func (l List) normalize() Steps {
	steps := make(Steps, len(l))
	switch n := len(l); n {
	case 0:
	case 1:
		steps[100] = Just(l[0])
	default:
		for i, v := range l {
			steps[float64(i)*100/float64(n-1)] = Just(v)
		}
	}
	return steps
}

func (m Map) normalize() Steps {
	return Steps(m).Clone()
}
