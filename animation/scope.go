package animation

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Split is the rule a scope uses to cut text into pieces. It is either a
// literal token or a regular expression. The empty literal means "cut
// between every character".
//
// Literal tokens are placed into the combined split pattern as they are,
// i.e. they are not escaped and may contain regular expression syntax.
type Split struct {
	literal string
	pattern *regexp2.Regexp
}

// Literal creates a split rule from a token.
func Literal(token string) Split {
	return Split{literal: token}
}

// Pattern creates a split rule from a compiled expression.
func Pattern(re *regexp2.Regexp) Split {
	return Split{pattern: re}
}

// CompilePattern compiles expr with ECMAScript semantics and wraps it into
// a split rule.
func CompilePattern(expr string) (Split, error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return Split{}, fmt.Errorf("cannot compile split pattern %q: %w", expr, err)
	}
	return Pattern(re), nil
}

// MustPattern is like CompilePattern, but panics on errors.
func MustPattern(expr string) Split {
	s, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// IsPattern is true for split rules created from regular expressions.
func (s Split) IsPattern() bool {
	return s.pattern != nil
}

// IsEmpty is true for the empty literal, i.e. splitting per character.
func (s Split) IsEmpty() bool {
	return s.pattern == nil && s.literal == ""
}

// Source returns the literal token or the source of the pattern.
func (s Split) Source() string {
	if s.pattern != nil {
		return s.pattern.String()
	}
	return s.literal
}

func (s Split) String() string {
	if s.pattern != nil {
		return "/" + s.pattern.String() + "/"
	}
	return fmt.Sprintf("%q", s.literal)
}

// Scope tells which pieces of text an animation applies to. Scopes with
// lower priority split the text first; scopes with equal priority share
// their fragments.
//
// The zero value is an unspecified scope, which resolves to Letter.
type Scope struct {
	split    Split
	priority int
	defined  bool
}

// NewScope creates a custom scope.
func NewScope(split Split, priority int) Scope {
	return Scope{split: split, priority: priority, defined: true}
}

// Scope presets.
var (
	// Word splits at blanks.
	Word = NewScope(Literal(" "), 1)
	// Letter splits between characters.
	Letter = NewScope(Literal(""), 3)
	// All never matches a split position, leaving the text in one piece.
	All = NewScope(MustPattern(`^(?=.)`), -10000)
)

var presets = map[string]Scope{
	"word":   Word,
	"letter": Letter,
	"all":    All,
}

// Preset returns the scope preset for name ("word", "letter", "all").
func Preset(name string) (Scope, bool) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Split returns the split rule of s.
func (s Scope) Split() Split {
	return s.split
}

// Priority returns the priority of s.
func (s Scope) Priority() int {
	return s.priority
}

// IsDefined is false for the zero scope.
func (s Scope) IsDefined() bool {
	return s.defined
}

// Resolve returns s, or Letter if s is unspecified.
func (s Scope) Resolve() Scope {
	if !s.defined {
		return Letter
	}
	return s
}

func (s Scope) String() string {
	if !s.defined {
		return "scope(unspecified)"
	}
	return fmt.Sprintf("scope(%s, %d)", s.split, s.priority)
}
