/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/funtext/dom/cssom"
)

// ErrNotWrapped is returned when appending a foreign stylesheet implementation.
var ErrNotWrapped = errors.New("stylesheet is not a douceur stylesheet")

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Other has to be a
// stylesheet of this package as well; anything else is ignored.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	switch o := other.(type) {
	case *CSSStyles:
		sheet.css.Rules = append(sheet.css.Rules, o.css.Rules...)
	case *AtRule:
		sheet.css.Rules = append(sheet.css.Rules, o.rule.Rules...)
	}
}

// Append is like AppendRules, but reports foreign stylesheets.
func (sheet *CSSStyles) Append(other cssom.StyleSheet) error {
	switch other.(type) {
	case *CSSStyles, *AtRule:
		sheet.AppendRules(other)
		return nil
	}
	return ErrNotWrapped
}

// Rules returns the qualified rules of a stylesheet, i.e. all rules
// except at-rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return qualified(sheet.css.Rules)
}

// Keyframes returns the @keyframes rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Keyframes() []cssom.Keyframes {
	return keyframes(sheet.css.Rules)
}

// AtRules returns the at-rules of a stylesheet named name, e.g. "@media".
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AtRules(name string) []cssom.AtRule {
	return atRules(sheet.css.Rules, name)
}

// Find returns the first rule with the given selector.
func (sheet *CSSStyles) Find(selector string) (cssom.Rule, bool) {
	for _, r := range sheet.Rules() {
		if r.Selector() == selector {
			return r, true
		}
	}
	return nil, false
}

var _ cssom.StyleSheet = &CSSStyles{}

func qualified(rules []*css.Rule) []cssom.Rule {
	rr := make([]cssom.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Kind == css.QualifiedRule {
			rr = append(rr, Rule(*r))
		}
	}
	return rr
}

func keyframes(rules []*css.Rule) []cssom.Keyframes {
	var kf []cssom.Keyframes
	for _, r := range rules {
		if r.Kind == css.AtRule && r.Name == "@keyframes" {
			kf = append(kf, Keyframes{rule: r})
		}
	}
	return kf
}

func atRules(rules []*css.Rule, name string) []cssom.AtRule {
	var ar []cssom.AtRule
	for _, r := range rules {
		if r.Kind == css.AtRule && r.Name == name {
			ar = append(ar, &AtRule{rule: r})
		}
	}
	return ar
}

// AtRule is an adapter for interface cssom.AtRule.
type AtRule struct {
	rule *css.Rule
}

// Prelude returns the prelude of the at-rule, e.g. the media query.
func (r *AtRule) Prelude() string {
	return strings.TrimSpace(r.rule.Prelude)
}

// Empty checks if the at-rule contains any rules.
func (r *AtRule) Empty() bool {
	return len(r.rule.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (r *AtRule) AppendRules(other cssom.StyleSheet) {
	switch o := other.(type) {
	case *CSSStyles:
		r.rule.Rules = append(r.rule.Rules, o.css.Rules...)
	case *AtRule:
		r.rule.Rules = append(r.rule.Rules, o.rule.Rules...)
	}
}

// Rules returns the nested qualified rules.
func (r *AtRule) Rules() []cssom.Rule {
	return qualified(r.rule.Rules)
}

// Keyframes returns nested @keyframes rules.
func (r *AtRule) Keyframes() []cssom.Keyframes {
	return keyframes(r.rule.Rules)
}

// AtRules returns nested at-rules.
func (r *AtRule) AtRules(name string) []cssom.AtRule {
	return atRules(r.rule.Rules, name)
}

var _ cssom.AtRule = &AtRule{}

// Keyframes is an adapter for interface cssom.Keyframes.
type Keyframes struct {
	rule *css.Rule
}

// Name returns the name of the keyframes.
func (k Keyframes) Name() string {
	return strings.TrimSpace(k.rule.Prelude)
}

// Steps returns the keyframe steps.
func (k Keyframes) Steps() []cssom.Rule {
	return qualified(k.rule.Rules)
}

var _ cssom.Keyframes = Keyframes{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.Prelude)
}

// Properties returns the property keys of a rule,
// e.g. "animation-name"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "1.5s"
func (r Rule) Value(key string) string {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}
