package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Generated CSS is plain text; clients wishing to inspect it parse it
// with a concrete implementation of this interface (e.g., see package
// douceuradapter).
//
// See interfaces Rule and Keyframes.
type StyleSheet interface {
	AppendRules(StyleSheet)       // append rules from another stylesheet
	Empty() bool                  // does this stylesheet contain any rules?
	Rules() []Rule                // all the style rules of a stylesheet
	Keyframes() []Keyframes       // all the @keyframes rules of a stylesheet
	AtRules(name string) []AtRule // at-rules with a block of rules, e.g. "@media"
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "animation-name"
	Value(string) string     // property value for key, e.g. "1.5s"
	IsImportant(string) bool // is property key marked as important?
}

// Keyframes is a @keyframes rule. Its steps are rules with a percentage
// selector, e.g. "50%".
type Keyframes interface {
	Name() string
	Steps() []Rule
}

// AtRule is an at-rule holding nested rules, e.g. a @media rule.
type AtRule interface {
	StyleSheet
	Prelude() string // e.g. "(prefers-color-scheme: dark)"
}
