package segment

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/funtext/animation"
)

// CSS classes of fragments.
const (
	RootClass      = "funtext"
	ContainerClass = RootClass + "__container"
	TextClass      = RootClass + "__text"
	BreakClass     = RootClass + "__break"
)

// ScopeClass is the class of fragments cut by the scope with the given
// priority.
func ScopeClass(priority int) string {
	return fmt.Sprintf("%s--scope%d", RootClass, priority)
}

// Role tells what a fragment holds.
type Role int

// Fragment roles.
const (
	TextLeaf  Role = iota // holds text
	Container             // holds child fragments
	LineBreak             // a line break, without content
)

func (r Role) String() string {
	switch r {
	case TextLeaf:
		return "text"
	case Container:
		return "container"
	case LineBreak:
		return "break"
	}
	return "?"
}

// Variable is a CSS custom property set on a fragment.
type Variable struct {
	Name  string
	Value string
}

// Fragment is a node of the segmented text.
type Fragment struct {
	Tag       string
	Role      Role
	Classes   []string
	Text      string      // content of text leaves
	Children  []*Fragment // content of containers
	Variables []Variable

	OnStart     []animation.Callback
	OnEnd       []animation.Callback
	OnIteration []animation.Callback
	OnCancel    []animation.Callback
}

// IsLeaf is true for text leaves and line breaks.
func (f *Fragment) IsLeaf() bool {
	return f.Role != Container
}

// HasClass is true if f carries class cls.
func (f *Fragment) HasClass(cls string) bool {
	return slices.Contains(f.Classes, cls)
}

// Variable returns the value of custom property name.
func (f *Fragment) Variable(name string) (string, bool) {
	for _, v := range f.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Walk calls visit for f and all its descendants, depth first.
func (f *Fragment) Walk(visit func(f *Fragment, depth int)) {
	f.walk(visit, 0)
}

func (f *Fragment) walk(visit func(*Fragment, int), depth int) {
	visit(f, depth)
	for _, ch := range f.Children {
		ch.walk(visit, depth+1)
	}
}

// Leaves returns the leaves below f (or f itself), in text order.
func (f *Fragment) Leaves() []*Fragment {
	var leaves []*Fragment
	f.Walk(func(n *Fragment, _ int) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// Count returns the number of fragments in the tree rooted at f.
func (f *Fragment) Count() int {
	n := 0
	f.Walk(func(*Fragment, int) { n++ })
	return n
}

// Content reconstructs the text of f.
func (f *Fragment) Content() string {
	var b strings.Builder
	for _, leaf := range f.Leaves() {
		if leaf.Role == LineBreak {
			b.WriteByte('\n')
		} else {
			b.WriteString(leaf.Text)
		}
	}
	return b.String()
}

func (f *Fragment) String() string {
	if f.Role == TextLeaf {
		return fmt.Sprintf("<%s %q>", f.Tag, f.Text)
	}
	return fmt.Sprintf("<%s %s>", f.Tag, f.Role)
}

// clone copies f without its children.
func (f *Fragment) clone() *Fragment {
	return &Fragment{
		Tag:         f.Tag,
		Role:        f.Role,
		Classes:     slices.Clone(f.Classes),
		Text:        f.Text,
		Variables:   slices.Clone(f.Variables),
		OnStart:     slices.Clone(f.OnStart),
		OnEnd:       slices.Clone(f.OnEnd),
		OnIteration: slices.Clone(f.OnIteration),
		OnCancel:    slices.Clone(f.OnCancel),
	}
}
