package segment

import (
	"slices"
	"strconv"

	"github.com/npillmayer/funtext/animation"
	"github.com/npillmayer/funtext/options"
)

// Segment cuts text into fragments for the tracks in groups. Scopes are
// applied by ascending priority, each pass rebuilding the tree and
// subdividing its text leaves. The returned root carries the play state
// variables of all tracks.
//
// Without any tracks the root is a single text leaf.
func Segment(text string, groups animation.Groups, opts options.Options) *Fragment {
	root := &Fragment{
		Tag:     opts.Tags.Text,
		Role:    TextLeaf,
		Classes: []string{RootClass, TextClass},
		Text:    text,
	}
	priorities := groups.Priorities()
	for _, p := range priorities {
		for _, t := range groups[p] {
			root.Variables = append(root.Variables, Variable{
				Name:  animation.PlayStateVariable(p, t.Property),
				Value: string(t.State),
			})
		}
	}
	for _, p := range priorities {
		ps := &pass{
			priority: p,
			tracks:   groups[p],
			splitter: newSplitter(groups[p]),
			tags:     opts.Tags,
			maxDepth: -1,
		}
		var n int
		root, n = ps.rebuild(root, 0, 0)
		ps.attachCallbacks()
		tracer().Debugf("scope %d: %d fragments at depth %d", p, n, ps.maxDepth)
	}
	if !root.HasClass(ContainerClass) {
		root.Classes = append(root.Classes, ContainerClass)
	}
	return root
}

// pass is a single segmentation pass for one priority.
type pass struct {
	priority    int
	tracks      []*animation.Track
	splitter    *splitter
	tags        options.Tags
	maxDepth    int
	first, last *Fragment // first and last fragment at the deepest level
}

// rebuild returns a copy of f with its text leaves split. index counts
// the leaves of this pass; the updated count is returned.
func (ps *pass) rebuild(f *Fragment, depth, index int) (*Fragment, int) {
	nf := f.clone()
	if depth > ps.maxDepth {
		ps.maxDepth = depth
		ps.first, ps.last = nf, nf
	} else if depth == ps.maxDepth {
		ps.last = nf
	}
	switch f.Role {
	case LineBreak:
		return nf, index + 1
	case TextLeaf:
		return nf, ps.split(nf, index)
	}
	nf.Children = make([]*Fragment, 0, len(f.Children))
	for _, ch := range f.Children {
		var c *Fragment
		c, index = ps.rebuild(ch, depth+1, index)
		nf.Children = append(nf.Children, c)
	}
	return nf, index
}

// split turns text leaf f into a container of pieces.
func (ps *pass) split(f *Fragment, index int) int {
	pieces := ps.splitter.split(f.Text)
	f.Tag = ps.tags.Container
	f.Role = Container
	f.Text = ""
	f.Classes = slices.DeleteFunc(f.Classes, func(cls string) bool { return cls == TextClass })
	f.Classes = append(f.Classes, ContainerClass)
	f.Children = make([]*Fragment, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		leaf := &Fragment{
			Tag:     ps.tags.Text,
			Role:    TextLeaf,
			Classes: []string{ScopeClass(ps.priority)},
			Text:    piece,
		}
		if piece == "\n" {
			leaf.Tag, leaf.Role, leaf.Text = ps.tags.Break, LineBreak, ""
			leaf.Classes = append(leaf.Classes, BreakClass)
		} else {
			leaf.Classes = append(leaf.Classes, TextClass)
		}
		for _, t := range ps.tracks {
			leaf.Variables = append(leaf.Variables, Variable{
				Name:  animation.OffsetVariable(t.Priority(), t.Property),
				Value: seconds(t.Offset, index, ps.priority),
			})
		}
		f.Children = append(f.Children, leaf)
		index++
	}
	return index
}

func seconds(offset animation.Offset, index, priority int) string {
	o := 0.0
	if offset != nil {
		o = offset(index, priority)
	}
	return strconv.FormatFloat(o, 'f', -1, 64) + "s"
}

// attachCallbacks hands the start hooks of the pass's tracks to the first
// fragment below the first container of the deepest level, and the end
// hooks to the last fragment below the last one.
func (ps *pass) attachCallbacks() {
	if c := ps.first; c != nil && c.Role == Container && len(c.Children) > 0 {
		leaf := c.Children[0]
		for _, t := range ps.tracks {
			leaf.OnStart = appendCallback(leaf.OnStart, t.OnStart)
			leaf.OnIteration = appendCallback(leaf.OnIteration, t.OnIterationStart)
			leaf.OnCancel = appendCallback(leaf.OnCancel, t.OnCancel)
		}
	}
	if c := ps.last; c != nil && c.Role == Container && len(c.Children) > 0 {
		leaf := c.Children[len(c.Children)-1]
		for _, t := range ps.tracks {
			leaf.OnEnd = appendCallback(leaf.OnEnd, t.OnEnd)
			leaf.OnIteration = appendCallback(leaf.OnIteration, t.OnIterationEnd)
		}
	}
}

func appendCallback(cbs []animation.Callback, cb animation.Callback) []animation.Callback {
	if cb == nil {
		return cbs
	}
	return append(cbs, cb)
}
