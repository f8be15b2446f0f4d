package segment

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/funtext/animation"
	"github.com/rivo/uniseg"
)

// splitter cuts text the way all split rules of one priority demand.
// Either it splits per character, or along a combined pattern which
// always includes line breaks.
type splitter struct {
	perChar bool
	re      *regexp2.Regexp
}

const lineBreakPattern = `(\n)`

func newSplitter(tracks []*animation.Track) *splitter {
	sources := []string{lineBreakPattern}
	for _, t := range tracks {
		split := t.Scope.Split()
		switch {
		case split.IsEmpty():
			return &splitter{perChar: true}
		case split.IsPattern():
			sources = append(sources, split.Source())
		default:
			sources = append(sources, "("+split.Source()+")")
		}
	}
	expr := strings.Join(sources, "|")
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		tracer().Errorf("cannot compile split pattern %q, splitting at line breaks only: %v", expr, err)
		re = regexp2.MustCompile(lineBreakPattern, regexp2.ECMAScript)
	}
	return &splitter{re: re}
}

// split cuts s into pieces. Matched separators are returned as pieces of
// their own if the pattern captures them. Empty pieces may occur.
func (sp *splitter) split(s string) []string {
	if sp.perChar {
		return characters(s)
	}
	runes := []rune(s)
	var pieces []string
	last := 0
	m, err := sp.re.FindRunesMatch(runes)
	for m != nil && err == nil {
		start, end := m.Index, m.Index+m.Length
		if m.Length == 0 && (start == last || start >= len(runes)) {
			m, err = sp.re.FindNextMatch(m)
			continue
		}
		pieces = append(pieces, string(runes[last:start]))
		groups := m.Groups()
		for i := 1; i < len(groups); i++ {
			if len(groups[i].Captures) > 0 {
				pieces = append(pieces, groups[i].String())
			}
		}
		last = end
		m, err = sp.re.FindNextMatch(m)
	}
	if err != nil {
		tracer().Errorf("splitting text: %v", err)
	}
	return append(pieces, string(runes[last:]))
}

// characters cuts s into user-perceived characters. A CR/LF pair is cut
// in two, leaving the line feed as a line break.
func characters(s string) []string {
	var pieces []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		if c == "\r\n" {
			pieces = append(pieces, "\r", "\n")
			continue
		}
		pieces = append(pieces, c)
	}
	return pieces
}
