package dom

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/funtext/options"
	"github.com/npillmayer/funtext/segment"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoFragments is returned when rendering without a fragment tree.
var ErrNoFragments = errors.New("no fragments to render")

// Build creates HTML nodes for the fragment tree rooted at root. The first
// node is the element for root. If aria support is switched on, the root
// is hidden from assistive technology and a second node carries the
// plain text as an aria label.
func Build(root *segment.Fragment, opts options.Options) []*html.Node {
	if root == nil {
		return nil
	}
	el := element(root)
	nodes := []*html.Node{el}
	if opts.Accessibility.Aria {
		aria := newElement("p")
		aria.Attr = append(aria.Attr, html.Attribute{Key: "aria-label", Val: opts.Text})
		nodes = append(nodes, aria)
		el.Attr = append(el.Attr, html.Attribute{Key: "aria-hidden", Val: "true"})
	}
	keys := make([]string, 0, len(opts.Attributes))
	for k := range opts.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		setAttr(el, k, opts.Attributes[k])
	}
	return nodes
}

func element(f *segment.Fragment) *html.Node {
	el := newElement(f.Tag)
	if len(f.Classes) > 0 {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: strings.Join(f.Classes, " ")})
	}
	if len(f.Variables) > 0 {
		decls := make([]string, len(f.Variables))
		for i, v := range f.Variables {
			decls[i] = v.Name + ": " + v.Value
		}
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: strings.Join(decls, "; ")})
	}
	switch f.Role {
	case segment.TextLeaf:
		appendText(el, f.Text)
	case segment.Container:
		for _, ch := range f.Children {
			el.AppendChild(element(ch))
		}
	}
	return el
}

// appendText adds text to el, turning line feeds into <br> elements.
func appendText(el *html.Node, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			el.AppendChild(newElement("br"))
		}
		if line != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
	}
}

func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

func setAttr(el *html.Node, key, val string) {
	for i := range el.Attr {
		if el.Attr[i].Key == key {
			el.Attr[i].Val = val
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: key, Val: val})
}

// Render writes nodes, followed by a <style> element with css (if not empty).
func Render(w io.Writer, nodes []*html.Node, css string) error {
	if len(nodes) == 0 {
		return ErrNoFragments
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("cannot render markup: %w", err)
		}
	}
	if css == "" {
		return nil
	}
	if err := html.Render(w, styleElement(css)); err != nil {
		return fmt.Errorf("cannot render style: %w", err)
	}
	return nil
}

func styleElement(css string) *html.Node {
	style := newElement("style")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return style
}

// Document wraps nodes and css into a standalone HTML page.
func Document(title string, nodes []*html.Node, css string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := newElement("html")
	head := newElement("head")
	meta := newElement("meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	t := newElement("title")
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	if css != "" {
		head.AppendChild(styleElement(css))
	}
	body := newElement("body")
	for _, n := range nodes {
		body.AppendChild(n)
	}
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	tracer().Debugf("created document %q with %d top-level nodes", title, len(nodes))
	return doc
}

// Select returns all nodes in the trees rooted at nodes which match the
// CSS selector.
func Select(nodes []*html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	var matches []*html.Node
	for _, n := range nodes {
		matches = append(matches, sel.MatchAll(n)...)
	}
	return matches, nil
}

// Text returns the text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// Attr returns the value of attribute key of n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
