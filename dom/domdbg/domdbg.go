/*
Package domdbg implements helpers to debug a fragment tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/funtext/segment"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname      string
	WithVariables bool
	NodeTmpl      *template.Template
	EdgeTmpl      *template.Template
	VarsTmpl      *template.Template
	VarsEdgeTmpl  *template.Template
}

// ToGraphViz outputs a diagram for a fragment tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root fragment and a
// Writer. If withVariables is set, the diagram will include the CSS
// custom properties of every fragment.
func ToGraphViz(root *segment.Fragment, w io.Writer, withVariables bool) {
	tmpl, err := template.New("fragments").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica", WithVariables: withVariables}
	gparams.NodeTmpl, _ = template.New("fragment").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"classes":     func(f *segment.Fragment) string { return strings.Join(f.Classes, " ") },
		}).Parse(fragmentTmpl)
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.VarsTmpl = template.Must(template.New("vars").Parse(varsTmpl))
	gparams.VarsEdgeTmpl = template.Must(template.New("varsedge").Parse(varsEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*segment.Fragment]string, 256)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a fragment tree and a testing.T, it
// will create a Graphiviz image of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *segment.Fragment, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "fragments.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing fragment digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile, true)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing fragment tree image\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Sprint renders a fragment tree as indented text.
func Sprint(root *segment.Fragment) string {
	tp := treeprint.NewWithRoot(label(root))
	for _, ch := range root.Children {
		branch(tp, ch)
	}
	return tp.String()
}

func branch(tree treeprint.Tree, f *segment.Fragment) {
	if f.IsLeaf() {
		tree.AddNode(label(f))
		return
	}
	b := tree.AddBranch(label(f))
	for _, ch := range f.Children {
		branch(b, ch)
	}
}

func label(f *segment.Fragment) string {
	var s string
	switch f.Role {
	case segment.TextLeaf:
		s = fmt.Sprintf("%s %q", f.Tag, f.Text)
	case segment.LineBreak:
		s = f.Tag
	default:
		s = fmt.Sprintf("%s (%d)", f.Tag, len(f.Children))
	}
	if len(f.Classes) > 0 {
		s += " ." + strings.Join(f.Classes, ".")
	}
	return s
}

type node struct {
	F    *segment.Fragment
	Name string
}

func nodes(f *segment.Fragment, w io.Writer, dict map[*segment.Fragment]string, gparams *graphParamsType) {
	fragmentNode(f, w, dict, gparams)
	for _, ch := range f.Children {
		nodes(ch, w, dict, gparams)
		fragmentEdge(f, ch, w, dict, gparams)
	}
}

func fragmentNode(f *segment.Fragment, w io.Writer, dict map[*segment.Fragment]string, gparams *graphParamsType) {
	name := dict[f]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[f] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{f, name}); err != nil {
		panic(err)
	}
	if gparams.WithVariables && len(f.Variables) > 0 {
		if err := gparams.VarsTmpl.Execute(w, &node{f, name}); err != nil {
			panic(err)
		}
		if err := gparams.VarsEdgeTmpl.Execute(w, &node{f, name}); err != nil {
			panic(err)
		}
	}
}

type edge struct {
	N1, N2 node
}

func fragmentEdge(f1 *segment.Fragment, f2 *segment.Fragment, w io.Writer,
	dict map[*segment.Fragment]string, gparams *graphParamsType) {
	//
	e := edge{node{f1, dict[f1]}, node{f2, dict[f2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(f *segment.Fragment) string {
	s := "\"\\\""
	if r := []rune(f.Text); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += f.Text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const fragmentTmpl = `{{ if eq .F.Role 0 }}
{{ .Name }}	[ label={{ shortstring .F }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 tooltip="{{ classes .F }}" ] ;
{{ else if eq .F.Role 2 }}
{{ .Name }}	[ label="{{ .F.Tag }}" shape=point tooltip="{{ classes .F }}" ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .F.Tag }} shape=ellipse style=filled fillcolor=lightblue3 tooltip="{{ classes .F }}" ] ;
{{ end }}
`

const varsTmpl = `vars{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .F.Variables }}
      <tr><td align="right">{{ .Name }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const varsEdgeTmpl = `{{ .Name }} -> vars{{ .Name }} [dir=none weight=1 style="dashed"] ;
`
