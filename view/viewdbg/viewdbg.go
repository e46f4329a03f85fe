/*
Package viewdbg implements helpers to debug a view tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package viewdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/raitom/teacup/style"
	"github.com/raitom/teacup/view"
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented text representation of the view tree below root,
// listing the effective local properties of each view.
func Dump(root view.Viewer) string {
	if root == nil {
		return "<empty>\n"
	}
	printer := tp.New()
	dump(printer, root.AsView())
	return printer.String()
}

func dump(branch tp.Tree, v *view.View) {
	b := branch.AddBranch(label(v))
	dumpProperties(b, v)
	for _, sv := range v.Subviews() {
		dump(b, sv)
	}
}

func dumpProperties(branch tp.Tree, v *view.View) {
	for _, kv := range v.Properties().Properties() {
		branch.AddMetaNode(kv.Key, kv.Value.String())
	}
}

func label(v *view.View) string {
	if v.Stylename() == "" {
		return v.Kind()
	}
	return fmt.Sprintf("%s %q", v.Kind(), v.Stylename())
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Keys     []string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a view tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root view, a Writer
// and an optional list of property keys. The diagram will include the
// values of these properties for every view; if keys is empty, all local
// properties are included.
func ToGraphViz(root view.Viewer, w io.Writer, keys []string) error {
	if root == nil {
		return fmt.Errorf("viewdbg: no root view")
	}
	head := template.Must(template.New("views").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica", Keys: keys}
	gparams.NodeTmpl = template.Must(template.New("viewnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(viewNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("viewedge").Parse(viewEdgeTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*view.View]string, 64)
	if err := nodes(root.AsView(), w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a view and a testing.T, it will
// create a GraphViz image of the view tree below root and write it to a
// file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root view.Viewer, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "views.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing view digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing view tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	V     *view.View
	Name  string
	Props []style.KeyValue
}

type edge struct {
	N1, N2 string
}

func nodes(v *view.View, w io.Writer, dict map[*view.View]string, gparams *graphParamsType) error {
	if err := viewNode(v, w, dict, gparams); err != nil {
		return err
	}
	for _, sv := range v.Subviews() {
		if err := nodes(sv, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{dict[v], dict[sv]}); err != nil {
			return err
		}
	}
	return nil
}

func viewNode(v *view.View, w io.Writer, dict map[*view.View]string, gparams *graphParamsType) error {
	name := dict[v]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[v] = name
	}
	n := &node{V: v, Name: name}
	if len(gparams.Keys) == 0 {
		n.Props = v.Properties().Properties()
	} else {
		for _, key := range gparams.Keys {
			n.Props = append(n.Props, style.KeyValue{Key: key, Value: v.PropertyValue(key)})
		}
	}
	return gparams.NodeTmpl.Execute(w, n)
}

func shortText(p style.Property) string {
	s := p.String()
	if len(s) > 16 {
		s = s[:16] + "..."
	}
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "<", "&lt;", -1)
	s = strings.Replace(s, ">", "&gt;", -1)
	s = strings.Replace(s, "\n", `\\n`, -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const viewNodeTmpl = `{{ .Name }}	[ style="filled" penwidth=1 fillcolor="lightblue3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="lightblue3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .V.Kind }}{{ with .V.Stylename }} .{{ . }}{{ end }}</font></td></tr>
      {{- range .Props }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ shortstring .Value }}</td></tr>
      {{- end }}
    </table>> ] ;
`

const viewEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
