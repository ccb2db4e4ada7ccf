/*
Package domdbg implements helpers to debug widget trees.

Widget trees are exported as GraphViz (DOT) diagrams. Widgets carrying a hit
marker are filled in a signal color; optionally the local style properties
of each widget are shown in property-group tables next to it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

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

	"github.com/npillmayer/querysandbox/style"
	"github.com/npillmayer/querysandbox/style/css"
	"github.com/npillmayer/querysandbox/widget"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	Title          string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// DefaultGroups are the style property groups shown if a client does not
// provide a list of groups.
var DefaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGColor,
}

// ToGraphViz outputs a diagram for a widget tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root widget, a Writer,
// and optionally the styles of the tree together with a list of style
// parameter groups. The diagram will include all local styles belonging
// to one of the parameter groups.
//
// If styles is nil, no style tables are drawn. If the client does not
// provide a list of style groups, DefaultGroups will be used.
func ToGraphViz(root *widget.Widget, w io.Writer, styles *css.Styles, styleGroups []string) error {
	if root == nil {
		return fmt.Errorf("no widget tree to draw")
	}
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Title: root.Label()}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = DefaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	d := &drawing{w: w, names: make(map[*widget.Widget]string), params: &gparams, styles: styles}
	if err = d.nodes(root); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a widget tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If GraphViz is not installed, the test is skipped. If an error occurs,
// t.Error(…) will be set, causing the test to fail.
func Dotty(root *widget.Widget, styles *css.Styles, t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz not installed")
	}
	tmpfile, err := os.CreateTemp(".", "widgets.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing widget digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile, styles, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing widget tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type drawing struct {
	w      io.Writer
	names  map[*widget.Widget]string
	params *graphParamsType
	styles *css.Styles
}

type node struct {
	W    *widget.Widget
	Name string
}

func (d *drawing) nodes(w *widget.Widget) error {
	if err := d.domNode(w); err != nil {
		return err
	}
	for _, ch := range w.Children() {
		if err := d.nodes(ch); err != nil {
			return err
		}
		if err := d.domEdge(w, ch); err != nil {
			return err
		}
	}
	return nil
}

func (d *drawing) name(w *widget.Widget) string {
	name := d.names[w]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(d.names)+1)
		d.names[w] = name
	}
	return name
}

func (d *drawing) domNode(w *widget.Widget) error {
	if err := d.params.NodeTmpl.Execute(d.w, &node{w, d.name(w)}); err != nil {
		return err
	}
	return d.domStyles(w)
}

func (d *drawing) domStyles(w *widget.Widget) error {
	if d.styles == nil {
		return nil
	}
	pmap := d.styles.Local(w)
	var prev *style.PropertyGroup
	for _, s := range d.params.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := d.params.StylegroupTmpl.Execute(d.w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = d.params.PgedgeTmpl.Execute(d.w, pgedge{d.name(w), pg})
		} else {
			err = d.params.PgpgTmpl.Execute(d.w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func (d *drawing) domEdge(w1, w2 *widget.Widget) error {
	e := edge{node{w1, d.name(w1)}, node{w2, d.name(w2)}}
	return d.params.EdgeTmpl.Execute(d.w, e)
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(w *widget.Widget) string {
	text := w.Text()
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label={{ printf "%q" .Title }} splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .W.Hit }}
{{ .Name }}	[ label={{ printf "%q" .W.Label }} shape=ellipse style=filled fillcolor=palegreen3 penwidth=2 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .W.Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}{{ if .W.Text }}
{{ .Name }}t	[ label={{ shortstring .W }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ .Name }} -> {{ .Name }}t [dir=none weight=1] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
