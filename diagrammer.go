package vercompat

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

// Diagrammer writes the units, scopes and tasks of a project as graphviz
// digraph. Units are drawn as clusters of their scopes.
type Diagrammer struct {
	RankDir string
	// Tasks selects whether tasks and their dependencies are drawn.
	Tasks bool
}

func (dia *Diagrammer) WriteDot(w io.Writer, prj *vckore.Project) (err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()

	dia.startDot(w, prj)
	inUnit := make(map[*vckore.Scope]bool)
	for _, u := range prj.Units() {
		dia.unit(w, u, inUnit)
	}
	for _, s := range prj.Scopes() {
		if !inUnit[s] {
			dia.scopeNode(w, s, "\t")
		}
	}
	for _, s := range prj.Scopes() {
		dia.scopeEdges(w, s)
	}
	if dia.Tasks {
		for _, t := range prj.Tasks() {
			dia.task(w, t)
		}
	}
	dia.endDot(w)
	return nil
}

func (dia *Diagrammer) startDot(w io.Writer, prj *vckore.Project) {
	fmt.Fprintf(w, "digraph \"%s\" {\n", escDotID(prj.Name()))
	if dia.RankDir != "" {
		fmt.Fprintf(w, "\trankdir=\"%s\"\n", escDotID(dia.RankDir))
	}
}

func (dia *Diagrammer) endDot(w io.Writer) {
	fmt.Fprintln(w, "}")
}

func (dia *Diagrammer) unit(w io.Writer, u *vckore.Unit, inUnit map[*vckore.Scope]bool) {
	fmt.Fprintf(w, "\tsubgraph \"cluster_%s\" {\n", escDotID(u.Name()))
	fmt.Fprintf(w, "\t\tlabel=\"%s\";\n", escDotID(u.Name()))
	for _, k := range vckore.ScopeKinds() {
		s := u.Scope(k)
		inUnit[s] = true
		dia.scopeNode(w, s, "\t\t")
	}
	fmt.Fprintln(w, "\t}")
}

func (dia *Diagrammer) scopeNode(w io.Writer, s *vckore.Scope, indent string) {
	style := "solid"
	if !s.CanBeResolved {
		style = "dashed"
	}
	fmt.Fprintf(w, "%s\"%p\" [shape=ellipse,style=\"%s\",label=\"%s\"];\n",
		indent,
		s,
		style,
		escDotID(s.Name()),
	)
}

func (dia *Diagrammer) scopeEdges(w io.Writer, s *vckore.Scope) {
	for _, e := range s.ExtendsFrom() {
		fmt.Fprintf(w, "\t\"%p\" -> \"%p\";\n", s, e)
	}
	for _, d := range s.Dependencies() {
		out, ok := d.Files.(*vckore.Output)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\t\"%p\" -> \"%p\" [style=dotted,label=\"output\"];\n",
			s,
			out.Unit().Scope(vckore.CompileClasspath),
		)
	}
}

func (dia *Diagrammer) task(w io.Writer, t *vckore.Task) {
	style := "rounded"
	if t.Group == vckore.VerificationGroup {
		style = "rounded,bold"
	}
	fmt.Fprintf(w, "\t\"%p\" [shape=box,style=\"%s\",label=\"%s\"];\n",
		t,
		style,
		escDotID(t.Name()),
	)
	deps, err := t.TaskDependencies()
	if err != nil {
		panic(err)
	}
	for _, d := range deps {
		fmt.Fprintf(w, "\t\"%p\" -> \"%p\" [color=gray];\n", t, d)
	}
	if t.Classpath != nil && t.Kind == vckore.TestTask {
		for _, s := range classpathScopes(t.Classpath) {
			fmt.Fprintf(w, "\t\"%p\" -> \"%p\" [style=dashed,label=\"classpath\"];\n", t, s)
		}
	}
}

func classpathScopes(fc vckore.FileCollection) (ss []*vckore.Scope) {
	for _, p := range vckore.Parts(fc) {
		switch p := p.(type) {
		case *vckore.Scope:
			ss = append(ss, p)
		case *vckore.Output:
		default:
			if parts := vckore.Parts(p); len(parts) > 1 {
				ss = append(ss, classpathScopes(p)...)
			}
		}
	}
	return ss
}

func escDotID(id string) string {
	return strings.ReplaceAll(id, "\"", "\\\"")
}
