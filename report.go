package vercompat

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

// TaskReport lists tasks by group.
type TaskReport struct {
	// Groups to list in this order. All groups if empty.
	Groups []string
	// Other also lists tasks without a group.
	Other bool
	// Details adds dependencies, test classes and classpath of each task.
	Details bool
	// Heading formats group headings. Nil uses the group title.
	Heading func(title string) string
}

func (r *TaskReport) Write(w io.Writer, prj *vckore.Project) error {
	groups := r.Groups
	if len(groups) == 0 {
		groups = prj.Groups()
	}
	if r.Other && !slices.Contains(groups, "") {
		groups = append(slices.Clone(groups), "")
	}
	first := true
	for _, g := range groups {
		tasks := prj.TasksInGroup(g)
		if len(tasks) == 0 {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if err := r.group(w, g, tasks); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskReport) group(w io.Writer, group string, tasks []*vckore.Task) error {
	title := GroupTitle(group)
	head := title
	if r.Heading != nil {
		head = r.Heading(title)
	}
	fmt.Fprintln(w, head)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	for _, t := range tasks {
		if t.Description == "" {
			fmt.Fprintln(w, t.Name())
		} else {
			fmt.Fprintf(w, "%s - %s\n", t.Name(), t.Description)
		}
		if r.Details {
			if err := writeTaskDetails(newPrefixWriter(w, "    "), t); err != nil {
				return err
			}
		}
	}
	return nil
}

// GroupTitle returns the heading for tasks in group like "Verification
// tasks".
func GroupTitle(group string) string {
	if group == "" {
		return "Other tasks"
	}
	return Capitalize(group) + " tasks"
}

func writeTaskDetails(w io.Writer, t *vckore.Task) error {
	deps, err := t.TaskDependencies()
	if err != nil {
		return err
	}
	if len(deps) > 0 {
		names := make([]string, len(deps))
		for i, d := range deps {
			names[i] = d.Name()
		}
		fmt.Fprintf(w, "depends on: %s\n", strings.Join(names, ", "))
	}
	if t.TestClassesDirs != nil {
		fmt.Fprintln(w, "test classes:")
		listFiles(w, t.TestClassesDirs.Files())
	}
	if t.Classpath != nil {
		fmt.Fprintln(w, "classpath:")
		listFiles(w, t.Classpath.Files())
	}
	if len(t.Inputs()) > 0 {
		fmt.Fprintln(w, "inputs:")
		listFiles(w, t.InputFiles())
	}
	for _, p := range t.SystemProperties() {
		fmt.Fprintf(w, "-D%s=%s\n", p.Key, p.Value)
	}
	if t.Classpath == nil {
		return nil
	}
	var constraints []string
	for _, s := range classpathScopes(t.Classpath) {
		for _, c := range s.AllConstraints() {
			if !slices.Contains(constraints, c) {
				constraints = append(constraints, c)
			}
		}
	}
	for _, c := range constraints {
		fmt.Fprintf(w, "constraint: %s\n", c)
	}
	return nil
}

func listFiles(w io.Writer, files []string) {
	pw := newPrefixWriter(w, "  ")
	for _, f := range files {
		fmt.Fprintln(pw, f)
	}
}
