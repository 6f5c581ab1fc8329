package vckore

import "slices"

// FileCollection is a lazily evaluated set of files together with the tasks
// that have to run before the files exist.
type FileCollection interface {
	Files() []string
	BuiltBy() []string
}

// Files is a fixed list of paths. Tasks names the tasks that produce them.
type Files struct {
	Paths []string
	Tasks []string
}

var _ FileCollection = (*Files)(nil)

func NewFiles(paths ...string) *Files { return &Files{Paths: paths} }

func (f *Files) Files() []string { return slices.Clone(f.Paths) }

func (f *Files) BuiltBy() []string { return slices.Clone(f.Tasks) }

// Built declares that the files are produced by the named tasks.
func (f *Files) Built(tasks ...string) *Files {
	for _, t := range tasks {
		if !slices.Contains(f.Tasks, t) {
			f.Tasks = append(f.Tasks, t)
		}
	}
	return f
}

type union []FileCollection

// Union combines collections. The result is evaluated on each call, so
// changes to the parts show up in the union. Files and tasks appear once, in
// the order of their first occurrence.
func Union(fcs ...FileCollection) FileCollection {
	res := make(union, 0, len(fcs))
	for _, fc := range fcs {
		if fc != nil {
			res = append(res, fc)
		}
	}
	return res
}

func (u union) Files() []string {
	var res []string
	for _, fc := range u {
		res = appendNew(res, fc.Files()...)
	}
	return res
}

func (u union) BuiltBy() []string {
	var res []string
	for _, fc := range u {
		res = appendNew(res, fc.BuiltBy()...)
	}
	return res
}

// Parts returns the collections the union was built from.
func Parts(fc FileCollection) []FileCollection {
	if u, ok := fc.(union); ok {
		return slices.Clone(u)
	}
	return []FileCollection{fc}
}

func appendNew(to []string, strs ...string) []string {
	for _, s := range strs {
		if !slices.Contains(to, s) {
			to = append(to, s)
		}
	}
	return to
}
