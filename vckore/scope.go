package vckore

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// A Scope is a named grouping of dependencies that can extend other scopes. A
// scope sees all dependencies and constraints of the scopes it extends,
// directly or transitively. Build engines call this a configuration.
type Scope struct {
	// Resolvable scopes can be turned into a classpath.
	CanBeResolved bool
	// Consumable scopes can be published to other projects.
	CanBeConsumed bool
	Description   string

	name        string
	idx         uint
	prj         *Project
	extendsFrom []*Scope
	deps        []Dependency
	constraints []string
}

var _ FileCollection = (*Scope)(nil)

// Dependency is either a module notation like "group:name:version" or a
// collection of files, e.g. the output of a [Unit].
type Dependency struct {
	Notation string
	Files    FileCollection
}

func (d Dependency) IsFiles() bool { return d.Files != nil }

func (d Dependency) String() string {
	if d.Files != nil {
		return "files(" + strings.Join(d.Files.Files(), ", ") + ")"
	}
	return d.Notation
}

func (s *Scope) Name() string { return s.name }

func (s *Scope) Project() *Project { return s.prj }

func (s *Scope) String() string { return s.name }

// ExtendsFrom returns the scopes s directly extends.
func (s *Scope) ExtendsFrom() []*Scope {
	res := make([]*Scope, len(s.extendsFrom))
	copy(res, s.extendsFrom)
	return res
}

// Extend makes s extend all scopes in from. Extending a scope twice has no
// effect. All scopes must belong to the project of s and the extension must
// not create a cycle.
func (s *Scope) Extend(from ...*Scope) error {
	for _, f := range from {
		if f == nil {
			return fmt.Errorf("scope '%s' cannot extend nil scope", s.name)
		}
		if f.prj != s.prj {
			return fmt.Errorf("scope '%s' cannot extend scope '%s' of other project '%s'",
				s.name,
				f.name,
				f.prj,
			)
		}
		if path := f.pathTo(s); path != nil {
			return CycleError{Kind: "scope", Path: append([]string{s.name}, path...)}
		}
	}
NEXT_FROM:
	for _, f := range from {
		for _, e := range s.extendsFrom {
			if e == f {
				continue NEXT_FROM
			}
		}
		s.extendsFrom = append(s.extendsFrom, f)
	}
	return nil
}

// Extends reports whether s extends other, directly or transitively.
func (s *Scope) Extends(other *Scope) bool {
	return s != other && s.pathTo(other) != nil
}

// pathTo returns the names of the scopes on an extension path from s to
// target, both inclusive, or nil if target is not reachable.
func (s *Scope) pathTo(target *Scope) []string {
	seen := bitset.New(uint(s.prj.scopes.Len()))
	var walk func(*Scope) []string
	walk = func(sc *Scope) []string {
		if sc == target {
			return []string{sc.name}
		}
		if seen.Test(sc.idx) {
			return nil
		}
		seen.Set(sc.idx)
		for _, e := range sc.extendsFrom {
			if p := walk(e); p != nil {
				return append([]string{sc.name}, p...)
			}
		}
		return nil
	}
	return walk(s)
}

// Hierarchy returns s followed by every scope it extends. Each scope appears
// exactly once, in depth-first order of the extension edges.
func (s *Scope) Hierarchy() []*Scope {
	seen := bitset.New(uint(s.prj.scopes.Len()))
	var (
		res  []*Scope
		walk func(*Scope)
	)
	walk = func(sc *Scope) {
		if seen.Test(sc.idx) {
			return
		}
		seen.Set(sc.idx)
		res = append(res, sc)
		for _, e := range sc.extendsFrom {
			walk(e)
		}
	}
	walk(s)
	return res
}

func (s *Scope) AddDependency(notation string) {
	s.deps = append(s.deps, Dependency{Notation: notation})
}

func (s *Scope) AddFiles(fc FileCollection) {
	s.deps = append(s.deps, Dependency{Files: fc})
}

// AddConstraint adds a dependency constraint, e.g. "group:name:1.0!!" to
// enforce a strict version.
func (s *Scope) AddConstraint(notation string) {
	for _, c := range s.constraints {
		if c == notation {
			return
		}
	}
	s.constraints = append(s.constraints, notation)
}

// Dependencies returns the dependencies declared directly on s.
func (s *Scope) Dependencies() []Dependency {
	res := make([]Dependency, len(s.deps))
	copy(res, s.deps)
	return res
}

// Constraints returns the constraints declared directly on s.
func (s *Scope) Constraints() []string { return appendNew(nil, s.constraints...) }

func (s *Scope) AllDependencies() (deps []Dependency) {
	for _, sc := range s.Hierarchy() {
		deps = append(deps, sc.deps...)
	}
	return deps
}

func (s *Scope) AllConstraints() (cs []string) {
	for _, sc := range s.Hierarchy() {
		cs = appendNew(cs, sc.constraints...)
	}
	return cs
}

// Files returns the files of all file dependencies visible in s.
func (s *Scope) Files() (fs []string) {
	for _, d := range s.AllDependencies() {
		if d.Files != nil {
			fs = appendNew(fs, d.Files.Files()...)
		}
	}
	return fs
}

func (s *Scope) BuiltBy() (ts []string) {
	for _, d := range s.AllDependencies() {
		if d.Files != nil {
			ts = appendNew(ts, d.Files.BuiltBy()...)
		}
	}
	return ts
}

// Resolve is like [Scope.Files] but fails if s is not resolvable.
func (s *Scope) Resolve() ([]string, error) {
	if !s.CanBeResolved {
		return nil, fmt.Errorf("scope '%s' cannot be resolved", s.name)
	}
	return s.Files(), nil
}

type CycleError struct {
	Kind string
	Path []string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("%s cycle: %s", e.Kind, strings.Join(e.Path, " -> "))
}

func (CycleError) Is(target error) bool {
	_, ok := target.(CycleError)
	return ok
}
