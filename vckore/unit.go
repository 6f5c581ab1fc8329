package vckore

import (
	"path/filepath"
	"slices"
	"unicode"
	"unicode/utf8"
)

const (
	MainUnitName = "main"
	TestUnitName = "test"
)

// ScopeKind identifies one of the scopes every [Unit] owns.
type ScopeKind string

const (
	CompileOnly      ScopeKind = "CompileOnly"
	Implementation   ScopeKind = "Implementation"
	RuntimeOnly      ScopeKind = "RuntimeOnly"
	CompileClasspath ScopeKind = "CompileClasspath"
	RuntimeClasspath ScopeKind = "RuntimeClasspath"
)

var unitScopeKinds = []ScopeKind{
	CompileOnly,
	Implementation,
	RuntimeOnly,
	CompileClasspath,
	RuntimeClasspath,
}

// ScopeKinds returns the kinds of scopes each unit has.
func ScopeKinds() []ScopeKind { return slices.Clone(unitScopeKinds) }

// A Unit is a named, independently compilable group of sources. Build engines
// call this a source set. Each unit owns the scopes listed by [ScopeKind], a
// compile task and a resources task that produce its [Output].
type Unit struct {
	name   string
	prj    *Project
	scopes map[ScopeKind]*Scope
	output *Output
}

func (u *Unit) Name() string { return u.name }

func (u *Unit) Project() *Project { return u.prj }

func (u *Unit) String() string { return u.name }

// Scope returns the unit's scope of the given kind or nil for unknown kinds.
func (u *Unit) Scope(kind ScopeKind) *Scope { return u.scopes[kind] }

func (u *Unit) CompileOnly() *Scope    { return u.scopes[CompileOnly] }
func (u *Unit) Implementation() *Scope { return u.scopes[Implementation] }
func (u *Unit) RuntimeOnly() *Scope    { return u.scopes[RuntimeOnly] }

// ScopeName returns the name of the unit's scope of the given kind.
func (u *Unit) ScopeName(kind ScopeKind) string { return unitScopeName(u.name, kind) }

func (u *Unit) Output() *Output { return u.output }

func (u *Unit) ClassesDirs() FileCollection { return u.output.classes }

func (u *Unit) ResourcesDir() string { return u.output.resourcesDir }

func (u *Unit) CompileTaskName() string { return unitTaskName("compile", u.name, "Java") }

func (u *Unit) ProcessResourcesTaskName() string {
	return unitTaskName("process", u.name, "Resources")
}

// RuntimeClasspath returns the unit's output together with everything on its
// runtime classpath scope.
func (u *Unit) RuntimeClasspath() FileCollection {
	return Union(u.output, u.scopes[RuntimeClasspath])
}

// CompileClasspath returns the files the unit's sources are compiled against.
func (u *Unit) CompileClasspath() FileCollection { return u.scopes[CompileClasspath] }

// Output is the compiled classes and processed resources of a [Unit].
type Output struct {
	unit         *Unit
	classes      *Files
	resourcesDir string
}

var _ FileCollection = (*Output)(nil)

func (o *Output) Unit() *Unit { return o.unit }

func (o *Output) Files() []string {
	return appendNew(o.classes.Files(), o.resourcesDir)
}

func (o *Output) BuiltBy() []string {
	return appendNew(o.classes.BuiltBy(), o.unit.ProcessResourcesTaskName())
}

func newUnitOutput(u *Unit) *Output {
	build := filepath.Join(u.prj.Dir, "build")
	return &Output{
		unit: u,
		classes: NewFiles(filepath.Join(build, "classes", "java", u.name)).
			Built(u.CompileTaskName()),
		resourcesDir: filepath.Join(build, "resources", u.name),
	}
}

func unitScopeName(unit string, kind ScopeKind) string {
	if unit == MainUnitName {
		return lowerFirst(string(kind))
	}
	return unit + string(kind)
}

func unitTaskName(verb, unit, target string) string {
	if unit == MainUnitName {
		return verb + target
	}
	return verb + upperFirst(unit) + target
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
