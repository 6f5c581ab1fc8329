package vercompat

import "git.fractalqb.de/fractalqb/vercompat/vckore"

// ExtensionEd is used with [Edit].
type ExtensionEd struct{ ext *Extension }

func (ed ExtensionEd) Extension() *Extension { return ed.ext }

func (ed ExtensionEd) Host() Host { return ed.ext.host }

func (ed ExtensionEd) Adapters(do func(AdaptersEd)) {
	mustEd(ed.ext.Adapters(func(cfg *AdaptersConfig) error {
		do(AdaptersEd{cfg})
		return nil
	}))
}

func (ed ExtensionEd) Tests(do func(TestsEd)) {
	mustEd(ed.ext.Tests(func(cfg *TestsConfig) error {
		do(TestsEd{cfg})
		return nil
	}))
}

// Scope returns the host's scope name, e.g. to add dependencies to one of
// the common scopes.
func (ed ExtensionEd) Scope(name string) ScopeEd {
	return ScopeEd{mustRet(ed.ext.host.Scope(name))}
}

func (ed ExtensionEd) Task(name string) TaskEd {
	return TaskEd{mustRet(ed.ext.host.Task(name))}
}

// AdaptersEd is used with [Edit].
type AdaptersEd struct{ cfg *AdaptersConfig }

func (ed AdaptersEd) Config() *AdaptersConfig { return ed.cfg }

func (ed AdaptersEd) Namespace(name string, versions ...string) NamespaceEd {
	return NamespaceEd{mustRet(ed.cfg.Namespace(name, versions...))}
}

// NamespaceEd is used with [Edit].
type NamespaceEd struct{ ns *NamespaceConfig }

func (ed NamespaceEd) Config() *NamespaceConfig { return ed.ns }

func (ed NamespaceEd) Versions(vs ...string) NamespaceEd {
	ed.ns.Versions.Add(vs...)
	return ed
}

func (ed NamespaceEd) Target(unit string) NamespaceEd {
	ed.ns.TargetUnit = unit
	return ed
}

// TestsEd is used with [Edit].
type TestsEd struct{ cfg *TestsConfig }

func (ed TestsEd) Config() *TestsConfig { return ed.cfg }

func (ed TestsEd) Dimension(name string, versions ...string) DimensionEd {
	return DimensionEd{mustRet(ed.cfg.Dimension(name, versions...))}
}

func (ed TestsEd) TestUnit(name string) TestsEd {
	ed.cfg.TestUnit = name
	return ed
}

func (ed TestsEd) EachTestRuntimeOnly(f func(*TestRuntimeOnlyConfig)) TestsEd {
	ed.cfg.EachTestRuntimeOnly(f)
	return ed
}

func (ed TestsEd) EachTestTask(f func(*TestTaskConfig)) TestsEd {
	ed.cfg.EachTestTask(f)
	return ed
}

func (ed TestsEd) Filter(pred func(versions []string) bool) TestsEd {
	ed.cfg.Filter(pred)
	return ed
}

// DimensionEd is used with [Edit].
type DimensionEd struct{ d *DimensionConfig }

func (ed DimensionEd) Config() *DimensionConfig { return ed.d }

func (ed DimensionEd) Versions(vs ...string) DimensionEd {
	ed.d.Versions.Add(vs...)
	return ed
}

// ScopeEd is used with [Edit].
type ScopeEd struct{ s *vckore.Scope }

func (ed ScopeEd) Scope() *vckore.Scope { return ed.s }

func (ed ScopeEd) Dependency(notations ...string) ScopeEd {
	for _, n := range notations {
		ed.s.AddDependency(n)
	}
	return ed
}

func (ed ScopeEd) Constraint(notations ...string) ScopeEd {
	for _, n := range notations {
		ed.s.AddConstraint(n)
	}
	return ed
}

func (ed ScopeEd) Extend(from ...string) ScopeEd {
	prj := ed.s.Project()
	for _, n := range from {
		mustEd(ed.s.Extend(mustRet(prj.Scope(n))))
	}
	return ed
}

// TaskEd is used with [Edit].
type TaskEd struct{ t *vckore.Task }

func (ed TaskEd) Task() *vckore.Task { return ed.t }

func (ed TaskEd) DependsOn(names ...string) TaskEd {
	prj := ed.t.Project()
	for _, n := range names {
		ed.t.DependsOn(mustRet(prj.Task(n)))
	}
	return ed
}

func (ed TaskEd) SystemProperty(key, value string) TaskEd {
	ed.t.SystemProperty(key, value)
	return ed
}
