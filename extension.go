package vercompat

import (
	"context"
	"slices"
	"sync"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

const (
	CompatibilityTestTaskName         = "testCompatibility"
	CompatibilityAdapterTestsTaskName = "testCompatibilityAdapters"

	CommonCompileOnlyScopeName        = "commonCompileOnly"
	CommonImplementationScopeName     = "commonImplementation"
	TestCommonRuntimeOnlyScopeName    = "testCommonRuntimeOnly"
	TestCommonImplementationScopeName = "testCommonImplementation"
)

// Host is the part of a build model the generators work on.
// [vckore.Project] is a Host.
type Host interface {
	sync.Locker
	Name() string

	NewUnit(name string) (*vckore.Unit, error)
	Unit(name string) (*vckore.Unit, error)

	NewScope(name string) (*vckore.Scope, error)
	Scope(name string) (*vckore.Scope, error)
	FindScope(name string) *vckore.Scope

	NewTask(name string, kind vckore.TaskKind) (*vckore.Task, error)
	Task(name string) (*vckore.Task, error)
	FindTask(name string) *vckore.Task
}

var _ Host = (*vckore.Project)(nil)

// Extension generates adapter units and compatibility test tasks into its
// host. It keeps the state that spans several calls of [Extension.Adapters]
// and [Extension.Tests]: the order in which dimensions were first registered
// and the lifecycle tasks.
//
// Extension does not lock the host. Use [Edit] or lock the host explicitly
// when the host is shared.
type Extension struct {
	host     Host
	trace    *vckore.Trace
	dimOrder []string
}

// NewExtension creates an extension for host. Generated objects are reported
// to t, which may be nil.
func NewExtension(host Host, t *vckore.Trace) *Extension {
	if t == nil {
		t = vckore.NewTrace(context.Background(), nil)
	}
	return &Extension{host: host, trace: t}
}

func (ext *Extension) Host() Host { return ext.host }

func (ext *Extension) Trace() *vckore.Trace { return ext.trace }

// DimensionOrder returns the names of all dimensions ever registered with ext
// in order of their first registration.
func (ext *Extension) DimensionOrder() []string { return slices.Clone(ext.dimOrder) }

func (ext *Extension) noteDimension(name string) {
	if !slices.Contains(ext.dimOrder, name) {
		ext.dimOrder = append(ext.dimOrder, name)
	}
}

func (ext *Extension) dimensionIndex(name string) int {
	return slices.Index(ext.dimOrder, name)
}

func (ext *Extension) newUnit(t *vckore.Trace, name string) (*vckore.Unit, error) {
	u, err := ext.host.NewUnit(name)
	if err != nil {
		return nil, err
	}
	t.Created(u)
	return u, nil
}

func (ext *Extension) newScope(t *vckore.Trace, name string) (*vckore.Scope, error) {
	s, err := ext.host.NewScope(name)
	if err != nil {
		return nil, err
	}
	t.Created(s)
	return s, nil
}

// scopeIfNecessary returns the scope name and creates it, if it does not
// exist yet. A created scope extends from, if from is not nil.
func (ext *Extension) scopeIfNecessary(t *vckore.Trace, name string, from *vckore.Scope) (*vckore.Scope, error) {
	if s := ext.host.FindScope(name); s != nil {
		return s, nil
	}
	s, err := ext.newScope(t, name)
	if err != nil {
		return nil, err
	}
	if from != nil {
		if err = s.Extend(from); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (ext *Extension) newTask(t *vckore.Trace, name string, kind vckore.TaskKind) (*vckore.Task, error) {
	tk, err := ext.host.NewTask(name, kind)
	if err != nil {
		return nil, err
	}
	t.Created(tk)
	return tk, nil
}

func (ext *Extension) lifecycleTask(t *vckore.Trace, name, description string) (*vckore.Task, error) {
	if tk := ext.host.FindTask(name); tk != nil {
		return tk, nil
	}
	tk, err := ext.newTask(t, name, vckore.LifecycleTask)
	if err != nil {
		return nil, err
	}
	tk.Group = vckore.VerificationGroup
	tk.Description = description
	return tk, nil
}

func (ext *Extension) compatibilityTestTask(t *vckore.Trace) (*vckore.Task, error) {
	return ext.lifecycleTask(t, CompatibilityTestTaskName, "Runs all compatibility tests.")
}

func (ext *Extension) adapterTestTask(t *vckore.Trace) (*vckore.Task, error) {
	return ext.lifecycleTask(t,
		CompatibilityAdapterTestsTaskName,
		"Runs all compatibility adapter tests.",
	)
}
