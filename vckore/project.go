package vckore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Project is the build model of a single project directory. It holds units,
// scopes and tasks, each with names unique in the project.
//
// Project is not safe for concurrent modification. Editors lock it while they
// change the model.
type Project struct {
	Dir string

	sync.Mutex

	units  *Container[*Unit]
	scopes *Container[*Scope]
	tasks  *Container[*Task]
}

func NewProject(dir string) *Project {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Project{
		Dir:    dir,
		units:  NewContainer[*Unit]("unit", nil),
		scopes: NewContainer[*Scope]("scope", nil),
		tasks:  NewContainer[*Task]("task", nil),
	}
}

func (prj *Project) Name() string { return prj.String() }

func (prj *Project) String() string {
	tmp := prj.Dir
	if tmp == "" || tmp == "." {
		tmp, _ = filepath.Abs(tmp)
	}
	return filepath.Base(tmp)
}

// NewUnit creates the unit name together with its scopes and its compile and
// resources tasks. If any of the names is already taken nothing is created.
func (prj *Project) NewUnit(name string) (*Unit, error) {
	if name == "" {
		return nil, fmt.Errorf("project '%s': empty unit name", prj)
	}
	if _, ok := prj.units.Find(name); ok {
		return nil, DuplicateError{Kind: prj.units.Kind(), Name: name}
	}
	for _, k := range unitScopeKinds {
		if sn := unitScopeName(name, k); prj.hasScope(sn) {
			return nil, fmt.Errorf("unit '%s': %w", name, DuplicateError{Kind: "scope", Name: sn})
		}
	}
	u := &Unit{
		name:   name,
		prj:    prj,
		scopes: make(map[ScopeKind]*Scope, len(unitScopeKinds)),
	}
	for _, tn := range []string{u.CompileTaskName(), u.ProcessResourcesTaskName()} {
		if _, ok := prj.tasks.Find(tn); ok {
			return nil, fmt.Errorf("unit '%s': %w", name, DuplicateError{Kind: "task", Name: tn})
		}
	}
	for _, k := range unitScopeKinds {
		s, _ := prj.NewScope(u.ScopeName(k))
		switch k {
		case CompileOnly, Implementation, RuntimeOnly:
			s.CanBeResolved = false
		}
		u.scopes[k] = s
	}
	u.scopes[CompileClasspath].Extend(u.scopes[CompileOnly], u.scopes[Implementation])
	u.scopes[RuntimeClasspath].Extend(u.scopes[RuntimeOnly], u.scopes[Implementation])
	u.output = newUnitOutput(u)

	ct, _ := prj.NewTask(u.CompileTaskName(), CompileTask)
	ct.Description = fmt.Sprintf("Compiles %s Java source.", name)
	ct.Classpath = u.scopes[CompileClasspath]
	rt, _ := prj.NewTask(u.ProcessResourcesTaskName(), ProcessResourcesTask)
	rt.Description = fmt.Sprintf("Processes %s resources.", name)

	prj.units.Add(u)
	return u, nil
}

func (prj *Project) Unit(name string) (*Unit, error) { return prj.units.Get(name) }

func (prj *Project) FindUnit(name string) *Unit {
	u, _ := prj.units.Find(name)
	return u
}

func (prj *Project) Units() []*Unit { return prj.units.All() }

// NewScope creates a resolvable and consumable scope.
func (prj *Project) NewScope(name string) (*Scope, error) {
	if name == "" {
		return nil, fmt.Errorf("project '%s': empty scope name", prj)
	}
	s := &Scope{
		CanBeResolved: true,
		CanBeConsumed: true,
		name:          name,
		idx:           uint(prj.scopes.Len()),
		prj:           prj,
	}
	if err := prj.scopes.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (prj *Project) Scope(name string) (*Scope, error) { return prj.scopes.Get(name) }

func (prj *Project) FindScope(name string) *Scope {
	s, _ := prj.scopes.Find(name)
	return s
}

func (prj *Project) Scopes() []*Scope { return prj.scopes.All() }

func (prj *Project) hasScope(name string) bool {
	_, ok := prj.scopes.Find(name)
	return ok
}

func (prj *Project) NewTask(name string, kind TaskKind) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("project '%s': empty task name", prj)
	}
	t := &Task{
		Kind: kind,
		name: name,
		prj:  prj,
	}
	if err := prj.tasks.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (prj *Project) Task(name string) (*Task, error) { return prj.tasks.Get(name) }

func (prj *Project) FindTask(name string) *Task {
	t, _ := prj.tasks.Find(name)
	return t
}

func (prj *Project) Tasks() []*Task { return prj.tasks.All() }

// TasksInGroup returns the tasks of group in creation order. The empty group
// selects ungrouped tasks.
func (prj *Project) TasksInGroup(group string) (ts []*Task) {
	for _, t := range prj.tasks.All() {
		if t.Group == group {
			ts = append(ts, t)
		}
	}
	return ts
}

// Groups returns all task groups in order of first use, not including the
// empty group.
func (prj *Project) Groups() (gs []string) {
	for _, t := range prj.tasks.All() {
		if t.Group != "" {
			gs = appendNew(gs, t.Group)
		}
	}
	return gs
}
