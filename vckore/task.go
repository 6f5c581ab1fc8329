package vckore

import (
	"fmt"
	"slices"
)

const (
	VerificationGroup = "verification"
	BuildGroup        = "build"

	JarTaskName   = "jar"
	TestTaskName  = "test"
	CheckTaskName = "check"

	APIScopeName = "api"
)

type TaskKind int

const (
	LifecycleTask TaskKind = iota
	CompileTask
	ProcessResourcesTask
	TestTask
	JarTask
)

func (k TaskKind) String() string {
	switch k {
	case LifecycleTask:
		return "lifecycle"
	case CompileTask:
		return "compile"
	case ProcessResourcesTask:
		return "resources"
	case TestTask:
		return "test"
	case JarTask:
		return "jar"
	}
	return fmt.Sprintf("TaskKind(%d)", int(k))
}

// A Task is a named unit of build work. Tasks are only modelled, nothing is
// ever executed. The files a task consumes are described by TestClassesDirs,
// Classpath and the inputs added with [Task.From]. Tasks that build those
// files become implicit dependencies, see [Task.TaskDependencies].
type Task struct {
	Kind        TaskKind
	Group       string
	Description string

	// TestClassesDirs are the directories scanned for tests. Only used by
	// test tasks.
	TestClassesDirs FileCollection
	Classpath       FileCollection

	name      string
	prj       *Project
	dependsOn []*Task
	inputs    []FileCollection
	sysProps  []Property
}

// Property is a key value pair that keeps its position.
type Property struct {
	Key, Value string
}

func (t *Task) Name() string { return t.name }

func (t *Task) Project() *Project { return t.prj }

func (t *Task) String() string { return t.name }

// DependsOn adds explicit dependencies. Adding the same task twice has no
// effect.
func (t *Task) DependsOn(ts ...*Task) {
	for _, d := range ts {
		if d != nil && !slices.Contains(t.dependsOn, d) {
			t.dependsOn = append(t.dependsOn, d)
		}
	}
}

// Dependencies returns the explicit dependencies of t.
func (t *Task) Dependencies() []*Task { return slices.Clone(t.dependsOn) }

// From adds archive inputs, e.g. unit outputs to a jar task.
func (t *Task) From(fc FileCollection) {
	if fc != nil {
		t.inputs = append(t.inputs, fc)
	}
}

func (t *Task) Inputs() []FileCollection { return slices.Clone(t.inputs) }

// SystemProperty sets a system property for test tasks. Setting a key again
// replaces its value in place.
func (t *Task) SystemProperty(key, value string) {
	for i := range t.sysProps {
		if t.sysProps[i].Key == key {
			t.sysProps[i].Value = value
			return
		}
	}
	t.sysProps = append(t.sysProps, Property{Key: key, Value: value})
}

func (t *Task) SystemProperties() []Property { return slices.Clone(t.sysProps) }

// InputFiles returns all files consumed by t.
func (t *Task) InputFiles() (fs []string) {
	for _, fc := range t.collections() {
		fs = appendNew(fs, fc.Files()...)
	}
	return fs
}

// TaskDependencies returns the explicit dependencies of t followed by all
// tasks that build files consumed by t. Inferred tasks that do not exist in
// the project are reported as error.
func (t *Task) TaskDependencies() ([]*Task, error) {
	res := slices.Clone(t.dependsOn)
	for _, fc := range t.collections() {
		for _, n := range fc.BuiltBy() {
			if n == t.name {
				continue
			}
			d, err := t.prj.tasks.Get(n)
			if err != nil {
				return res, fmt.Errorf("task '%s' input built by: %w", t.name, err)
			}
			if !slices.Contains(res, d) {
				res = append(res, d)
			}
		}
	}
	return res, nil
}

func (t *Task) collections() []FileCollection {
	var res []FileCollection
	if t.TestClassesDirs != nil {
		res = append(res, t.TestClassesDirs)
	}
	if t.Classpath != nil {
		res = append(res, t.Classpath)
	}
	return append(res, t.inputs...)
}
