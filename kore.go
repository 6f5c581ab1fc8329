package vercompat

import (
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

type (
	Project = vckore.Project
	Unit    = vckore.Unit
	Scope   = vckore.Scope
	Task    = vckore.Task
)

func NewProject(dir string) *Project { return vckore.NewProject(dir) }

// NewJavaLibrary creates a project with the Java library conventions applied
// and an extension for it.
func NewJavaLibrary(dir string, t *vckore.Trace) (*Extension, error) {
	prj := vckore.NewProject(dir)
	if err := vckore.ApplyJavaLibrary(prj); err != nil {
		return nil, err
	}
	return NewExtension(prj, t), nil
}

// Edit calls do with wrappers of the [Extension] that allow easy editing of
// the generated units and tasks. Edit locks the extension's host and
// recovers from any panic and returns it as an error, so the idiomatic error
// handling within do can be skipped.
func Edit(ext *Extension, do func(ExtensionEd)) (err error) {
	ext.host.Lock()
	defer func() {
		ext.host.Unlock()
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
	if prj, ok := ext.host.(*Project); ok {
		defer ext.trace.StartProject(prj, "edit")()
	}
	do(ExtensionEd{ext})
	return
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustRet[T any](v T, err error) T {
	mustEd(err)
	return v
}
