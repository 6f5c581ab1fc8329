package vckore

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestProject_NewUnit(t *testing.T) {
	prj := NewProject("prj")
	u := testerr.Shall1(prj.NewUnit("testCompat1Dot0")).BeNil(t)
	for kind, name := range map[ScopeKind]string{
		CompileOnly:      "testCompat1Dot0CompileOnly",
		Implementation:   "testCompat1Dot0Implementation",
		RuntimeOnly:      "testCompat1Dot0RuntimeOnly",
		CompileClasspath: "testCompat1Dot0CompileClasspath",
		RuntimeClasspath: "testCompat1Dot0RuntimeClasspath",
	} {
		if s := prj.FindScope(name); s == nil || u.Scope(kind) != s {
			t.Errorf("no %s scope '%s'", kind, name)
		}
	}
	if u.Implementation().CanBeResolved {
		t.Error("implementation scope is resolvable")
	}
	if !u.Scope(RuntimeClasspath).CanBeResolved {
		t.Error("runtime classpath scope is not resolvable")
	}
	if tn := u.CompileTaskName(); tn != "compileTestCompat1Dot0Java" || prj.FindTask(tn) == nil {
		t.Errorf("compile task '%s'", tn)
	}
	if tn := u.ProcessResourcesTaskName(); tn != "processTestCompat1Dot0Resources" || prj.FindTask(tn) == nil {
		t.Errorf("resources task '%s'", tn)
	}
	wantRes := filepath.Join("prj", "build", "resources", "testCompat1Dot0")
	if d := u.ResourcesDir(); d != wantRes {
		t.Errorf("resources dir '%s'", d)
	}
	if ts := u.RuntimeClasspath().BuiltBy(); !slices.Equal(ts, []string{
		"compileTestCompat1Dot0Java",
		"processTestCompat1Dot0Resources",
	}) {
		t.Errorf("runtime classpath built by %v", ts)
	}

	testerr.Shall1(prj.NewUnit("testCompat1Dot0")).
		Check(t, testerr.Msg("cannot add unit 'testCompat1Dot0': the name is already taken"))
}

func TestProject_NewUnit_collision(t *testing.T) {
	prj := NewProject("prj")
	testerr.Shall1(prj.NewScope("fooRuntimeOnly")).BeNil(t)
	n := len(prj.Scopes())
	_, err := prj.NewUnit("foo")
	if !errors.Is(err, DuplicateError{}) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if l := len(prj.Scopes()); l != n {
		t.Errorf("failed unit created %d scopes", l-n)
	}
	if prj.FindUnit("foo") != nil || prj.FindTask("compileFooJava") != nil {
		t.Error("failed unit left objects")
	}
}

func TestProject_mainNames(t *testing.T) {
	prj := NewProject("prj")
	u := testerr.Shall1(prj.NewUnit(MainUnitName)).BeNil(t)
	if n := u.ScopeName(CompileOnly); n != "compileOnly" {
		t.Errorf("main compile only scope '%s'", n)
	}
	if n := u.CompileTaskName(); n != "compileJava" {
		t.Errorf("main compile task '%s'", n)
	}
	if n := u.ProcessResourcesTaskName(); n != "processResources" {
		t.Errorf("main resources task '%s'", n)
	}
}

func TestProject_TasksInGroup(t *testing.T) {
	prj := NewProject("prj")
	testerr.Shall(ApplyJava(prj)).BeNil(t)
	var names []string
	for _, tk := range prj.TasksInGroup(VerificationGroup) {
		names = append(names, tk.Name())
	}
	if !slices.Equal(names, []string{"test", "check"}) {
		t.Errorf("verification tasks %v", names)
	}
	if gs := prj.Groups(); !slices.Equal(gs, []string{BuildGroup, VerificationGroup}) {
		t.Errorf("groups %v", gs)
	}
}

func TestApplyJavaLibrary(t *testing.T) {
	prj := NewProject("prj")
	testerr.Shall(ApplyJavaLibrary(prj)).BeNil(t)
	api := testerr.Shall1(prj.Scope(APIScopeName)).BeNil(t)
	main := testerr.Shall1(prj.Unit(MainUnitName)).BeNil(t)
	test := testerr.Shall1(prj.Unit(TestUnitName)).BeNil(t)
	if !test.Implementation().Extends(api) {
		t.Error("test implementation does not see api")
	}
	jar := testerr.Shall1(prj.Task(JarTaskName)).BeNil(t)
	in := jar.Inputs()
	if len(in) != 1 || in[0] != FileCollection(main.Output()) {
		t.Errorf("jar inputs %v", in)
	}
	if err := ApplyJava(prj); err == nil {
		t.Error("applied java twice")
	}
}
